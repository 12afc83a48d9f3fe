// Package kvconfig is the shared textual configuration grammar for the
// weighter and normalizer config strings (SPEC_FULL.md §0): a flat list of
// key=value pairs, the one piece of the ingest pipeline still grammar-
// shaped enough to keep reaching for participle the way the teacher's
// internal/dsl package does.
package kvconfig

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var configLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Value", Pattern: `"[^"]*"|[^\s,="]+`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// entryAST is one key=value pair.
type entryAST struct {
	Key   string `parser:"@Value \"=\""`
	Value string `parser:"@Value"`
}

// documentAST is a list of entries; commas between them are punctuation
// only, elided the same way whitespace is.
type documentAST struct {
	Entries []*entryAST `parser:"@@*"`
}

var configParser = participle.MustBuild[documentAST](
	participle.Lexer(configLexer),
	participle.Elide("Whitespace", "Comma"),
	participle.Unquote("Value"),
)

// Parse reads a "key=value key2=value2" (or comma-separated) string into
// an ordered key→value map. Later occurrences of the same key overwrite
// earlier ones, matching the original's extractStringFromConfigString scan.
func Parse(s string) (map[string]string, error) {
	out := make(map[string]string)
	if s == "" {
		return out, nil
	}
	doc, err := configParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("kvconfig: %w", err)
	}
	for _, e := range doc.Entries {
		out[e.Key] = e.Value
	}
	return out, nil
}
