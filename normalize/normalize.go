// Package normalize implements the Token Normalizer (SPEC_FULL.md §4.8),
// grounded on original_source/src/sentenceLexerConfig.{hpp,cpp}: a small
// rune-classifying scanner that turns free text into link-safe tokens.
package normalize

import (
	"strings"
	"unicode/utf8"
)

// Config holds the normalizer's character classes and substitution runes.
type Config struct {
	LinkChars      map[rune]struct{}
	SpaceChars     map[rune]struct{}
	SeparatorChars map[rune]struct{}
	SpaceSubst     rune
	LinkSubst      rune
	CoverSim       float64
	TypePriority   map[string]int
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// DefaultConfig reproduces sentenceLexerConfig.cpp's built-in defaults.
func DefaultConfig() Config {
	return Config{
		LinkChars:      runeSet("’`'?!/;:.,–-— )(+&%*#^[]{}<>_"),
		SeparatorChars: runeSet("\";.:"),
		SpaceChars:     runeSet("\t\b\n\r "),
		SpaceSubst:     '_',
		LinkSubst:      '-',
		CoverSim:       0,
		TypePriority:   parseTypePriorityMap("E / N,V"),
	}
}

// parseTypePriorityMap parses a "/"- or ":"-separated list of priority
// groups, each a ","-separated list of type names sharing that priority
// (lower number is higher priority, group order is priority order).
func parseTypePriorityMap(s string) map[string]int {
	out := make(map[string]int)
	for priority, group := range strings.Split(strings.ReplaceAll(s, ":", "/"), "/") {
		for _, name := range strings.Split(group, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			out[name] = priority
		}
	}
	return out
}

// Normalize scans source and returns the link-safe tokens it contains,
// per sentenceLexerConfig.cpp's scan loop:
//   - a separator flushes the current token,
//   - a link char strips every trailing SpaceSubst off the current token,
//     then appends LinkSubst,
//   - a space char (or, matching normalizeSource's extra control-byte
//     check, any single-byte rune <= 32) strips every trailing SpaceSubst,
//     then appends SpaceSubst unless the token is empty or already ends
//     with LinkSubst,
//   - anything else is appended verbatim.
//
// Note that a rune can only reach the space-char case if it isn't also a
// LinkChars or SeparatorChars member; the default config's LinkChars
// includes a literal space (sentenceLexerConfig.hpp's defaultLinkCharDef),
// so a plain ASCII space normalizes as a link char, not a space char, under
// the defaults — see DESIGN.md.
//
// The final non-empty token is flushed at end of input.
func Normalize(cfg Config, source string) []string {
	var tokens []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	trimTrailingSpaceSubst := func() {
		trimmed := strings.TrimRight(buf.String(), string(cfg.SpaceSubst))
		buf.Reset()
		buf.WriteString(trimmed)
	}

	for _, r := range source {
		switch {
		case isIn(cfg.SeparatorChars, r):
			flush()
		case isIn(cfg.LinkChars, r):
			trimTrailingSpaceSubst()
			buf.WriteRune(cfg.LinkSubst)
		case (r <= 32 && utf8.RuneLen(r) == 1) || isIn(cfg.SpaceChars, r):
			trimTrailingSpaceSubst()
			if buf.Len() > 0 && lastRune(buf.String()) != cfg.LinkSubst {
				buf.WriteRune(cfg.SpaceSubst)
			}
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return tokens
}

func isIn(set map[rune]struct{}, r rune) bool {
	_, ok := set[r]
	return ok
}

func lastRune(s string) rune {
	if s == "" {
		return 0
	}
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
