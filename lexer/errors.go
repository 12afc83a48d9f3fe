package lexer

import "fmt"

// LexError reports a byte that starts no legal token.
type LexError struct {
	Line   int
	Byte   byte
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at line %d, offset %d: unexpected byte %q", e.Line, e.Offset, e.Byte)
}

// Kind satisfies the Kind() string convention used across the module's
// error types (see §7).
func (e *LexError) Kind() string { return "LexicalError" }
