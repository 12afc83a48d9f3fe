package decl

import "fmt"

// StructureError reports a declaration-stream failure the recovery policy
// cannot absorb. Parse does not construct one: lexer and I/O failures are
// returned as the lexer's own *LexError / *IoError, and malformed
// declarations are downgraded to warnings (§4.2).
type StructureError struct {
	Line int
	Msg  string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("declaration error at line %d: %s", e.Line, e.Msg)
}

func (e *StructureError) Kind() string { return "StructureError" }
