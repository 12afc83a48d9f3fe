package lexer

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func collect(t *testing.T, input string) ([]Token, error) {
	t.Helper()
	lx := New(strings.NewReader(input))
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return toks, err
		}
		toks = append(toks, tok)
	}
}

func TestLexer_Basic(t *testing.T) {
	toks, err := collect(t, "*A = -> B C ;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{STARTRULE, NAME, EQUAL, REDIRECT, NAME, NAME, ENDRULE}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
	if string(toks[1].Text) != "A" {
		t.Errorf("subject name = %q, want A", toks[1].Text)
	}
}

func TestLexer_MultiLine(t *testing.T) {
	toks, err := collect(t, "*A\n=\nB\n;\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5", len(toks))
	}
}

func TestLexer_NoTrailingNewline(t *testing.T) {
	toks, err := collect(t, "*A=B;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5: %+v", len(toks), toks)
	}
}

func TestLexer_BareDashIsLexError(t *testing.T) {
	_, err := collect(t, "*A = -B ;")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %v", err)
	}
}

func TestLexer_HighByteIsName(t *testing.T) {
	// bytes >= 128 are part of NAME without UTF-8 validation.
	input := string([]byte{'*', 'A', '=', 0xC3, 0xA9, ';'})
	toks, err := collect(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5: %+v", len(toks), toks)
	}
	if len(toks[3].Text) != 2 {
		t.Errorf("expected 2-byte NAME, got %d bytes", len(toks[3].Text))
	}
}

func TestLexer_NulIsWhitespace(t *testing.T) {
	input := "*A = B\x00C ;"
	toks, err := collect(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// B and C are separate NAME tokens, NUL terminated the first.
	var names []string
	for _, tok := range toks {
		if tok.Kind == NAME {
			names = append(names, string(tok.Text))
		}
	}
	want := []string{"A", "B", "C"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	toks, err := collect(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 0 {
		t.Fatalf("expected no tokens, got %+v", toks)
	}
}
