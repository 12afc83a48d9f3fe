package dump

import (
	"strings"
	"testing"

	"github.com/ritamzico/linkweight/linkgraph"
)

func TestWriteRedirects_FiltersToUndeclaredSourceDeclaredTarget(t *testing.T) {
	g := linkgraph.New()
	a := g.GetOrCreate([]byte("A")) // undeclared, redirects to declared B: kept
	b := g.GetOrCreate([]byte("B"))
	c := g.GetOrCreate([]byte("C")) // declared, redirects to declared B: dropped (source declared)
	d := g.GetOrCreate([]byte("D")) // undeclared, redirects to undeclared E: dropped (target undeclared)
	e := g.GetOrCreate([]byte("E"))

	g.MarkDeclared(b)
	g.MarkDeclared(c)

	mustRedirect(t, g, a, b)
	mustRedirect(t, g, c, b)
	mustRedirect(t, g, d, e)

	var buf strings.Builder
	if err := WriteRedirects(g, &buf); err != nil {
		t.Fatalf("WriteRedirects: %v", err)
	}
	want := "A\tB\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func mustRedirect(t *testing.T, g *linkgraph.Graph, from, to linkgraph.PageId) {
	t.Helper()
	if err := g.DefineRedirect(from, to); err != nil {
		t.Fatalf("DefineRedirect: %v", err)
	}
}
