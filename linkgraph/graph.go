// Package linkgraph holds the identifier interner, link accumulator, and
// redirect table (SPEC_FULL.md §4.3) — one growing, mutually consistent
// unit, mirroring the original PageRank/PageWeight class's m_idmap/m_idinv/
// m_linkMatrix/m_redirectMap fields rather than four independent types.
package linkgraph

import (
	"iter"
	"slices"
)

// PageId is a dense, interned page identifier. The zero value means
// "unknown" and is never assigned to a real page.
type PageId uint32

// Edge is one (from, to) link record. The edge set is a multiset: the same
// pair may appear more than once if declared more than once.
type Edge struct {
	From, To PageId
}

// Graph accumulates interned page identifiers, their declared status, the
// link multiset, and the redirect table for one ingestion pass.
type Graph struct {
	names []string // index i holds the name of PageId(i+1)
	ids   map[string]PageId

	declared map[PageId]struct{}
	edges    []Edge
	redirect map[PageId]PageId
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		ids:      make(map[string]PageId),
		declared: make(map[PageId]struct{}),
		redirect: make(map[PageId]PageId),
	}
}

// GetOrCreate interns name, returning its existing PageId or assigning the
// next one in first-seen order.
func (g *Graph) GetOrCreate(name []byte) PageId {
	key := string(name)
	if id, ok := g.ids[key]; ok {
		return id
	}
	g.names = append(g.names, key)
	id := PageId(len(g.names))
	g.ids[key] = id
	return id
}

// Get returns the PageId already assigned to name, if any.
func (g *Graph) Get(name []byte) (PageId, bool) {
	id, ok := g.ids[string(name)]
	return id, ok
}

// NameOf returns the interned name for id, if id was ever assigned.
func (g *Graph) NameOf(id PageId) (string, bool) {
	if id == 0 || int(id) > len(g.names) {
		return "", false
	}
	return g.names[id-1], true
}

// NumPages returns the number of interned identifiers, i.e. the highest
// assigned PageId.
func (g *Graph) NumPages() int {
	return len(g.names)
}

// MarkDeclared adds id to the declared set — distinguishing a page that was
// only ever seen as a link target (or as the subject of a pure redirect)
// from one that was itself declared.
func (g *Graph) MarkDeclared(id PageId) {
	g.declared[id] = struct{}{}
}

// Declared reports whether id was ever added to the declared set by
// MarkDeclared.
func (g *Graph) Declared(id PageId) bool {
	_, ok := g.declared[id]
	return ok
}

// DeclaredCount returns |D|, the number of declared pages.
func (g *Graph) DeclaredCount() int {
	return len(g.declared)
}

// AddLink appends (from, to) to the edge multiset. Both endpoints must
// already be interned PageIds in range; AddLink does not intern names.
func (g *Graph) AddLink(from, to PageId) error {
	if from == 0 || int(from) > len(g.names) {
		return RangeError{Field: "from", ID: from}
	}
	if to == 0 || int(to) > len(g.names) {
		return RangeError{Field: "to", ID: to}
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
	return nil
}

// DefineRedirect records that from redirects to to. A later call for the
// same from overwrites the earlier target (latest wins). A self-redirect
// (from == to) is discarded rather than recorded: it resolves to itself
// either way, and recording it would make a harmless declaration like
// "*A = -> A B ;" indistinguishable from a real redirect on lookup.
func (g *Graph) DefineRedirect(from, to PageId) error {
	if from == 0 || int(from) > len(g.names) {
		return RangeError{Field: "from", ID: from}
	}
	if to == 0 || int(to) > len(g.names) {
		return RangeError{Field: "to", ID: to}
	}
	if from == to {
		return nil
	}
	g.redirect[from] = to
	return nil
}

// RedirectTarget returns the one-hop redirect target of id, if one was
// defined.
func (g *Graph) RedirectTarget(id PageId) (PageId, bool) {
	to, ok := g.redirect[id]
	return to, ok
}

// Edges yields the edge multiset in deterministic (From, then To) order.
func (g *Graph) Edges() iter.Seq[Edge] {
	sorted := slices.Clone(g.edges)
	slices.SortFunc(sorted, func(a, b Edge) int {
		if a.From != b.From {
			return int(a.From) - int(b.From)
		}
		return int(a.To) - int(b.To)
	})
	return func(yield func(Edge) bool) {
		for _, e := range sorted {
			if !yield(e) {
				return
			}
		}
	}
}

// EdgeCount returns the number of edge records, counting multiplicities.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
