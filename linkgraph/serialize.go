package linkgraph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// snapshot is the on-disk shape of a Graph debug dump — not on the
// ingest→weight hot path, provided only so a graph can be inspected between
// runs (SPEC_FULL.md's Non-goals still rule out incremental updates; this
// is a point-in-time snapshot, not a persistence layer).
type snapshot struct {
	Names     []string         `json:"names"`
	Declared  []PageId         `json:"declared"`
	Edges     []Edge           `json:"edges"`
	Redirects map[PageId]PageId `json:"redirects"`
}

func (g *Graph) toSnapshot() snapshot {
	declared := make([]PageId, 0, len(g.declared))
	for id := range g.declared {
		declared = append(declared, id)
	}
	return snapshot{
		Names:     g.names,
		Declared:  declared,
		Edges:     g.edges,
		Redirects: g.redirect,
	}
}

func fromSnapshot(s snapshot) *Graph {
	g := New()
	g.names = s.Names
	g.ids = make(map[string]PageId, len(s.Names))
	for i, name := range s.Names {
		g.ids[name] = PageId(i + 1)
	}
	for _, id := range s.Declared {
		g.declared[id] = struct{}{}
	}
	g.edges = s.Edges
	if s.Redirects != nil {
		g.redirect = s.Redirects
	}
	return g
}

// WriteJSON encodes g as a debug snapshot to w.
func WriteJSON(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g.toSnapshot())
}

// ReadJSON decodes a debug snapshot from r into a new Graph.
func ReadJSON(r io.Reader) (*Graph, error) {
	var s snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding graph snapshot: %w", err)
	}
	return fromSnapshot(s), nil
}

// SaveJSON writes a graph snapshot to a file at path.
func SaveJSON(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// LoadJSON reads a graph snapshot from a file at path.
func LoadJSON(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
