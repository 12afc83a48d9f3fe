// Package linkweight ties the CORE packages (lexer, decl, linkgraph, reduce,
// weight, engine) into the small public surface a caller outside cmd/weightcore
// needs: run a declaration stream through the full ingest->reduce->weigh pass
// and inspect the result. It plays the same role the teacher's root pgraph.go
// played for the DSL engine — one facade type, no business logic of its own.
package linkweight

import (
	"context"
	"io"

	"github.com/ritamzico/linkweight/decl"
	"github.com/ritamzico/linkweight/dump"
	"github.com/ritamzico/linkweight/engine"
	"github.com/ritamzico/linkweight/linkgraph"
	"github.com/ritamzico/linkweight/weight"
)

type (
	Policy   = weight.Policy
	PageRank = weight.PageRank
	InDegree = weight.InDegree
	Graph    = linkgraph.Graph
)

// Result is the outcome of one Run: the weight vector (indexed by PageId;
// index 0 unused), the reduced graph, the raw pre-reduction graph, and any
// recoverable parse warnings. Pass Result.RawGraph, not Result.Graph, to
// WriteRedirects: reduction drops undeclared pages and their redirects, so
// the reduced graph never has anything to dump.
type Result = engine.Result

// Run reads a declaration stream from r and computes its weight vector
// under policy. A nil policy defaults to PageRank with its own defaults.
func Run(ctx context.Context, r io.Reader, policy Policy) (Result, error) {
	return engine.Run(ctx, r, engine.Config{Weight: policy})
}

// RunTraced behaves like Run but also streams one line per emitted parse
// event (begin/redirect/link) to trace, when trace is non-nil.
func RunTraced(ctx context.Context, r io.Reader, policy Policy, trace decl.Tracer) (Result, error) {
	return engine.Run(ctx, r, engine.Config{Weight: policy, Trace: trace})
}

// WriteRedirects writes the canonicalizing redirect dump for g (see
// dump.WriteRedirects). g must be a raw, pre-reduction graph — typically
// Result.RawGraph — since a reduced Graph's redirect table is always
// empty.
func WriteRedirects(g *Graph, w io.Writer) error {
	return dump.WriteRedirects(g, w)
}

// Save writes a debug JSON snapshot of g (name/declared/edge/redirect
// state), not on the ingest->weight hot path.
func Save(g *Graph, w io.Writer) error {
	return linkgraph.WriteJSON(g, w)
}

// Load reads back a snapshot written by Save.
func Load(r io.Reader) (*Graph, error) {
	return linkgraph.ReadJSON(r)
}
