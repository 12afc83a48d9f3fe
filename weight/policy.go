// Package weight implements the two weighting policies (SPEC_FULL.md
// §4.7): damped PageRank power iteration (P1) and plain in-degree tally
// (P2), behind one Policy interface shared with the reducer.
package weight

import "github.com/ritamzico/linkweight/linkgraph"

// EndpointPolicy selects how the reducer resolves redirects before
// contracting the graph (SPEC_FULL.md §4.6) — this is the one place the
// PageRank/InDegree divergence found in the original source
// (pagerank.cpp vs pageweight.cpp's reduce()) is made explicit rather than
// left as an accidental difference between two near-duplicate functions.
type EndpointPolicy int

const (
	// ResolveBothChain resolves both endpoints of every edge with the
	// full-chain, cycle-tolerant strategy (Graph.ResolveChain). Used by
	// PageRank.
	ResolveBothChain EndpointPolicy = iota
	// ResolveDestinationOneHop leaves the source endpoint untouched and
	// resolves only the destination with the single-hop, declared-anchored
	// strategy (Graph.ResolveOneHop). Used by InDegree.
	ResolveDestinationOneHop
)

// Policy computes a weight vector over a graph already reduced to its
// declared pages, and tells the reducer which endpoint strategy its
// reduction pass requires.
type Policy interface {
	// Name identifies the policy for diagnostics and CLI selection ("P1",
	// "P2").
	Name() string
	// Endpoints reports which reduce.Reduce resolution strategy this
	// policy's calculate() step assumes.
	Endpoints() EndpointPolicy
	// Weigh computes one score per declared page of reduced, indexed by
	// the page's PageId (index 0 unused, since PageId 0 means "unknown").
	Weigh(reduced *linkgraph.Graph) ([]float64, error)
}

// Compute resolves the external interface named in SPEC_FULL.md §6:
// weight.Compute(g, p). g must already be reduced.
func Compute(g *linkgraph.Graph, p Policy) ([]float64, error) {
	return p.Weigh(g)
}
