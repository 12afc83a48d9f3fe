// Package reduce implements the reducer (SPEC_FULL.md §4.6): it contracts
// an ingested linkgraph.Graph down to its declared pages, resolving
// redirects according to the weight.Policy's EndpointPolicy.
package reduce

import (
	"github.com/ritamzico/linkweight/linkgraph"
	"github.com/ritamzico/linkweight/weight"
)

// Reduce re-interns only the declared pages of g, resolves every edge's
// endpoints per policy.Endpoints(), and drops any edge whose resolved
// endpoints are not both declared. The result is a fresh Graph whose
// PageIds are unrelated to g's.
func Reduce(g *linkgraph.Graph, policy weight.Policy) *linkgraph.Graph {
	out := linkgraph.New()

	for id := linkgraph.PageId(1); int(id) <= g.NumPages(); id++ {
		if !g.Declared(id) {
			continue
		}
		name, _ := g.NameOf(id)
		newID := out.GetOrCreate([]byte(name))
		out.MarkDeclared(newID)
	}

	for e := range g.Edges() {
		from, to := resolveEndpoints(g, policy.Endpoints(), e)
		if !g.Declared(from) || !g.Declared(to) {
			continue
		}
		fromName, _ := g.NameOf(from)
		toName, _ := g.NameOf(to)
		newFrom, _ := out.Get([]byte(fromName))
		newTo, _ := out.Get([]byte(toName))
		// Both were interned in the declared-pages pass above.
		_ = out.AddLink(newFrom, newTo)
	}

	return out
}

func resolveEndpoints(g *linkgraph.Graph, ep weight.EndpointPolicy, e linkgraph.Edge) (from, to linkgraph.PageId) {
	switch ep {
	case weight.ResolveBothChain:
		return g.ResolveChain(e.From), g.ResolveChain(e.To)
	case weight.ResolveDestinationOneHop:
		return e.From, g.ResolveOneHop(e.To)
	default:
		return e.From, e.To
	}
}
