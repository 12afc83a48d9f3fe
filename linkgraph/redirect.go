package linkgraph

// maxRedirectHops bounds the full-chain walk in ResolveChain — the original
// pagerank.cpp resolveRedirect gives up after the same number of hops
// rather than looping forever on a cycle.
const maxRedirectHops = 20

// ResolveChain walks the redirect table from id to a fixed point, following
// up to maxRedirectHops links (PageRank's resolution strategy). If the walk
// revisits a page or exceeds the hop limit, it falls back to the smallest
// declared PageId seen on the path, or to the smallest PageId seen on the
// path if none was declared — this keeps the result a stable, always-in-range
// PageId even on a redirect cycle instead of failing the whole reduction.
func (g *Graph) ResolveChain(id PageId) PageId {
	cur := id
	seen := make(map[PageId]struct{}, 4)
	var minDeclared PageId
	minSeen := id

	for hop := 0; hop < maxRedirectHops; hop++ {
		if cur < minSeen {
			minSeen = cur
		}
		if g.Declared(cur) && (minDeclared == 0 || cur < minDeclared) {
			minDeclared = cur
		}
		if _, revisited := seen[cur]; revisited {
			if minDeclared != 0 {
				return minDeclared
			}
			return minSeen
		}
		seen[cur] = struct{}{}

		next, ok := g.redirect[cur]
		if !ok {
			return cur
		}
		cur = next
	}

	if minDeclared != 0 {
		return minDeclared
	}
	return minSeen
}

// ResolveOneHop resolves id by a single redirect step, but only when id
// itself was never declared: a page that was the subject of its own "*"
// declaration anchors in place rather than redirecting away, matching
// pageweight.cpp's declared-anchored resolveRedirect (InDegree's strategy).
func (g *Graph) ResolveOneHop(id PageId) PageId {
	if g.Declared(id) {
		return id
	}
	if to, ok := g.redirect[id]; ok {
		return to
	}
	return id
}
