package weight

import "github.com/ritamzico/linkweight/linkgraph"

// InDegree is weighting policy P2: a tally of distinct incoming edge
// records (multiplicities collapsed) per page, divided by the number of
// declared pages. Grounded on
// original_source/src_pageweight/pageweight.cpp's InDegree calculate().
type InDegree struct{}

func (InDegree) Name() string { return "P2" }

func (InDegree) Endpoints() EndpointPolicy { return ResolveDestinationOneHop }

func (InDegree) Weigh(reduced *linkgraph.Graph) ([]float64, error) {
	n := reduced.NumPages()
	if n == 0 {
		return []float64{}, nil
	}
	result := make([]float64, n+1)

	seen := make(map[linkgraph.Edge]struct{})
	counts := make([]int, n+1)
	for e := range reduced.Edges() {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		counts[e.To]++
	}

	for id := 1; id <= n; id++ {
		result[id] = float64(counts[id]) / float64(n)
	}
	return result, nil
}
