// Package genfixture generates randomized link-graph fixtures for the
// property tests named in SPEC_FULL.md §8, descended from the teacher's
// internal/sampling.IndependentEdgeSampler: where that sampler flipped a
// coin per edge to decide survival in a sampled world, Generate flips
// coins per page and per edge to build a world in the first place.
package genfixture

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/ritamzico/linkweight/linkgraph"
)

// Config controls the shape of a generated graph.
type Config struct {
	Pages            int
	EdgesPerPage     int
	DeclaredFraction float64
	RedirectFraction float64
}

// DefaultConfig returns a small, densely-connected fixture shape suitable
// for most property tests.
func DefaultConfig() Config {
	return Config{
		Pages:            12,
		EdgesPerPage:     3,
		DeclaredFraction: 0.7,
		RedirectFraction: 0.2,
	}
}

// Generate builds one random graph from cfg using rng. Page names are
// "P0".."P<n-1>" in creation order, so PageId i+1 always names "P<i>" —
// useful for assertions without re-querying NameOf.
func Generate(rng *rand.Rand, cfg Config) *linkgraph.Graph {
	g := linkgraph.New()
	ids := make([]linkgraph.PageId, cfg.Pages)
	for i := range ids {
		ids[i] = g.GetOrCreate([]byte(fmt.Sprintf("P%d", i)))
	}

	for _, id := range ids {
		if rng.Float64() < cfg.DeclaredFraction {
			g.MarkDeclared(id)
		}
	}

	for _, id := range ids {
		if len(ids) > 1 && cfg.RedirectFraction > 0 && rng.Float64() < cfg.RedirectFraction {
			target := ids[rng.IntN(len(ids))]
			_ = g.DefineRedirect(id, target)
		}
		for e := 0; e < cfg.EdgesPerPage; e++ {
			target := ids[rng.IntN(len(ids))]
			_ = g.AddLink(id, target)
		}
	}

	return g
}

// GenerateMany builds one graph per seed concurrently — the one place this
// test-only fixture generator uses goroutines, explicitly carved out of
// SPEC_FULL.md §5's single-threaded CORE guarantee.
func GenerateMany(seeds []uint64, cfg Config) []*linkgraph.Graph {
	out := make([]*linkgraph.Graph, len(seeds))
	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func(i int, seed uint64) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			out[i] = Generate(rng, cfg)
		}(i, seed)
	}
	wg.Wait()
	return out
}
