package weight

import (
	"fmt"

	"github.com/ritamzico/linkweight/linkgraph"
)

const (
	defaultIterations = 32
	defaultDamping    = 0.85
	// columnSumGuard bounds how far a column's weights may drift above 1.0
	// before it is treated as a broken matrix rather than floating-point
	// slack — matches pagerank.cpp::calculate()'s sanity check.
	columnSumGuard = 1.1
)

// PageRank is weighting policy P1: damped power iteration over the
// column-stochastic link matrix, grounded on
// original_source/src_pagerank/pagerank.cpp::calculate().
type PageRank struct {
	// Iterations is the number of power-iteration steps. Zero selects the
	// default of 32.
	Iterations int
	// Damping is the PageRank damping factor. Zero selects the default of
	// 0.85.
	Damping float64
}

func (p PageRank) Name() string { return "P1" }

func (p PageRank) Endpoints() EndpointPolicy { return ResolveBothChain }

func (p PageRank) iterations() int {
	if p.Iterations > 0 {
		return p.Iterations
	}
	return defaultIterations
}

func (p PageRank) damping() float64 {
	if p.Damping > 0 {
		return p.Damping
	}
	return defaultDamping
}

func (p PageRank) Weigh(reduced *linkgraph.Graph) ([]float64, error) {
	n := reduced.NumPages()
	if n == 0 {
		return []float64{}, nil
	}
	result := make([]float64, n+1)

	m := buildMatrix(reduced)
	for i := 0; i < n; i++ {
		if sum := m.columnSum(i); sum > columnSumGuard {
			return nil, InternalError{Message: fmt.Sprintf("column %d sums to %f, exceeds guard %f", i, sum, columnSumGuard)}
		}
	}

	damping := p.damping()
	base := (1 - damping) / float64(n)
	teleport := 1.0 / float64(n)

	cur := make([]float64, n)
	for i := range cur {
		cur[i] = teleport
	}
	next := make([]float64, n)

	for iter := 0; iter < p.iterations(); iter++ {
		for i := range next {
			next[i] = base
		}
		for col := 0; col < n; col++ {
			xc := cur[col]
			if xc == 0 {
				continue
			}
			c := m.columns[col]
			for k, row := range c.rows {
				next[row] += damping * c.weights[k] * xc
			}
		}
		cur, next = next, cur
	}

	copy(result[1:], cur)
	return result, nil
}
