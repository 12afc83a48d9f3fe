package weight

import "github.com/ritamzico/linkweight/linkgraph"

// sparseColumn holds one column of the column-stochastic link matrix: the
// row indices (0-based, dense) it distributes weight to, and the matching
// weights.
type sparseColumn struct {
	rows    []int32
	weights []float64
}

// matrix is a CSR-shaped (by column rather than by row) sparse
// representation of the reduced graph's link structure, built fresh for
// each PageRank run. It intentionally does not reach for a third-party
// sparse-linear-algebra library — see DESIGN.md.
type matrix struct {
	n       int
	columns []sparseColumn
}

// buildMatrix turns g's declared-page edge multiset into a column-
// stochastic matrix: column i holds, for every outgoing edge of page i+1,
// a weight of 1/outdegree(i+1). A declared page with no outgoing edges
// (a dangling page) gets an explicit zero-weight self-row rather than an
// absent column — the Go analogue of the original's "dummy element"
// padding, which existed only to satisfy a dense-dimensioned sparse-matrix
// constructor that Go slices have no equivalent of.
func buildMatrix(g *linkgraph.Graph) *matrix {
	n := g.NumPages()
	outdeg := make([]int, n)
	for e := range g.Edges() {
		outdeg[e.From-1]++
	}

	m := &matrix{n: n, columns: make([]sparseColumn, n)}
	for e := range g.Edges() {
		col := e.From - 1
		w := 1.0 / float64(outdeg[col])
		m.columns[col].rows = append(m.columns[col].rows, int32(e.To-1))
		m.columns[col].weights = append(m.columns[col].weights, w)
	}
	for i := 0; i < n; i++ {
		if outdeg[i] == 0 {
			m.columns[i] = sparseColumn{rows: []int32{int32(i)}, weights: []float64{0}}
		}
	}
	return m
}

// columnSum returns the sum of column i's weights, used by the
// column-stochastic sanity guard.
func (m *matrix) columnSum(i int) float64 {
	var sum float64
	for _, w := range m.columns[i].weights {
		sum += w
	}
	return sum
}
