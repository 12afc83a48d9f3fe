package weight_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ritamzico/linkweight/linkgraph"
	"github.com/ritamzico/linkweight/weight"
)

type WeightSuite struct {
	suite.Suite
}

func TestWeightSuite(t *testing.T) {
	suite.Run(t, new(WeightSuite))
}

// buildGraph builds a tiny declared three-page cycle A -> B -> C -> A.
func buildGraph(s *WeightSuite) *linkgraph.Graph {
	g := linkgraph.New()
	a := g.GetOrCreate([]byte("A"))
	b := g.GetOrCreate([]byte("B"))
	c := g.GetOrCreate([]byte("C"))
	g.MarkDeclared(a)
	g.MarkDeclared(b)
	g.MarkDeclared(c)
	require.NoError(s.T(), g.AddLink(a, b))
	require.NoError(s.T(), g.AddLink(b, c))
	require.NoError(s.T(), g.AddLink(c, a))
	return g
}

// TestPageRankSumsToOne covers property #5: a closed, fully-connected
// graph's PageRank vector sums to ~1 (it is a probability distribution).
func (s *WeightSuite) TestPageRankSumsToOne() {
	g := buildGraph(s)
	v, err := weight.Compute(g, weight.PageRank{})
	require.NoError(s.T(), err)
	require.Len(s.T(), v, 4)

	var sum float64
	for _, x := range v[1:] {
		sum += x
	}
	require.InDelta(s.T(), 1.0, sum, 1e-6)
}

func (s *WeightSuite) TestPageRankSymmetricCycleIsUniform() {
	g := buildGraph(s)
	v, err := weight.Compute(g, weight.PageRank{})
	require.NoError(s.T(), err)
	for id := 1; id <= 3; id++ {
		require.InDelta(s.T(), 1.0/3.0, v[id], 1e-6)
	}
}

func (s *WeightSuite) TestPageRankEmptyGraph() {
	g := linkgraph.New()
	v, err := weight.Compute(g, weight.PageRank{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{}, v)
}

func (s *WeightSuite) TestInDegreeDistinctEdgesOnly() {
	g := linkgraph.New()
	a := g.GetOrCreate([]byte("A"))
	b := g.GetOrCreate([]byte("B"))
	g.MarkDeclared(a)
	g.MarkDeclared(b)
	require.NoError(s.T(), g.AddLink(a, b))
	require.NoError(s.T(), g.AddLink(a, b)) // duplicate, must not double-count

	v, err := weight.Compute(g, weight.InDegree{})
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.5, v[b], 1e-9)
	require.InDelta(s.T(), 0.0, v[a], 1e-9)
}

func (s *WeightSuite) TestInDegreeEndpointPolicyIsDestinationOnly() {
	require.Equal(s.T(), weight.ResolveDestinationOneHop, weight.InDegree{}.Endpoints())
	require.Equal(s.T(), weight.ResolveBothChain, weight.PageRank{}.Endpoints())
}

func (s *WeightSuite) TestParseConfigPageRank() {
	cfg, p, err := weight.ParseConfig("policy=pagerank iterations=10 damping=0.5")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, cfg.Iterations)
	require.Equal(s.T(), "P1", p.Name())
}

func (s *WeightSuite) TestParseConfigInDegree() {
	_, p, err := weight.ParseConfig("policy=indegree")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "P2", p.Name())
}

func (s *WeightSuite) TestParseConfigUnknownPolicy() {
	_, _, err := weight.ParseConfig("policy=bogus")
	require.Error(s.T(), err)
}
