package hypergraph_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
)

// units returns vertices "1".."n" weighted 1..n.
func units(n int) []core.Vertex {
	vs := make([]core.Vertex, n)
	for i := range vs {
		vs[i] = core.NewVertex(strconv.Itoa(i+1), core.WeightFromInt(int64(i+1)))
	}

	return vs
}

// pick selects vertices by 1-based position.
func pick(vs []core.Vertex, at ...int) []core.Vertex {
	out := make([]core.Vertex, len(at))
	for i, p := range at {
		out[i] = vs[p-1]
	}

	return out
}

// unnamed builds a hyperedge from the zero value, so it has members but no ID.
func unnamed(t testing.TB, vs ...core.Vertex) *hypergraph.HyperEdge {
	t.Helper()
	var e hypergraph.HyperEdge
	for _, v := range vs {
		require.NoError(t, e.AddVertex(v))
	}

	return &e
}

// sixUnitGraph is the small placement instance used across the tests.
func sixUnitGraph(t *testing.T) *hypergraph.HyperGraph {
	t.Helper()
	vs := units(6)
	edges := []*hypergraph.HyperEdge{
		hypergraph.MustHyperEdge("1", pick(vs, 1, 2, 3)...),
		hypergraph.MustHyperEdge("2", pick(vs, 2, 4)...),
		hypergraph.MustHyperEdge("3", pick(vs, 3, 6)...),
		hypergraph.MustHyperEdge("4", pick(vs, 1, 5)...),
		hypergraph.MustHyperEdge("5", pick(vs, 3, 5, 6)...),
		hypergraph.MustHyperEdge("6", pick(vs, 1, 4)...),
	}
	g, err := hypergraph.New(vs, edges)
	require.NoError(t, err)

	return g
}

func w(s string) core.Weight { return core.MustParseWeight(s) }

func ids(vs []core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}

	return out
}

func edgeIDs(es []*hypergraph.HyperEdge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID()
	}

	return out
}

// mustEdge builds a hyperedge over unit-weight vertices with the given IDs.
func mustEdge(id string, members ...string) *hypergraph.HyperEdge {
	vs := make([]core.Vertex, len(members))
	for i, m := range members {
		vs[i] = core.NewVertex(m, core.WeightFromInt(1))
	}

	return hypergraph.MustHyperEdge(id, vs...)
}
