package allocation_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
)

// placements are the hyperedges of the six-unit instance followed by the
// four placements of the ten-unit extension.
var placements = [][]int{
	{1, 2, 3}, {2, 4}, {3, 6}, {1, 5}, {3, 5, 6}, {1, 4},
	{4, 7, 8}, {5, 7, 10}, {6, 8, 9, 10}, {1, 2, 4, 7},
}

// unitGraph builds units "1".."n" weighted 1..n and the first k placements.
func unitGraph(t testing.TB, n, k int) *hypergraph.HyperGraph {
	t.Helper()
	vs := make([]core.Vertex, n)
	for i := range vs {
		vs[i] = core.NewVertex(strconv.Itoa(i+1), core.WeightFromInt(int64(i+1)))
	}
	edges := make([]*hypergraph.HyperEdge, k)
	for j, members := range placements[:k] {
		sel := make([]core.Vertex, len(members))
		for i, m := range members {
			sel[i] = vs[m-1]
		}
		edges[j] = hypergraph.MustHyperEdge(strconv.Itoa(j+1), sel...)
	}
	hg, err := hypergraph.New(vs, edges)
	require.NoError(t, err)

	return hg
}

func sixUnits(t testing.TB) *hypergraph.HyperGraph { return unitGraph(t, 6, 6) }

func tenUnits(t testing.TB) *hypergraph.HyperGraph { return unitGraph(t, 10, 10) }

func ids(vs []core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}

	return out
}

func w(s string) core.Weight { return core.MustParseWeight(s) }
