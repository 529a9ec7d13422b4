package hypergraph_test

import (
	"fmt"

	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
)

// ExampleFromPlacementMatrix builds three placements over four units and
// lists the conflicts between them.
func ExampleFromPlacementMatrix() {
	matrix := [][]int{
		{1, 0, 1},
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	weights := []core.Weight{
		core.MustParseWeight("1.5"),
		core.WeightFromInt(2),
		core.WeightFromInt(3),
		core.MustParseWeight("0.25"),
	}
	g, err := hypergraph.FromPlacementMatrix(matrix, weights)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.HyperEdges() {
		fmt.Println(e.ID(), e.VertexIDs(), e.Cost())
	}
	for _, e := range g.ConflictGraph().Edges() {
		fmt.Println(e.Key().A, "-", e.Key().B)
	}

	// Output:
	// 1 [1 2] 3.5
	// 2 [2 3] 5
	// 3 [1 4] 1.75
	// 1 - 2
	// 1 - 3
}
