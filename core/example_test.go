package core_test

import (
	"fmt"

	"github.com/katalvlaran/mecalloc/core"
)

// ExampleConflictGraph builds a triangle plus an isolated vertex.
func ExampleConflictGraph() {
	g := core.NewConflictGraph()
	a := core.NewVertex("a", core.WeightFromInt(4))
	b := core.NewVertex("b", core.WeightFromInt(2))
	c := core.NewVertex("c", core.MustParseWeight("1.5"))
	d := core.NewVertex("d", core.WeightFromInt(7))
	for _, v := range []core.Vertex{a, b, c, d} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(b, c)
	_ = g.AddEdge(c, a)

	for _, n := range g.Neighbors(a) {
		fmt.Println(n.ID(), n.Cost())
	}
	fmt.Println(g.AreConnected(c, b), g.Components())

	// Output:
	// b 2
	// c 1.5
	// true [[a b c] [d]]
}

// ExampleVertex shows the two projections of a vertex weight.
func ExampleVertex() {
	v := core.NewVertex("vm-1", core.WeightFromInt(3))
	fmt.Println(v.Cost(), v.OrderingKey())

	// Output:
	// 3 -3
}
