package hypergraph

import "github.com/katalvlaran/mecalloc/core"

// ConflictGraph derives the conflict graph of g from scratch.
//
// Implementation:
//   - Stage 1: one conflict vertex per hyperedge, same ID, weight = hyperedge weight.
//   - Stage 2: for every unordered pair (i < j) in ID order, add an edge iff
//     the two vertex sets intersect.
//
// The result is not kept in sync with later AddHyperEdge calls.
//
// Complexity: O(E² · a) where a is the average hyperedge arity.
func (g *HyperGraph) ConflictGraph() *core.ConflictGraph {
	cg := core.NewConflictGraph()
	edges := g.HyperEdges()

	// Stage 1: IDs are unique and non-empty in a valid HyperGraph, so AddVertex cannot fail.
	nodes := make([]core.Vertex, len(edges))
	for i, e := range edges {
		nodes[i] = core.NewVertex(e.id, e.OrderingKey())
		_ = cg.AddVertex(nodes[i])
	}

	// Stage 2: i < j over distinct IDs, so AddEdge never sees a loop or a repeat.
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].Intersects(edges[j]) {
				_ = cg.AddEdge(nodes[i], nodes[j])
			}
		}
	}

	return cg
}
