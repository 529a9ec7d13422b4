// File: gonum.go
// Role: bridge from ConflictGraph to gonum's graph model for external tooling
// (layout, analysis, benchmarking collaborators).

package core

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Undirected returns a gonum copy of g. Node i corresponds to ids[i], where
// ids is the sorted vertex ID list, so node numbering is deterministic.
// Complexity: O(V log V + E).
func (g *ConflictGraph) Undirected() (ug *simple.UndirectedGraph, ids []string) {
	ids = g.VertexIDs()
	index := make(map[string]int64, len(ids))
	ug = simple.NewUndirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		ug.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.edges {
		ug.SetEdge(simple.Edge{
			F: simple.Node(index[e.first.id]),
			T: simple.Node(index[e.second.id]),
		})
	}

	return ug, ids
}

// Components returns the connected components of g as sorted ID lists,
// ordered by their smallest ID. Placements in different components never
// compete for a resource unit.
func (g *ConflictGraph) Components() [][]string {
	ug, ids := g.Undirected()
	comps := topo.ConnectedComponents(ug)

	out := make([][]string, 0, len(comps))
	for _, comp := range comps {
		members := make([]string, 0, len(comp))
		for _, n := range comp {
			members = append(members, ids[n.ID()])
		}
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
