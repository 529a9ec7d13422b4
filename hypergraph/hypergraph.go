// File: hypergraph.go
// Role: HyperGraph construction, mutation and read accessors.
// Invariants (checked by New and AddHyperEdge):
//   1. the union of hyperedge vertex sets equals the vertex set;
//   2. hyperedge IDs are unique;
//   3. no two hyperedges share a vertex set;
//   4. every hyperedge has at least one vertex;
//   5. every hyperedge has a non-empty ID.
// AI-HINT (file):
//   - The vertex map is the identity registry. Hyperedges stored in the graph
//     always reference registry vertices, so a hyperedge weight is the sum of
//     the registered weights of its members.
//   - Accessors return ID-sorted slices; returned *HyperEdge values are shared
//     and must be treated as read-only.

package hypergraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/mecalloc/core"
)

// HyperGraph is a validated set of vertices and the hyperedges over them.
type HyperGraph struct {
	vertices   map[string]core.Vertex // identity registry
	edges      map[string]*HyperEdge  // hyperedge ID → hyperedge
	signatures map[string]string      // vertex-set signature → hyperedge ID
}

// New validates vertices and edges against the invariants above and returns
// the HyperGraph. The inputs are copied; later mutation of an input
// *HyperEdge does not affect the graph.
//
// Errors (wrapped, test with errors.Is):
//   - core.ErrEmptyVertexID, core.ErrDuplicateVertex for the vertex list;
//   - ErrNilHyperEdge, ErrEmptyHyperEdgeID, ErrEmptyHyperEdge,
//     ErrDuplicateHyperEdgeID, ErrDuplicateVertexSet, ErrVertexSetMismatch
//     for the hyperedges.
//
// Complexity: O(V + Σ|e| log |e|).
func New(vertices []core.Vertex, edges []*HyperEdge) (*HyperGraph, error) {
	if err := validate(vertices, edges); err != nil {
		return nil, err
	}

	g := &HyperGraph{
		vertices:   make(map[string]core.Vertex, len(vertices)),
		edges:      make(map[string]*HyperEdge, len(edges)),
		signatures: make(map[string]string, len(edges)),
	}
	for _, v := range vertices {
		g.vertices[v.ID()] = v
	}
	for _, e := range edges {
		g.insert(e)
	}

	return g, nil
}

// AddHyperEdge validates e against the graph and adds it, registering any
// vertices the graph did not know yet.
//
// Errors: ErrNilHyperEdge, ErrEmptyHyperEdgeID, ErrEmptyHyperEdge,
// ErrDuplicateHyperEdgeID, ErrDuplicateVertexSet.
//
// Complexity: O(|e| log |e|).
func (g *HyperGraph) AddHyperEdge(e *HyperEdge) error {
	if e == nil {
		return ErrNilHyperEdge
	}
	if e.ID() == "" {
		return fmt.Errorf("AddHyperEdge%v: %w", e.VertexIDs(), ErrEmptyHyperEdgeID)
	}
	if e.Len() == 0 {
		return fmt.Errorf("AddHyperEdge(%s): %w", e.ID(), ErrEmptyHyperEdge)
	}
	if _, dup := g.edges[e.ID()]; dup {
		return fmt.Errorf("AddHyperEdge(%s): %w", e.ID(), ErrDuplicateHyperEdgeID)
	}
	if other, dup := g.signatures[e.signature()]; dup {
		return fmt.Errorf("AddHyperEdge(%s): same vertices as %s: %w", e.ID(), other, ErrDuplicateVertexSet)
	}
	g.insert(e)

	return nil
}

// insert stores a copy of e bound to the registry. Callers have validated e.
func (g *HyperGraph) insert(e *HyperEdge) {
	if g.edges == nil {
		g.vertices = make(map[string]core.Vertex)
		g.edges = make(map[string]*HyperEdge)
		g.signatures = make(map[string]string)
	}
	bound := e.rebind(g.vertices)
	g.edges[bound.id] = bound
	g.signatures[bound.signature()] = bound.id
}

// Vertex returns the registered vertex id.
func (g *HyperGraph) Vertex(id string) (core.Vertex, bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// HyperEdge returns the hyperedge id (read-only).
func (g *HyperGraph) HyperEdge(id string) (*HyperEdge, bool) {
	e, ok := g.edges[id]

	return e, ok
}

// Vertices returns all vertices sorted by ID.
func (g *HyperGraph) Vertices() []core.Vertex {
	out := make([]core.Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	core.SortByID(out)

	return out
}

// HyperEdges returns all hyperedges sorted by ID (read-only).
func (g *HyperGraph) HyperEdges() []*HyperEdge {
	out := make([]*HyperEdge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// VertexCount returns the number of vertices.
func (g *HyperGraph) VertexCount() int { return len(g.vertices) }

// HyperEdgeCount returns the number of hyperedges.
func (g *HyperGraph) HyperEdgeCount() int { return len(g.edges) }

// HyperEdgesFor maps conflict-graph vertices (as returned by an allocation)
// back to their hyperedges, sorted by ID. Unknown IDs are skipped.
func (g *HyperGraph) HyperEdgesFor(selected []core.Vertex) []*HyperEdge {
	out := make([]*HyperEdge, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))
	for _, v := range selected {
		e, ok := g.edges[v.ID()]
		if !ok {
			continue
		}
		if _, dup := seen[e.id]; dup {
			continue
		}
		seen[e.id] = struct{}{}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

func (g *HyperGraph) String() string {
	var sb strings.Builder
	sb.WriteString("HyperGraph{\nVertices:\n")
	for _, v := range g.Vertices() {
		sb.WriteString(v.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("HyperEdges:\n")
	for _, e := range g.HyperEdges() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("}")

	return sb.String()
}
