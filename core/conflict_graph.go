// File: conflict_graph.go
// Role: ConflictGraph, the simple undirected graph derived from a hypergraph.
// Determinism:
//   - Vertices(), Edges(), Neighbors() return results sorted by ID.
// Concurrency:
//   - Not synchronized. A ConflictGraph is owned by the call that built it.
// AI-HINT (file):
//   - adjacency[a][b] is mirrored for every edge; edges keeps the canonical Edge once.
//   - Neighbors of an unknown or isolated vertex is an empty slice, never an error.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// ConflictGraph is an adjacency-indexed simple graph (no loops, no parallel
// edges). Each vertex stands for one hyperedge of the source hypergraph and
// an edge marks that two hyperedges share a resource unit.
//
// The zero value is an empty graph ready for use.
type ConflictGraph struct {
	vertices  map[string]Vertex              // vertex ID → Vertex
	adjacency map[string]map[string]struct{} // symmetric: adjacency[a][b] ⇔ adjacency[b][a]
	edges     map[EdgeKey]Edge               // canonical edge set
}

// NewConflictGraph returns an empty ConflictGraph.
// Complexity: O(1).
func NewConflictGraph() *ConflictGraph {
	return &ConflictGraph{
		vertices:  make(map[string]Vertex),
		adjacency: make(map[string]map[string]struct{}),
		edges:     make(map[EdgeKey]Edge),
	}
}

// AddVertex registers v.
//
// Errors:
//   - ErrEmptyVertexID: v has no ID.
//   - ErrDuplicateVertex: a vertex with v's ID already exists.
//
// Complexity: O(1).
func (g *ConflictGraph) AddVertex(v Vertex) error {
	if v.IsZero() {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[v.id]; exists {
		return fmt.Errorf("AddVertex(%s): %w", v.id, ErrDuplicateVertex)
	}
	if g.vertices == nil {
		*g = *NewConflictGraph()
	}
	g.vertices[v.id] = v
	g.adjacency[v.id] = make(map[string]struct{})

	return nil
}

// AddEdge connects a and b.
//
// Implementation:
//   - Stage 1: Reject zero or unregistered endpoints (ErrVertexNotFound).
//   - Stage 2: Reject a == b (ErrLoopNotAllowed).
//   - Stage 3: Reject an existing canonical edge (ErrMultiEdgeNotAllowed).
//   - Stage 4: Record the canonical edge and mirror the adjacency index.
//
// Endpoints are resolved by ID, so the stored edge always carries the
// registered vertices even if a or b hold a different weight.
//
// Complexity: O(1).
func (g *ConflictGraph) AddEdge(a, b Vertex) error {
	// Stage 1: both endpoints must be present.
	if a.IsZero() || b.IsZero() {
		return fmt.Errorf("AddEdge: %w", ErrVertexNotFound)
	}
	va, okA := g.vertices[a.id]
	vb, okB := g.vertices[b.id]
	if !okA || !okB {
		return fmt.Errorf("AddEdge(%s, %s): %w", a.id, b.id, ErrVertexNotFound)
	}
	// Stage 2: simple graph, no loops.
	if va.id == vb.id {
		return fmt.Errorf("AddEdge(%s, %s): %w", a.id, b.id, ErrLoopNotAllowed)
	}
	// Stage 3: simple graph, no parallel edges.
	e := NewEdge(va, vb)
	if _, exists := g.edges[e.Key()]; exists {
		return fmt.Errorf("AddEdge(%s, %s): %w", a.id, b.id, ErrMultiEdgeNotAllowed)
	}
	// Stage 4: record and mirror.
	g.edges[e.Key()] = e
	g.adjacency[va.id][vb.id] = struct{}{}
	g.adjacency[vb.id][va.id] = struct{}{}

	return nil
}

// HasVertex reports whether id is registered.
func (g *ConflictGraph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex registered under id; ok is false if none.
func (g *ConflictGraph) Vertex(id string) (v Vertex, ok bool) {
	v, ok = g.vertices[id]

	return v, ok
}

// Vertices returns all vertices sorted by ID.
// Complexity: O(V log V).
func (g *ConflictGraph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	SortByID(out)

	return out
}

// VertexIDs returns all vertex IDs sorted lexicographically.
func (g *ConflictGraph) VertexIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges sorted by (First().ID(), Second().ID()).
// Complexity: O(E log E).
func (g *ConflictGraph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := out[i].Key(), out[j].Key()
		if ki.A != kj.A {
			return ki.A < kj.A
		}

		return ki.B < kj.B
	})

	return out
}

// HasEdge reports whether the canonical edge {a, b} exists.
func (g *ConflictGraph) HasEdge(a, b Vertex) bool {
	_, ok := g.edges[NewEdge(a, b).Key()]

	return ok
}

// Neighbors returns the vertices adjacent to v, sorted by ID.
// Unknown and isolated vertices yield an empty slice.
// Complexity: O(d log d).
func (g *ConflictGraph) Neighbors(v Vertex) []Vertex {
	adj := g.adjacency[v.id]
	out := make([]Vertex, 0, len(adj))
	for id := range adj {
		out = append(out, g.vertices[id])
	}
	SortByID(out)

	return out
}

// AreConnected reports whether a and b are adjacent.
// Complexity: O(1).
func (g *ConflictGraph) AreConnected(a, b Vertex) bool {
	_, ok := g.adjacency[a.id][b.id]

	return ok
}

// Degree returns the number of neighbors of id (0 if unknown).
func (g *ConflictGraph) Degree(id string) int {
	return len(g.adjacency[id])
}

// VertexCount returns |V|.
func (g *ConflictGraph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *ConflictGraph) EdgeCount() int { return len(g.edges) }

func (g *ConflictGraph) String() string {
	var sb strings.Builder
	sb.WriteString("ConflictGraph {\nVertices:\n")
	for _, v := range g.Vertices() {
		sb.WriteString(v.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("Edges:\n")
	for _, e := range g.Edges() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("}")

	return sb.String()
}

// SortByID sorts vs in place by ascending ID.
func SortByID(vs []Vertex) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].id < vs[j].id })
}
