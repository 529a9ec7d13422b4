// Package hypergraph defines HyperEdge and HyperGraph: placements over
// resource-unit vertices, the invariants that keep them well formed, the
// binary placement-matrix encoding and the derived conflict graph.
package hypergraph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/mecalloc/core"
)

// Sentinel errors for hypergraph construction and mutation.
var (
	// ErrNilHyperEdge indicates a nil *HyperEdge was supplied.
	ErrNilHyperEdge = errors.New("hypergraph: hyperedge is nil")

	// ErrEmptyHyperEdgeID indicates a hyperedge whose ID is the empty string.
	ErrEmptyHyperEdgeID = errors.New("hypergraph: hyperedge ID is empty")

	// ErrEmptyHyperEdge indicates a hyperedge without vertices.
	ErrEmptyHyperEdge = errors.New("hypergraph: hyperedge has no vertices")

	// ErrDuplicateHyperEdgeID indicates two hyperedges sharing an ID.
	ErrDuplicateHyperEdgeID = errors.New("hypergraph: duplicate hyperedge ID")

	// ErrDuplicateVertexSet indicates two hyperedges over the same vertex set.
	ErrDuplicateVertexSet = errors.New("hypergraph: duplicate hyperedge vertex set")

	// ErrVertexSetMismatch indicates the union of hyperedges differs from the vertex set.
	ErrVertexSetMismatch = errors.New("hypergraph: hyperedge union does not match vertex set")

	// ErrNonBinaryMatrix indicates a placement-matrix cell other than 0 or 1.
	ErrNonBinaryMatrix = errors.New("hypergraph: placement matrix must contain only 0 or 1")

	// ErrWeightCountMismatch indicates len(weights) != number of matrix rows.
	ErrWeightCountMismatch = errors.New("hypergraph: weight count does not match matrix rows")

	// ErrRaggedMatrix indicates matrix rows of unequal length.
	ErrRaggedMatrix = errors.New("hypergraph: placement matrix rows differ in length")
)

// HyperEdge is a named placement: a non-empty set of distinct vertices whose
// weight is the sum of its members' weights.
//
// The weight is cached and kept current by AddVertex. The zero value is an
// empty hyperedge without an ID; no HyperGraph accepts it until it is given
// one through NewHyperEdge.
type HyperEdge struct {
	id       string
	vertices map[string]core.Vertex
	key      core.Weight // Σ member OrderingKey()
}

// NewHyperEdge returns hyperedge id over vs.
// An empty hyperedge can be built but no HyperGraph accepts it.
//
// Errors: ErrEmptyHyperEdgeID, core.ErrEmptyVertexID, core.ErrDuplicateVertex.
func NewHyperEdge(id string, vs ...core.Vertex) (*HyperEdge, error) {
	if id == "" {
		return nil, fmt.Errorf("NewHyperEdge: %w", ErrEmptyHyperEdgeID)
	}
	e := &HyperEdge{id: id, vertices: make(map[string]core.Vertex, len(vs))}
	for _, v := range vs {
		if err := e.AddVertex(v); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// MustHyperEdge is NewHyperEdge for fixtures; it panics on error.
func MustHyperEdge(id string, vs ...core.Vertex) *HyperEdge {
	e, err := NewHyperEdge(id, vs...)
	if err != nil {
		panic(err)
	}

	return e
}

// AddVertex adds v and folds its weight into the cached sum.
func (e *HyperEdge) AddVertex(v core.Vertex) error {
	if v.IsZero() {
		return fmt.Errorf("HyperEdge(%s).AddVertex: %w", e.id, core.ErrEmptyVertexID)
	}
	if _, dup := e.vertices[v.ID()]; dup {
		return fmt.Errorf("HyperEdge(%s).AddVertex(%s): %w", e.id, v.ID(), core.ErrDuplicateVertex)
	}
	if e.vertices == nil {
		e.vertices = make(map[string]core.Vertex)
	}
	e.vertices[v.ID()] = v
	e.key = e.key.Add(v.OrderingKey())

	return nil
}

// ID returns the hyperedge identifier.
func (e *HyperEdge) ID() string { return e.id }

// Len returns the number of member vertices.
func (e *HyperEdge) Len() int { return len(e.vertices) }

// Contains reports whether vertex id is a member.
func (e *HyperEdge) Contains(id string) bool {
	_, ok := e.vertices[id]

	return ok
}

// Vertices returns the members sorted by ID.
func (e *HyperEdge) Vertices() []core.Vertex {
	out := make([]core.Vertex, 0, len(e.vertices))
	for _, v := range e.vertices {
		out = append(out, v)
	}
	core.SortByID(out)

	return out
}

// VertexIDs returns the member IDs sorted.
func (e *HyperEdge) VertexIDs() []string {
	ids := make([]string, 0, len(e.vertices))
	for id := range e.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Cost returns the total energy cost of the placement.
func (e *HyperEdge) Cost() core.Weight { return e.key.Neg() }

// OrderingKey returns -Cost(), the value the conflict vertex carries.
func (e *HyperEdge) OrderingKey() core.Weight { return e.key }

// Intersects reports whether e and o share at least one vertex.
// Complexity: O(min(|e|, |o|)).
func (e *HyperEdge) Intersects(o *HyperEdge) bool {
	small, large := e.vertices, o.vertices
	if len(small) > len(large) {
		small, large = large, small
	}
	for id := range small {
		if _, ok := large[id]; ok {
			return true
		}
	}

	return false
}

// SameVertexSet reports whether e and o have identical member IDs.
func (e *HyperEdge) SameVertexSet(o *HyperEdge) bool {
	if len(e.vertices) != len(o.vertices) {
		return false
	}
	for id := range e.vertices {
		if _, ok := o.vertices[id]; !ok {
			return false
		}
	}

	return true
}

// signature is a canonical key of the vertex set, used to detect duplicates.
// Each ID is quoted, so no ID content can collide with the separator.
func (e *HyperEdge) signature() string {
	var b strings.Builder
	for _, id := range e.VertexIDs() {
		b.WriteString(strconv.Quote(id))
		b.WriteByte(',')
	}

	return b.String()
}

// rebind returns a copy of e whose members are taken from registry by ID,
// registering unknown IDs with the member's own weight.
func (e *HyperEdge) rebind(registry map[string]core.Vertex) *HyperEdge {
	out := &HyperEdge{id: e.id, vertices: make(map[string]core.Vertex, len(e.vertices))}
	for _, id := range e.VertexIDs() {
		v, ok := registry[id]
		if !ok {
			v = e.vertices[id]
			registry[id] = v
		}
		out.vertices[id] = v
		out.key = out.key.Add(v.OrderingKey())
	}

	return out
}

func (e *HyperEdge) String() string {
	parts := make([]string, 0, len(e.vertices))
	for _, v := range e.Vertices() {
		parts = append(parts, v.String())
	}

	return fmt.Sprintf("HyperEdge{id=%s, vertices=[%s], weight=%s}",
		e.id, strings.Join(parts, ", "), e.Cost())
}
