// Package core defines the id-keyed Vertex and canonical Edge value types,
// the exact decimal Weight, and the ConflictGraph built over them.
//
// This file declares Vertex, Edge, EdgeKey and the sentinel errors shared by
// every package of the module.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist (or is the zero Vertex).
//	ErrDuplicateVertex     - a vertex with the same ID is already registered.
//	ErrLoopNotAllowed      - an edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - a second edge between the same pair.
//	ErrBadWeight           - weight text is not a decimal literal, or is NaN/Inf.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates a vertex ID registered twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrLoopNotAllowed indicates a self-loop; conflict graphs are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge; conflict graphs are simple.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates an unparsable or non-finite weight.
	ErrBadWeight = errors.New("core: bad weight")
)

// Vertex is a weighted node identified solely by its ID.
//
// The weight is held as one canonical signed value, always ≤ 0: a vertex
// built with 3 or with -3 stores -3. Two projections expose it:
//
//	Cost()        = |w|  (the energy cost, ≥ 0)
//	OrderingKey() = -|w| (the value every allocation comparator sorts by)
//
// Vertices are immutable values. Two Vertex values with the same ID are the
// same vertex regardless of weight; containers therefore key them by ID.
type Vertex struct {
	id  string
	key Weight
}

// NewVertex returns the vertex id with weight magnitude |w|.
func NewVertex(id string, w Weight) Vertex {
	return Vertex{id: id, key: w.Abs().Neg()}
}

// ID returns the vertex identifier.
func (v Vertex) ID() string { return v.id }

// Cost returns the non-negative energy cost of the vertex.
func (v Vertex) Cost() Weight { return v.key.Neg() }

// OrderingKey returns the canonical signed value (-Cost).
// Greater keys are cheaper vertices.
func (v Vertex) OrderingKey() Weight { return v.key }

// WithID returns a copy of v carrying a new identifier.
func (v Vertex) WithID(id string) Vertex {
	v.id = id

	return v
}

// IsZero reports whether v is the zero Vertex (no identity).
func (v Vertex) IsZero() bool { return v.id == "" }

// Equal reports identity equality (IDs only).
func (v Vertex) Equal(o Vertex) bool { return v.id == o.id }

func (v Vertex) String() string {
	return fmt.Sprintf("Vertex{id=%s, weight=%s}", v.id, v.Cost())
}

// EdgeKey is the comparable identity of an Edge: A < B lexicographically.
type EdgeKey struct {
	A, B string
}

// Edge is an unordered vertex pair stored in canonical order:
// the endpoint with the lexicographically smaller ID comes first, so
// NewEdge(a, b) and NewEdge(b, a) are equal.
type Edge struct {
	first, second Vertex
}

// NewEdge returns the canonical edge {a, b}.
func NewEdge(a, b Vertex) Edge {
	if a.id < b.id {
		return Edge{first: a, second: b}
	}

	return Edge{first: b, second: a}
}

// First returns the endpoint with the smaller ID.
func (e Edge) First() Vertex { return e.first }

// Second returns the endpoint with the larger ID.
func (e Edge) Second() Vertex { return e.second }

// Key returns the comparable identity of e.
func (e Edge) Key() EdgeKey { return EdgeKey{A: e.first.id, B: e.second.id} }

// Equal reports whether e and o join the same pair of vertex IDs.
func (e Edge) Equal(o Edge) bool { return e.Key() == o.Key() }

// Other returns the endpoint opposite to v, and false if v is not on e.
func (e Edge) Other(v Vertex) (Vertex, bool) {
	switch v.id {
	case e.first.id:
		return e.second, true
	case e.second.id:
		return e.first, true
	default:
		return Vertex{}, false
	}
}

func (e Edge) String() string {
	return fmt.Sprintf("Edge{vertices=%s, %s}", e.first, e.second)
}
