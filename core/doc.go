// Package core provides the value types and the conflict graph on which the
// MEC placement allocators run.
//
// What:
//
//   - Weight: exact decimal (gopkg.in/inf.v0). Every energy cost, hyperedge
//     sum and local-search objective is a Weight, so comparisons are exact and
//     identical on every platform.
//   - Vertex: an ID plus one canonical signed weight (always ≤ 0) exposed as
//     Cost() (the magnitude) and OrderingKey() (the signed value). Identity is
//     the ID alone.
//   - Edge: an unordered pair stored with the lexicographically smaller ID first.
//   - ConflictGraph: a simple undirected graph with a symmetric adjacency index.
//
// Core Methods:
//
//	// ConflictGraph lifecycle
//	AddVertex(v Vertex) error          // O(1)
//	AddEdge(a, b Vertex) error         // O(1)
//
//	// Query
//	Vertex(id string) (Vertex, bool)   // O(1)
//	Neighbors(v Vertex) []Vertex       // O(d·log d), sorted, empty if unknown
//	AreConnected(a, b Vertex) bool     // O(1)
//	Vertices() []Vertex                // O(V·log V)
//	Edges() []Edge                     // O(E·log E)
//
//	// gonum interop
//	Undirected() (*simple.UndirectedGraph, []string)
//	Components() [][]string
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – absent or zero vertex passed to AddEdge
//	ErrDuplicateVertex     – vertex ID registered twice
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – second AddEdge for the same pair
//	ErrBadWeight           – unparsable or non-finite weight
//
// A ConflictGraph is not synchronized; it belongs to the call that built it.
package core
