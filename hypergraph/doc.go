// Package hypergraph models candidate placements of a Mobile-Edge-Computing
// scenario as a weighted hypergraph.
//
// Each vertex is a resource unit with an energy cost; each hyperedge is a
// named placement spanning several units, weighted by the sum of its members.
// Two placements conflict when they share a unit.
//
// Construction:
//
//	New(vertices, edges)                 // explicit lists
//	FromPlacementMatrix(matrix, weights) // rows = vertices, cols = hyperedges
//	FromDense(m, weights)                // same, from a gonum matrix
//	(*HyperGraph).AddHyperEdge(e)        // grow an existing graph
//
// Every constructor and AddHyperEdge enforce:
//
//  1. the union of hyperedge vertex sets equals the vertex set;
//  2. hyperedge IDs are unique;
//  3. no two hyperedges have the same vertex set;
//  4. every hyperedge has at least one vertex.
//
// Derived views:
//
//	ConflictGraph()   // rebuilt on every call, O(E²·arity)
//	PlacementMatrix() // rows and columns sorted by ID
//	PlacementDense()  // gonum copy of PlacementMatrix
//	Weights()         // vertex costs in PlacementMatrix row order
//
// All failures are returned as wrapped sentinels; use errors.Is.
package hypergraph
