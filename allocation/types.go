// Package allocation selects a conflict-free set of placements from a
// hypergraph: SequentialSearch builds a greedy independent set of the
// conflict graph and LocalSearch refines it with bounded claw swaps.
package allocation

import (
	"errors"

	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
)

// Sentinel errors for allocation.
var (
	// ErrNilHyperGraph is returned when Allocate receives a nil hypergraph.
	ErrNilHyperGraph = errors.New("allocation: hypergraph is nil")

	// ErrEmptyPool is returned when a selection is requested from an empty
	// candidate pool. Allocate never reaches it on a valid hypergraph.
	ErrEmptyPool = errors.New("allocation: candidate pool is empty")

	// ErrInvalidDelta is returned for a maximum claw size below MinDelta.
	ErrInvalidDelta = errors.New("allocation: delta must be at least 2")
)

// Strategy turns a hypergraph into a set of mutually non-conflicting
// placements. The result holds conflict-graph vertices (one per chosen
// hyperedge, same ID) sorted by ID.
//
// Implementations keep no graph state between calls and are safe to reuse.
type Strategy interface {
	// Name is a short stable label ("sequential", "local").
	Name() string

	// Allocate returns the selected placements.
	Allocate(hg *hypergraph.HyperGraph) ([]core.Vertex, error)
}

// TotalCost returns the summed energy cost of vs.
func TotalCost(vs []core.Vertex) core.Weight {
	costs := make([]core.Weight, len(vs))
	for i, v := range vs {
		costs[i] = v.Cost()
	}

	return core.SumWeights(costs...)
}

// Objective returns the sum of ordering keys of vs (= -TotalCost).
func Objective(vs []core.Vertex) core.Weight {
	keys := make([]core.Weight, len(vs))
	for i, v := range vs {
		keys[i] = v.OrderingKey()
	}

	return core.SumWeights(keys...)
}

// IsIndependent reports whether no two members of vs are adjacent in cg.
// Complexity: O(k²) for k = len(vs).
func IsIndependent(cg *core.ConflictGraph, vs []core.Vertex) bool {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if cg.AreConnected(vs[i], vs[j]) {
				return false
			}
		}
	}

	return true
}
