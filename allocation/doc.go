// Package allocation chooses a conflict-free, low-cost set of placements.
//
// The problem is a maximum-weight independent set on the conflict graph of a
// hypergraph, solved heuristically:
//
//   - SequentialSearch - greedy. While candidates remain, select the one with
//     the greatest OrderingKey (the cheapest placement, ties by smallest ID)
//     and drop it and its neighbors. The result is independent by construction.
//
//   - LocalSearch - starts from SequentialSearch and applies claw swaps.
//     For each selected vertex u, costliest first, and each claw size
//     φ = 2..Delta, it searches u's neighbors (cheapest first) for φ pairwise
//     non-adjacent vertices. The claw is accepted when inserting it, after
//     evicting every selected vertex adjacent to it, gives
//
//     objective(new)² < objective(old)²
//
//     where objective is the exact sum of ordering keys. The first accepted
//     claw is applied and the scan restarts; a pass without a swap ends the run.
//
// Worked example (vertex i has cost i):
//
//	placements  1:{1,2,3} 2:{2,4} 3:{3,6} 4:{1,5} 5:{3,5,6} 6:{1,4}
//	greedy      6 (cost 5) evicts 1,2,4; 3 (cost 9) evicts 5  →  {3,6}, cost 14
//
// Complexity:
//
//   - SequentialSearch: O(E²·a) conflict derivation + O(V²) selection.
//   - LocalSearch: per pass O(k · Σφ C(d, φ)) claw checks for k selected
//     vertices of degree ≤ d; the number of passes is finite but not
//     polynomially bounded in general.
//
// Strategies keep only configuration and can be shared freely; every
// Allocate call builds its own conflict graph and working sets.
//
// Errors:
//
//	ErrNilHyperGraph – nil input
//	ErrInvalidDelta  – NewLocalSearch with Delta < 2
//	ErrEmptyPool     – selection from an empty pool (unreachable from Allocate)
package allocation
