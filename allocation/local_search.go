// File: local_search.go
// Role: claw-swap refinement of the greedy independent set.
//
// Outer loop (deterministic first improvement, restart after every accepted move):
//   - Scan the current set costliest first (ascending OrderingKey, ties by ID).
//   - For pivot u and φ = 2..Delta, look among u's neighbors (cheapest first)
//     for φ pairwise non-adjacent vertices whose insertion, after evicting every
//     incumbent adjacent to them, strictly improves the objective.
//   - Apply the first such claw and rescan; stop after a pass without a swap.
//
// Termination: each accepted swap strictly lowers the total cost, an exact
// decimal bounded below by 0 over finitely many subsets, so swaps are finite;
// each claw search is a backtracking enumeration of depth ≤ φ.

package allocation

import (
	"fmt"

	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
)

// LocalSearch refines SequentialSearch with bounded claw swaps.
type LocalSearch struct {
	opts Options
	seq  *SequentialSearch
}

// Stats summarizes one LocalSearch run.
type Stats struct {
	InitialCost core.Weight // cost of the greedy start
	FinalCost   core.Weight // cost of the returned selection
	Swaps       int         // accepted claw swaps
	Passes      int         // outer scans, including the final one without a swap
}

// NewLocalSearch returns a claw-swap strategy.
// Returns ErrInvalidDelta if the configured delta is below MinDelta.
func NewLocalSearch(opts ...Option) (*LocalSearch, error) {
	o := buildOptions(opts)
	if o.Delta < MinDelta {
		return nil, fmt.Errorf("NewLocalSearch: delta=%d: %w", o.Delta, ErrInvalidDelta)
	}

	return &LocalSearch{opts: o, seq: &SequentialSearch{opts: o}}, nil
}

// Name implements Strategy.
func (l *LocalSearch) Name() string { return "local" }

// Delta returns the maximum claw size.
func (l *LocalSearch) Delta() int { return l.opts.Delta }

// Allocate implements Strategy.
func (l *LocalSearch) Allocate(hg *hypergraph.HyperGraph) ([]core.Vertex, error) {
	selected, _, err := l.AllocateWithStats(hg)

	return selected, err
}

// AllocateWithStats is Allocate plus run statistics.
func (l *LocalSearch) AllocateWithStats(hg *hypergraph.HyperGraph) ([]core.Vertex, Stats, error) {
	if hg == nil {
		return nil, Stats{}, ErrNilHyperGraph
	}
	cg := hg.ConflictGraph()
	initial, err := l.seq.independentSet(cg)
	if err != nil {
		return nil, Stats{}, err
	}

	set := newSelection(initial)
	stats := Stats{InitialCost: TotalCost(initial)}
	for {
		stats.Passes++
		if !l.pass(cg, set) {
			break
		}
		stats.Swaps++
		if l.opts.MaxSwaps > 0 && stats.Swaps >= l.opts.MaxSwaps {
			l.opts.Logger.Debug().Int("swaps", stats.Swaps).Msg("swap limit reached")
			break
		}
	}

	out := set.sorted()
	stats.FinalCost = TotalCost(out)

	return out, stats, nil
}

// pass scans set once and applies the first improving claw.
// It reports whether a swap was applied.
func (l *LocalSearch) pass(cg *core.ConflictGraph, set *selection) bool {
	for _, u := range set.costliestFirst() {
		candidates := cg.Neighbors(u)
		cheapestFirst(candidates)

		for phi := MinDelta; phi <= l.opts.Delta; phi++ {
			claw := findClaw(cg, set, candidates, phi)
			if claw == nil {
				continue
			}
			displaced := set.displacedBy(cg, claw)
			set.swap(displaced, claw)

			if e := l.opts.Logger.Debug(); e.Enabled() {
				e.Str("pivot", u.ID()).
					Int("phi", phi).
					Strs("claw", ids(claw)).
					Strs("displaced", ids(displaced)).
					Str("cost", set.objective.Neg().String()).
					Msg("claw swap accepted")
			}

			return true
		}
	}

	return false
}
