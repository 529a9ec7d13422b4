package allocation

import "github.com/katalvlaran/mecalloc/core"

// clawSearch enumerates φ-subsets of candidates in index order, keeping only
// pairwise non-adjacent groups, and stops at the first improving one.
type clawSearch struct {
	cg         *core.ConflictGraph
	set        *selection
	candidates []core.Vertex
	phi        int
	group      []core.Vertex
}

// findClaw returns the first improving φ-claw, or nil.
// Recursion depth is bounded by phi.
func findClaw(cg *core.ConflictGraph, set *selection, candidates []core.Vertex, phi int) []core.Vertex {
	if len(candidates) < phi {
		return nil
	}
	s := &clawSearch{
		cg:         cg,
		set:        set,
		candidates: candidates,
		phi:        phi,
		group:      make([]core.Vertex, 0, phi),
	}
	if !s.extend(0) {
		return nil
	}
	claw := make([]core.Vertex, len(s.group))
	copy(claw, s.group)

	return claw
}

func (s *clawSearch) extend(start int) bool {
	if len(s.group) == s.phi {
		return s.set.improvedBy(s.cg, s.group)
	}
	need := s.phi - len(s.group)
	for i := start; i+need <= len(s.candidates); i++ {
		v := s.candidates[i]
		if !s.independentOfGroup(v) {
			continue
		}
		s.group = append(s.group, v)
		if s.extend(i + 1) {
			return true
		}
		s.group = s.group[:len(s.group)-1]
	}

	return false
}

func (s *clawSearch) independentOfGroup(v core.Vertex) bool {
	for _, g := range s.group {
		if s.cg.AreConnected(v, g) {
			return false
		}
	}

	return true
}
