package allocation

import "github.com/katalvlaran/mecalloc/core"

// selection is the mutable independent set refined by LocalSearch, with its
// objective (Σ OrderingKey) maintained exactly across swaps.
type selection struct {
	members   map[string]core.Vertex
	objective core.Weight
}

func newSelection(vs []core.Vertex) *selection {
	s := &selection{members: make(map[string]core.Vertex, len(vs))}
	for _, v := range vs {
		s.members[v.ID()] = v
	}
	s.objective = Objective(vs)

	return s
}

func (s *selection) list() []core.Vertex {
	out := make([]core.Vertex, 0, len(s.members))
	for _, v := range s.members {
		out = append(out, v)
	}

	return out
}

func (s *selection) sorted() []core.Vertex {
	out := s.list()
	core.SortByID(out)

	return out
}

func (s *selection) costliestFirst() []core.Vertex {
	out := s.list()
	costliestFirst(out)

	return out
}

// displacedBy returns the members adjacent to any claw vertex, sorted by ID.
func (s *selection) displacedBy(cg *core.ConflictGraph, claw []core.Vertex) []core.Vertex {
	seen := make(map[string]struct{})
	var out []core.Vertex
	for _, c := range claw {
		for _, n := range cg.Neighbors(c) {
			if _, in := s.members[n.ID()]; !in {
				continue
			}
			if _, dup := seen[n.ID()]; dup {
				continue
			}
			seen[n.ID()] = struct{}{}
			out = append(out, n)
		}
	}
	core.SortByID(out)

	return out
}

// improvedBy reports whether swapping claw in strictly improves the
// objective. Both sides are squared so the test does not depend on sign:
// objective(new)² < objective(old)².
func (s *selection) improvedBy(cg *core.ConflictGraph, claw []core.Vertex) bool {
	next := s.objective.Sub(Objective(s.displacedBy(cg, claw))).Add(Objective(claw))

	return next.Square().Less(s.objective.Square())
}

func (s *selection) swap(out, in []core.Vertex) {
	for _, v := range out {
		delete(s.members, v.ID())
	}
	for _, v := range in {
		s.members[v.ID()] = v
	}
	s.objective = s.objective.Sub(Objective(out)).Add(Objective(in))
}
