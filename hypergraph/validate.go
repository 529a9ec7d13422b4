package hypergraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mecalloc/core"
)

// validate checks the declared vertices and hyperedges against every
// HyperGraph invariant. It reports the first violation in input order.
func validate(vertices []core.Vertex, edges []*HyperEdge) error {
	// 1) Declared vertices: non-empty, unique IDs.
	declared := make(map[string]struct{}, len(vertices))
	for _, v := range vertices {
		if v.IsZero() {
			return fmt.Errorf("New: %w", core.ErrEmptyVertexID)
		}
		if _, dup := declared[v.ID()]; dup {
			return fmt.Errorf("New: vertex %s: %w", v.ID(), core.ErrDuplicateVertex)
		}
		declared[v.ID()] = struct{}{}
	}

	// 2) Hyperedges: non-nil, named, non-empty, unique IDs, unique vertex sets.
	ids := make(map[string]struct{}, len(edges))
	signatures := make(map[string]string, len(edges))
	union := make(map[string]struct{}, len(vertices))
	for _, e := range edges {
		if e == nil {
			return fmt.Errorf("New: %w", ErrNilHyperEdge)
		}
		if e.ID() == "" {
			return fmt.Errorf("New: hyperedge %v: %w", e.VertexIDs(), ErrEmptyHyperEdgeID)
		}
		if e.Len() == 0 {
			return fmt.Errorf("New: hyperedge %s: %w", e.ID(), ErrEmptyHyperEdge)
		}
		if _, dup := ids[e.ID()]; dup {
			return fmt.Errorf("New: hyperedge %s: %w", e.ID(), ErrDuplicateHyperEdgeID)
		}
		ids[e.ID()] = struct{}{}

		sig := e.signature()
		if other, dup := signatures[sig]; dup {
			return fmt.Errorf("New: hyperedges %s and %s %v: %w",
				other, e.ID(), e.VertexIDs(), ErrDuplicateVertexSet)
		}
		signatures[sig] = e.ID()

		for id := range e.vertices {
			union[id] = struct{}{}
		}
	}

	// 3) Union of hyperedges must equal the declared vertex set.
	missing, extra := setDiff(declared, union), setDiff(union, declared)
	if len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("New: unconnected vertices %v, undeclared vertices %v: %w",
			missing, extra, ErrVertexSetMismatch)
	}

	return nil
}

// setDiff returns the sorted keys of a that are not in b.
func setDiff(a, b map[string]struct{}) []string {
	var out []string
	for id := range a {
		if _, ok := b[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}
