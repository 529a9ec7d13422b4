package allocation

import (
	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
)

// SequentialSearch is the greedy independent-set selector.
//
// Repeatedly take the cheapest remaining placement (greatest OrderingKey,
// ties by smallest ID) and evict it and its conflict neighbors from the pool.
// Every neighbor of a chosen vertex is evicted, so the result is always
// independent. No optimality guarantee.
type SequentialSearch struct {
	opts Options
}

// NewSequentialSearch returns a greedy strategy. Only WithLogger is relevant.
func NewSequentialSearch(opts ...Option) *SequentialSearch {
	return &SequentialSearch{opts: buildOptions(opts)}
}

// Name implements Strategy.
func (s *SequentialSearch) Name() string { return "sequential" }

// Allocate implements Strategy.
// Complexity: O(E² · a) to derive the conflict graph, then O(V²) selection.
func (s *SequentialSearch) Allocate(hg *hypergraph.HyperGraph) ([]core.Vertex, error) {
	if hg == nil {
		return nil, ErrNilHyperGraph
	}

	return s.independentSet(hg.ConflictGraph())
}

// independentSet runs the greedy loop on cg and returns the selection sorted by ID.
func (s *SequentialSearch) independentSet(cg *core.ConflictGraph) ([]core.Vertex, error) {
	pool := make(map[string]core.Vertex, cg.VertexCount())
	for _, v := range cg.Vertices() {
		pool[v.ID()] = v
	}

	selected := make([]core.Vertex, 0)
	for len(pool) > 0 {
		best, err := cheapest(pool)
		if err != nil {
			return nil, err
		}
		selected = append(selected, best)
		delete(pool, best.ID())
		for _, n := range cg.Neighbors(best) {
			delete(pool, n.ID())
		}
	}
	core.SortByID(selected)

	if e := s.opts.Logger.Debug(); e.Enabled() {
		e.Int("candidates", cg.VertexCount()).
			Strs("selected", ids(selected)).
			Str("cost", TotalCost(selected).String()).
			Msg("greedy selection")
	}

	return selected, nil
}
