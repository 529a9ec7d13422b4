package allocation

import (
	"sort"

	"github.com/katalvlaran/mecalloc/core"
)

// costliestFirst sorts vs by ascending OrderingKey (highest cost first),
// ties by ascending ID.
func costliestFirst(vs []core.Vertex) {
	sort.Slice(vs, func(i, j int) bool {
		if c := vs[i].OrderingKey().Cmp(vs[j].OrderingKey()); c != 0 {
			return c < 0
		}

		return vs[i].ID() < vs[j].ID()
	})
}

// cheapestFirst sorts vs by descending OrderingKey (lowest cost first),
// ties by ascending ID.
func cheapestFirst(vs []core.Vertex) {
	sort.Slice(vs, func(i, j int) bool {
		if c := vs[i].OrderingKey().Cmp(vs[j].OrderingKey()); c != 0 {
			return c > 0
		}

		return vs[i].ID() < vs[j].ID()
	})
}

// cheapest returns the pool vertex with the greatest OrderingKey, ties
// broken by the smallest ID.
func cheapest(pool map[string]core.Vertex) (core.Vertex, error) {
	if len(pool) == 0 {
		return core.Vertex{}, ErrEmptyPool
	}
	var (
		best  core.Vertex
		found bool
	)
	for _, v := range pool {
		if !found {
			best, found = v, true
			continue
		}
		c := v.OrderingKey().Cmp(best.OrderingKey())
		if c > 0 || (c == 0 && v.ID() < best.ID()) {
			best = v
		}
	}

	return best, nil
}

func ids(vs []core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}

	return out
}
