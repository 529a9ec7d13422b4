// SPDX-License-Identifier: MIT
// Package: mecalloc/generator
//
// generator.go: Random(n, δ) implementation.
//
// Determinism:
//   • Vertices are drawn in index order, placements in index order, repairs
//     in vertex index order; ties in the repair rules fall to the lowest index.
//   • Same seed and options → identical hypergraph.

package generator

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
)

const (
	methodRandom = "Random"
	minVertices  = 1
	minDelta     = 1
)

// Random returns a valid hypergraph over numVertices units whose placements
// have at most delta members. See the package documentation for the model.
func Random(numVertices, delta int, opts ...Option) (*hypergraph.HyperGraph, error) {
	cfg := newConfig(opts...)

	// 1) Parameter validation, cheapest first.
	if numVertices < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, numVertices, minVertices, ErrTooFewVertices)
	}
	if delta < minDelta {
		return nil, fmt.Errorf("%s: delta=%d < min=%d: %w", methodRandom, delta, minDelta, ErrInvalidDelta)
	}
	m := placementCount(numVertices)
	if m*min(numVertices, delta) < numVertices {
		return nil, fmt.Errorf("%s: %d placements of at most %d units cannot cover %d units: %w",
			methodRandom, m, min(numVertices, delta), numVertices, ErrInvalidDelta)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	// 2) Weights are drawn once; only the placements are redrawn on retry.
	vertices := make([]core.Vertex, numVertices)
	for i := range vertices {
		w, err := core.WeightFromFloat(cfg.rng.Float64() * cfg.maxWeight)
		if err != nil {
			return nil, fmt.Errorf("%s: vertex %d: %w", methodRandom, i+1, err)
		}
		vertices[i] = core.NewVertex(strconv.Itoa(i+1), w.Round(cfg.weightScale))
	}

	// 3) Draw, repair, validate.
	var lastErr error
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		sets, err := drawPlacements(cfg, numVertices, delta, m)
		if err != nil {
			lastErr = err
			continue
		}
		cover(sets, numVertices, delta)

		hg, err := assemble(vertices, sets)
		if err == nil {
			return hg, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%s: n=%d delta=%d: %d attempts, last: %v: %w",
		methodRandom, numVertices, delta, cfg.maxAttempts, lastErr, ErrConstructFailed)
}

// placementCount is ⌊n/2⌋, at least 1.
func placementCount(n int) int {
	if n/2 > 0 {
		return n / 2
	}

	return 1
}

// drawPlacements draws m distinct vertex-index sets of size 1..min(n, delta).
func drawPlacements(cfg config, n, delta, m int) ([]map[int]struct{}, error) {
	limit := min(n, delta)
	sets := make([]map[int]struct{}, 0, m)
	seen := make(map[string]struct{}, m)

	for len(sets) < m {
		drawn := false
		for try := 0; try < cfg.maxAttempts; try++ {
			size := cfg.rng.Intn(limit) + 1
			set := make(map[int]struct{}, size)
			for len(set) < size {
				set[cfg.rng.Intn(n)] = struct{}{}
			}
			key := setKey(set)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			sets = append(sets, set)
			drawn = true
			break
		}
		if !drawn {
			return nil, fmt.Errorf("placement %d: no new vertex set after %d draws", len(sets)+1, cfg.maxAttempts)
		}
	}

	return sets, nil
}

// cover attaches every uncovered vertex index to a placement.
//
// Rule 1: the smallest placement with fewer than delta members (lowest index on ties).
// Rule 2: otherwise, in the largest placement containing the most frequent
// vertex, replace that vertex. Capacity was checked by Random, so the most
// frequent vertex occurs at least twice and the swap uncovers nothing.
func cover(sets []map[int]struct{}, n, delta int) {
	freq := make([]int, n)
	for _, s := range sets {
		for v := range s {
			freq[v]++
		}
	}

	for v := 0; v < n; v++ {
		if freq[v] > 0 {
			continue
		}

		target := -1
		for i, s := range sets {
			if len(s) < delta && (target < 0 || len(s) < len(sets[target])) {
				target = i
			}
		}
		if target >= 0 {
			sets[target][v] = struct{}{}
			freq[v]++
			continue
		}

		top := 0
		for u := 1; u < n; u++ {
			if freq[u] > freq[top] {
				top = u
			}
		}
		target = -1
		for i, s := range sets {
			if _, ok := s[top]; !ok {
				continue
			}
			if target < 0 || len(s) > len(sets[target]) {
				target = i
			}
		}
		delete(sets[target], top)
		freq[top]--
		sets[target][v] = struct{}{}
		freq[v]++
	}
}

// assemble turns index sets into a validated HyperGraph.
func assemble(vertices []core.Vertex, sets []map[int]struct{}) (*hypergraph.HyperGraph, error) {
	edges := make([]*hypergraph.HyperEdge, len(sets))
	for i, s := range sets {
		members := make([]core.Vertex, 0, len(s))
		for v := 0; v < len(vertices); v++ {
			if _, ok := s[v]; ok {
				members = append(members, vertices[v])
			}
		}
		e, err := hypergraph.NewHyperEdge(strconv.Itoa(i+1), members...)
		if err != nil {
			return nil, err
		}
		edges[i] = e
	}

	return hypergraph.New(vertices, edges)
}

// setKey is a canonical string for an index set.
func setKey(set map[int]struct{}) string {
	buf := make([]byte, 0, len(set)*4)
	for v := 0; v < maxIndex(set)+1; v++ {
		if _, ok := set[v]; ok {
			buf = strconv.AppendInt(buf, int64(v), 10)
			buf = append(buf, ',')
		}
	}

	return string(buf)
}

func maxIndex(set map[int]struct{}) int {
	top := -1
	for v := range set {
		if v > top {
			top = v
		}
	}

	return top
}
