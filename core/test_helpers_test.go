// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecalloc/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// w is a terse decimal literal helper for fixtures.
func w(s string) core.Weight {
	return core.MustParseWeight(s)
}

// vertex builds a vertex with an integer cost.
func vertex(id string, cost int64) core.Vertex {
	return core.NewVertex(id, core.WeightFromInt(cost))
}

// buildPath returns A–B–C plus an isolated D.
func buildPath(t *testing.T) (*core.ConflictGraph, core.Vertex, core.Vertex, core.Vertex, core.Vertex) {
	t.Helper()
	g := core.NewConflictGraph()
	a, b, c, d := vertex(VertexA, 1), vertex(VertexB, 2), vertex(VertexC, 3), vertex(VertexD, 4)
	for _, v := range []core.Vertex{a, b, c, d} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(c, b))

	return g, a, b, c, d
}

func vertexIDs(vs []core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}

	return out
}
