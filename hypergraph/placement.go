// File: placement.go
// Role: binary placement-matrix encoding of a HyperGraph.
// Layout:
//   - rows = vertices, columns = hyperedges, cell = 1 iff the vertex is in the hyperedge.
//   - FromPlacementMatrix names row i "i+1" and column j "j+1".
//   - PlacementMatrix sorts rows and columns by ID, so the round trip holds up to
//     that reordering.

package hypergraph

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"

	"github.com/katalvlaran/mecalloc/core"
)

const (
	cellAbsent  = 0
	cellPresent = 1
)

// FromPlacementMatrix builds a HyperGraph from a binary placement matrix and
// the per-row vertex weights.
//
// Implementation:
//   - Stage 1: reject ragged rows and non-binary cells (every bad cell is reported).
//   - Stage 2: reject len(weights) != rows.
//   - Stage 3: build vertex i+1 per row and hyperedge j+1 per column.
//   - Stage 4: validate exactly like New (an all-zero column is ErrEmptyHyperEdge).
func FromPlacementMatrix(matrix [][]int, weights []core.Weight) (*HyperGraph, error) {
	// Stage 1
	cols, err := checkMatrix(matrix)
	if err != nil {
		return nil, err
	}
	// Stage 2
	if len(matrix) != len(weights) {
		return nil, fmt.Errorf("FromPlacementMatrix: %d rows, %d weights: %w",
			len(matrix), len(weights), ErrWeightCountMismatch)
	}

	// Stage 3
	vertices := make([]core.Vertex, len(weights))
	for i, w := range weights {
		vertices[i] = core.NewVertex(strconv.Itoa(i+1), w)
	}
	edges := make([]*HyperEdge, cols)
	for j := 0; j < cols; j++ {
		e := &HyperEdge{id: strconv.Itoa(j + 1), vertices: make(map[string]core.Vertex)}
		for i := range matrix {
			if matrix[i][j] == cellPresent {
				// IDs are distinct per row, AddVertex cannot fail here.
				_ = e.AddVertex(vertices[i])
			}
		}
		edges[j] = e
	}

	// Stage 4
	return New(vertices, edges)
}

// checkMatrix returns the column count, or the aggregated shape/content errors.
func checkMatrix(matrix [][]int) (int, error) {
	if len(matrix) == 0 {
		return 0, nil
	}
	cols := len(matrix[0])
	var errs error
	for i, row := range matrix {
		if len(row) != cols {
			return 0, fmt.Errorf("FromPlacementMatrix: row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrRaggedMatrix)
		}
		for j, cell := range row {
			if cell != cellAbsent && cell != cellPresent {
				errs = multierr.Append(errs,
					fmt.Errorf("FromPlacementMatrix: cell (%d,%d) = %d: %w", i, j, cell, ErrNonBinaryMatrix))
			}
		}
	}

	return cols, errs
}

// PlacementMatrix returns the binary matrix of g with rows = vertices and
// columns = hyperedges, both sorted by ID.
// Complexity: O(V · E).
func (g *HyperGraph) PlacementMatrix() [][]int {
	vertices := g.Vertices()
	edges := g.HyperEdges()

	matrix := make([][]int, len(vertices))
	for i, v := range vertices {
		row := make([]int, len(edges))
		for j, e := range edges {
			if e.Contains(v.ID()) {
				row[j] = cellPresent
			}
		}
		matrix[i] = row
	}

	return matrix
}

// Weights returns vertex costs in PlacementMatrix row order, so that
// FromPlacementMatrix(g.PlacementMatrix(), g.Weights()) rebuilds g up to IDs.
func (g *HyperGraph) Weights() []core.Weight {
	vertices := g.Vertices()
	out := make([]core.Weight, len(vertices))
	for i, v := range vertices {
		out[i] = v.Cost()
	}

	return out
}
