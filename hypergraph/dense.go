package hypergraph

import (
	"fmt"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mecalloc/core"
)

// FromDense is FromPlacementMatrix for a gonum matrix. Every cell must be
// exactly 0 or 1.
func FromDense(m mat.Matrix, weights []core.Weight) (*HyperGraph, error) {
	r, c := m.Dims()
	matrix := make([][]int, r)
	var errs error
	for i := 0; i < r; i++ {
		matrix[i] = make([]int, c)
		for j := 0; j < c; j++ {
			switch x := m.At(i, j); x {
			case cellAbsent:
			case cellPresent:
				matrix[i][j] = cellPresent
			default:
				errs = multierr.Append(errs,
					fmt.Errorf("FromDense: cell (%d,%d) = %g: %w", i, j, x, ErrNonBinaryMatrix))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}

	return FromPlacementMatrix(matrix, weights)
}

// PlacementDense returns PlacementMatrix as a gonum dense matrix.
// A graph without vertices or hyperedges yields an empty matrix.
func (g *HyperGraph) PlacementDense() *mat.Dense {
	matrix := g.PlacementMatrix()
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return &mat.Dense{}
	}
	r, c := len(matrix), len(matrix[0])
	data := make([]float64, 0, r*c)
	for _, row := range matrix {
		for _, cell := range row {
			data = append(data, float64(cell))
		}
	}

	return mat.NewDense(r, c, data)
}
