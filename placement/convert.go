package placement

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"

	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
)

// Validate checks the shape of d and reports every problem it finds:
// weight count, ID list lengths, ragged rows and non-binary cells.
// Invariants that need the whole hypergraph are left to HyperGraph.
func (d *Document) Validate() error {
	var errs error
	if len(d.Weights) != len(d.Matrix) {
		errs = multierr.Append(errs, fmt.Errorf("%d weights for %d matrix rows: %w",
			len(d.Weights), len(d.Matrix), hypergraph.ErrWeightCountMismatch))
	}
	if d.Vertices != nil && len(d.Vertices) != len(d.Matrix) {
		errs = multierr.Append(errs, fmt.Errorf("%d vertex IDs for %d matrix rows: %w",
			len(d.Vertices), len(d.Matrix), ErrIDCountMismatch))
	}

	cols := d.columns()
	if d.Placements != nil && len(d.Placements) != cols {
		errs = multierr.Append(errs, fmt.Errorf("%d placement IDs for %d matrix columns: %w",
			len(d.Placements), cols, ErrIDCountMismatch))
	}
	for i, r := range d.Matrix {
		if len(r) != cols {
			errs = multierr.Append(errs, fmt.Errorf("row %d has %d columns, want %d: %w",
				i+1, len(r), cols, hypergraph.ErrRaggedMatrix))
			continue
		}
		for j, c := range r {
			if c != 0 && c != 1 {
				errs = multierr.Append(errs, fmt.Errorf("cell (%d,%d) = %d: %w",
					i+1, j+1, c, hypergraph.ErrNonBinaryMatrix))
			}
		}
	}

	return errs
}

func (d *Document) columns() int {
	if len(d.Matrix) == 0 {
		return len(d.Placements)
	}

	return len(d.Matrix[0])
}

// HyperGraph validates d and builds its hypergraph. Without ID lists the
// result is hypergraph.FromPlacementMatrix; otherwise rows and columns take
// the listed IDs.
func (d *Document) HyperGraph() (*hypergraph.HyperGraph, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("HyperGraph(%s): %w", d.Name, err)
	}
	if d.Vertices == nil && d.Placements == nil {
		return hypergraph.FromPlacementMatrix(d.Matrix, d.Weights)
	}

	vertexIDs := d.Vertices
	if vertexIDs == nil {
		vertexIDs = positional(len(d.Matrix))
	}
	placementIDs := d.Placements
	if placementIDs == nil {
		placementIDs = positional(d.columns())
	}

	vertices := make([]core.Vertex, len(vertexIDs))
	for i, id := range vertexIDs {
		vertices[i] = core.NewVertex(id, d.Weights[i])
	}
	edges := make([]*hypergraph.HyperEdge, len(placementIDs))
	for j, id := range placementIDs {
		e, err := hypergraph.NewHyperEdge(id)
		if err != nil {
			return nil, fmt.Errorf("HyperGraph(%s): placement %d: %w", d.Name, j+1, err)
		}
		for i := range d.Matrix {
			if d.Matrix[i][j] != 1 {
				continue
			}
			if err := e.AddVertex(vertices[i]); err != nil {
				return nil, fmt.Errorf("HyperGraph(%s): %w", d.Name, err)
			}
		}
		edges[j] = e
	}

	hg, err := hypergraph.New(vertices, edges)
	if err != nil {
		return nil, fmt.Errorf("HyperGraph(%s): %w", d.Name, err)
	}

	return hg, nil
}

// FromHyperGraph captures hg as a document, keeping its IDs.
func FromHyperGraph(name string, hg *hypergraph.HyperGraph) (*Document, error) {
	if hg == nil {
		return nil, ErrNilHyperGraph
	}
	vertices := hg.Vertices()
	edges := hg.HyperEdges()

	doc := &Document{
		Name:       name,
		Vertices:   make([]string, len(vertices)),
		Placements: make([]string, len(edges)),
		Weights:    hg.Weights(),
		Matrix:     hg.PlacementMatrix(),
	}
	for i, v := range vertices {
		doc.Vertices[i] = v.ID()
	}
	for j, e := range edges {
		doc.Placements[j] = e.ID()
	}

	return doc, nil
}

func positional(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}

	return out
}
