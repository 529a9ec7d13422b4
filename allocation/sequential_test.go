package allocation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecalloc/allocation"
	"github.com/katalvlaran/mecalloc/core"
	"github.com/katalvlaran/mecalloc/hypergraph"
)

func TestSequentialSearch_SixUnits(t *testing.T) {
	got, err := allocation.NewSequentialSearch().Allocate(sixUnits(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "6"}, ids(got))
	assert.True(t, allocation.TotalCost(got).Equal(w("14")))
}

func TestSequentialSearch_TenUnits(t *testing.T) {
	got, err := allocation.NewSequentialSearch().Allocate(tenUnits(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "6", "8"}, ids(got))
	assert.True(t, allocation.TotalCost(got).Equal(w("36")))
}

func TestSequentialSearch_Independent(t *testing.T) {
	hg := tenUnits(t)
	got, err := allocation.NewSequentialSearch().Allocate(hg)
	require.NoError(t, err)

	assert.True(t, allocation.IsIndependent(hg.ConflictGraph(), got))
}

func TestSequentialSearch_Maximal(t *testing.T) {
	hg := tenUnits(t)
	cg := hg.ConflictGraph()
	got, err := allocation.NewSequentialSearch().Allocate(hg)
	require.NoError(t, err)

	// Every placement left out conflicts with a selected one.
	chosen := make(map[string]bool, len(got))
	for _, v := range got {
		chosen[v.ID()] = true
	}
	for _, v := range cg.Vertices() {
		if chosen[v.ID()] {
			continue
		}
		conflicts := false
		for _, s := range got {
			conflicts = conflicts || cg.AreConnected(v, s)
		}
		assert.True(t, conflicts, "placement %s could have been added", v.ID())
	}
}

func TestSequentialSearch_TieBreakByID(t *testing.T) {
	// Two equal-cost placements sharing a unit: the smaller ID wins.
	hg, err := hypergraph.FromPlacementMatrix([][]int{{1, 1}, {1, 0}, {0, 1}},
		[]core.Weight{w("1"), w("2"), w("2")})
	require.NoError(t, err)

	got, err := allocation.NewSequentialSearch().Allocate(hg)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestSequentialSearch_EmptyAndNil(t *testing.T) {
	s := allocation.NewSequentialSearch()

	_, err := s.Allocate(nil)
	assert.ErrorIs(t, err, allocation.ErrNilHyperGraph)

	empty, err := hypergraph.New(nil, nil)
	require.NoError(t, err)
	got, err := s.Allocate(empty)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "sequential", s.Name())
}
