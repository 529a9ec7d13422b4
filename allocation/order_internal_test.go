package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecalloc/core"
)

func TestCheapest_EmptyPool(t *testing.T) {
	_, err := cheapest(map[string]core.Vertex{})
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestCheapest_TieBreak(t *testing.T) {
	pool := map[string]core.Vertex{
		"b": core.NewVertex("b", core.WeightFromInt(2)),
		"a": core.NewVertex("a", core.WeightFromInt(2)),
		"c": core.NewVertex("c", core.WeightFromInt(5)),
	}
	got, err := cheapest(pool)
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID())
}

func TestOrderings(t *testing.T) {
	vs := []core.Vertex{
		core.NewVertex("10", core.WeightFromInt(14)),
		core.NewVertex("5", core.WeightFromInt(14)),
		core.NewVertex("6", core.WeightFromInt(5)),
		core.NewVertex("8", core.WeightFromInt(22)),
	}

	cheapestFirst(vs)
	assert.Equal(t, []string{"6", "10", "5", "8"}, ids(vs))

	costliestFirst(vs)
	assert.Equal(t, []string{"8", "10", "5", "6"}, ids(vs))
}

func TestSelection_SwapKeepsObjectiveExact(t *testing.T) {
	a := core.NewVertex("a", core.MustParseWeight("0.1"))
	b := core.NewVertex("b", core.MustParseWeight("0.2"))
	c := core.NewVertex("c", core.MustParseWeight("0.25"))

	s := newSelection([]core.Vertex{a, b})
	assert.True(t, s.objective.Equal(core.MustParseWeight("-0.3")))

	s.swap([]core.Vertex{a, b}, []core.Vertex{c})
	assert.True(t, s.objective.Equal(core.MustParseWeight("-0.25")))
	assert.Equal(t, []string{"c"}, ids(s.sorted()))
}
