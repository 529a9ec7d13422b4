package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecalloc/core"
)

func TestWeight_FromFloatIsExactDecimal(t *testing.T) {
	a, err := core.WeightFromFloat(0.1)
	require.NoError(t, err)
	b, err := core.WeightFromFloat(0.2)
	require.NoError(t, err)

	// 0.1 + 0.2 is exactly 0.3 in decimal arithmetic.
	assert.True(t, a.Add(b).Equal(w("0.3")), "got %s", a.Add(b))
	assert.Equal(t, "0.1", a.String())
}

func TestWeight_FromFloatRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := core.WeightFromFloat(f)
		assert.ErrorIs(t, err, core.ErrBadWeight)
	}
}

func TestWeight_Parse(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "3", want: "3"},
		{in: "-2.5", want: "-2.5"},
		{in: "0.125", want: "0.125"},
		{in: "", err: true},
		{in: "abc", err: true},
		{in: "1.2.3", err: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := core.ParseWeight(tc.in)
			if tc.err {
				assert.ErrorIs(t, err, core.ErrBadWeight)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestWeight_Arithmetic(t *testing.T) {
	x, y := w("1.5"), w("-4")

	assert.True(t, x.Add(y).Equal(w("-2.5")))
	assert.True(t, x.Sub(y).Equal(w("5.5")))
	assert.True(t, x.Mul(y).Equal(w("-6")))
	assert.True(t, y.Neg().Equal(w("4")))
	assert.True(t, y.Abs().Equal(w("4")))
	assert.True(t, x.Square().Equal(w("2.25")))
	assert.Equal(t, -1, y.Sign())
	assert.True(t, y.Less(x))
}

func TestWeight_ScaleDoesNotAffectEquality(t *testing.T) {
	assert.True(t, w("1.000").Equal(w("1")))
	assert.Equal(t, 0, w("2.50").Cmp(w("2.5")))
}

func TestWeight_ZeroValue(t *testing.T) {
	var zero core.Weight
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())
	assert.True(t, zero.Add(w("7")).Equal(w("7")))
	assert.True(t, core.SumWeights().IsZero())
}

func TestWeight_Sum(t *testing.T) {
	got := core.SumWeights(w("1.1"), w("2.2"), w("3.3"))
	assert.True(t, got.Equal(w("6.6")), "got %s", got)
}

func TestWeight_TextRoundTrip(t *testing.T) {
	text, err := w("-12.75").MarshalText()
	require.NoError(t, err)

	var back core.Weight
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, back.Equal(w("-12.75")))

	assert.ErrorIs(t, back.UnmarshalText([]byte("x")), core.ErrBadWeight)
}

func TestWeight_Float64(t *testing.T) {
	assert.InDelta(t, 2.5, w("2.5").Float64(), 1e-12)
}

func TestWeight_Round(t *testing.T) {
	assert.Equal(t, "2.35", w("2.345").Round(2).String())
	assert.Equal(t, "-2.35", w("-2.345").Round(2).String())
	assert.Equal(t, "3", w("2.5").Round(0).String())
	assert.Equal(t, "1.50", w("1.5").Round(2).String())
}
