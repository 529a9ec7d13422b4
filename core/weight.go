// SPDX-License-Identifier: MIT
// File: weight.go
// Role: exact decimal Weight used for every energy cost, sum and comparison.
// Determinism:
//   - Backed by gopkg.in/inf.v0; no binary floating point takes part in
//     sums or comparisons, so results are identical on every platform.
// AI-HINT (file):
//   - Weight is an immutable value: every operation allocates a fresh *inf.Dec.
//   - The zero Weight is a valid 0.
//   - Float64() is for display and gonum interop only; never compare through it.

package core

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/inf.v0"
)

// zeroDec is shared by zero-valued Weights. It is never mutated.
var zeroDec = inf.NewDec(0, 0)

// Weight is an exact decimal quantity (energy cost, hyperedge sum, objective).
type Weight struct {
	d *inf.Dec
}

// WeightFromInt returns the Weight equal to n.
func WeightFromInt(n int64) Weight {
	return Weight{d: inf.NewDec(n, 0)}
}

// WeightFromFloat converts f using its shortest decimal representation,
// so 0.1 becomes exactly 0.1 and not the nearest binary fraction.
// Returns ErrBadWeight for NaN and ±Inf.
func WeightFromFloat(f float64) (Weight, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Weight{}, fmt.Errorf("WeightFromFloat(%v): %w", f, ErrBadWeight)
	}

	return ParseWeight(strconv.FormatFloat(f, 'f', -1, 64))
}

// ParseWeight parses a plain decimal literal such as "3", "-2.5" or "0.125".
func ParseWeight(s string) (Weight, error) {
	d, ok := new(inf.Dec).SetString(s)
	if !ok {
		return Weight{}, fmt.Errorf("ParseWeight(%q): %w", s, ErrBadWeight)
	}

	return Weight{d: d}, nil
}

// MustParseWeight is ParseWeight for literals known to be valid; it panics otherwise.
func MustParseWeight(s string) Weight {
	w, err := ParseWeight(s)
	if err != nil {
		panic(err)
	}

	return w
}

// SumWeights returns the exact sum of ws (0 for none).
func SumWeights(ws ...Weight) Weight {
	acc := new(inf.Dec)
	for _, w := range ws {
		acc.Add(acc, w.dec())
	}

	return Weight{d: acc}
}

func (w Weight) dec() *inf.Dec {
	if w.d == nil {
		return zeroDec
	}

	return w.d
}

// Add returns w + o.
func (w Weight) Add(o Weight) Weight {
	return Weight{d: new(inf.Dec).Add(w.dec(), o.dec())}
}

// Sub returns w - o.
func (w Weight) Sub(o Weight) Weight {
	return Weight{d: new(inf.Dec).Sub(w.dec(), o.dec())}
}

// Mul returns w * o. The scale of the result is the sum of both scales, so
// the product is exact.
func (w Weight) Mul(o Weight) Weight {
	return Weight{d: new(inf.Dec).Mul(w.dec(), o.dec())}
}

// Neg returns -w.
func (w Weight) Neg() Weight {
	return Weight{d: new(inf.Dec).Neg(w.dec())}
}

// Abs returns |w|.
func (w Weight) Abs() Weight {
	return Weight{d: new(inf.Dec).Abs(w.dec())}
}

// Square returns w * w.
func (w Weight) Square() Weight {
	return w.Mul(w)
}

// Round returns w rounded half-up to scale digits after the decimal point.
func (w Weight) Round(scale int32) Weight {
	return Weight{d: new(inf.Dec).Round(w.dec(), inf.Scale(scale), inf.RoundHalfUp)}
}

// Cmp returns -1, 0 or +1 as w is less than, equal to or greater than o.
// Values that differ only in scale (1.0 vs 1) compare equal.
func (w Weight) Cmp(o Weight) int {
	return w.dec().Cmp(o.dec())
}

// Equal reports whether w and o denote the same number.
func (w Weight) Equal(o Weight) bool { return w.Cmp(o) == 0 }

// Less reports whether w < o.
func (w Weight) Less(o Weight) bool { return w.Cmp(o) < 0 }

// Sign returns -1, 0 or +1.
func (w Weight) Sign() int { return w.dec().Sign() }

// IsZero reports whether w == 0.
func (w Weight) IsZero() bool { return w.Sign() == 0 }

// String renders the decimal literal, keeping the scale it was built with.
func (w Weight) String() string {
	return w.dec().String()
}

// Float64 returns the nearest float64. Display and interop only.
func (w Weight) Float64() float64 {
	f, err := strconv.ParseFloat(w.String(), 64)
	if err != nil {
		return math.NaN()
	}

	return f
}

// MarshalText implements encoding.TextMarshaler.
func (w Weight) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Weight) UnmarshalText(text []byte) error {
	parsed, err := ParseWeight(string(text))
	if err != nil {
		return err
	}
	*w = parsed

	return nil
}
