// SPDX-License-Identifier: MIT
// Package: mecalloc/generator
//
// options.go: functional options and deterministic defaults.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Random itself never panics; it returns sentinel errors.
//   • Defaults: no RNG, maxWeight 10, scale 2, maxAttempts 100.

package generator

import "math/rand"

const (
	// DefaultMaxWeight is the exclusive upper bound of a vertex weight.
	DefaultMaxWeight = 10.0

	// DefaultWeightScale is the number of decimal digits kept per weight.
	DefaultWeightScale = 2

	// DefaultMaxAttempts bounds both duplicate redraws per placement and
	// whole-graph retries.
	DefaultMaxAttempts = 100
)

// Option customizes Random.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	maxWeight   float64
	weightScale int32
	maxAttempts int
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxWeight:   DefaultMaxWeight,
		weightScale: DefaultWeightScale,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed uses a new *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithMaxWeight sets the exclusive upper bound of vertex weights. Panics if m <= 0.
func WithMaxWeight(m float64) Option {
	if m <= 0 {
		panic("generator: WithMaxWeight(m<=0)")
	}

	return func(c *config) { c.maxWeight = m }
}

// WithWeightScale keeps scale decimal digits per weight. Panics if scale < 0.
func WithWeightScale(scale int) Option {
	if scale < 0 {
		panic("generator: WithWeightScale(scale<0)")
	}

	return func(c *config) { c.weightScale = int32(scale) }
}

// WithMaxAttempts bounds redraws and retries. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("generator: WithMaxAttempts(n<1)")
	}

	return func(c *config) { c.maxAttempts = n }
}
