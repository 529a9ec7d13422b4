// SPDX-License-Identifier: MIT
// Package: mecalloc/generator
//
// errors.go: sentinel errors for the generator package.
// Callers branch with errors.Is; implementations wrap with method context.

package generator

import "errors"

// ErrTooFewVertices indicates a vertex count below 1.
var ErrTooFewVertices = errors.New("generator: vertex count too small")

// ErrInvalidDelta indicates a maximum placement size that is below 1 or too
// small for the placements to cover every vertex.
var ErrInvalidDelta = errors.New("generator: invalid delta")

// ErrNeedRandSource indicates that neither WithSeed nor WithRand was given.
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrConstructFailed indicates that every attempt produced an invalid hypergraph.
var ErrConstructFailed = errors.New("generator: construction failed")
