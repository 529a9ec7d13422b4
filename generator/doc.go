// SPDX-License-Identifier: MIT
// Package: mecalloc/generator
//
// Package generator builds random placement hypergraphs for experiments,
// fixtures and the command-line tool.
//
// Model:
//   - n resource units "1".."n", each weighted rng.Float64()·maxWeight,
//     rounded to a fixed decimal scale so weights stay exact.
//   - ⌊n/2⌋ placements (at least one) "1".."m", each over 1..min(n, δ)
//     distinct units drawn uniformly; a draw repeating an existing vertex set
//     is redrawn, up to WithMaxAttempts times.
//   - Every uncovered unit then joins the smallest placement with fewer than δ
//     members; when all placements are full, it replaces the most frequent unit
//     of the largest placement holding that unit.
//   - The repaired hypergraph is validated with hypergraph.New. A draw whose
//     repair breaks an invariant (two placements end up over the same units)
//     is discarded and the whole construction is retried.
//
// Determinism:
//   - The RNG is mandatory (WithSeed or WithRand); the same seed yields the
//     same hypergraph. Units are drawn and repaired in index order.
//
// Errors:
//   - ErrTooFewVertices  n < 1
//   - ErrInvalidDelta    δ < 1, or ⌊n/2⌋·min(n,δ) < n (units cannot all be covered)
//   - ErrNeedRandSource  no RNG configured
//   - ErrConstructFailed retries exhausted
package generator
