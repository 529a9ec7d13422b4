// Package mecalloc selects conflict-free virtual-resource placements for
// Mobile-Edge-Computing sites, modeled as a weighted hypergraph matching
// problem.
//
// 🚀 What is mecalloc?
//
//	A small, deterministic library that brings together:
//		• Exact weights: decimal arithmetic end to end, no float drift
//		• Hypergraphs: placements over resource units, validated on every change
//		• Conflict graphs: one vertex per placement, an edge per shared unit
//		• Allocation: greedy independent set + bounded claw-swap local search
//		• Tooling: random instances, YAML placement documents, a CLI
//
// ✨ Why choose mecalloc?
//
//   - Deterministic – every accessor returns ID-sorted slices, ties break by ID
//   - Exact – improvements are compared on exact decimals, so the search terminates
//   - Small API – build a hypergraph, pick a Strategy, call Allocate
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        - Weight, Vertex, Edge and the ConflictGraph
//	hypergraph/  - HyperEdge, HyperGraph, placement matrices, conflict derivation
//	allocation/  - Strategy, SequentialSearch, LocalSearch
//	generator/   - random placement hypergraphs
//	placement/   - YAML placement documents
//	cmd/mecalloc - allocate / generate / inspect from the command line
//
// Quick ASCII example:
//
//	units:       1   2   3
//	placement a: ●───●
//	placement b:     ●───●
//
//	a and b share unit 2, so the conflict graph has the edge a─b and an
//	allocation keeps at most one of them.
//
//	go get github.com/katalvlaran/mecalloc
package mecalloc
