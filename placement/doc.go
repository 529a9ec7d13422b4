// Package placement reads and writes placement documents: YAML files that
// carry a hypergraph as per-unit weights plus a binary placement matrix
// (rows = resource units, columns = placements).
//
//	name: edge-site-a
//	vertices: ["1", "2", "3"]     # optional row IDs, default "1".."n"
//	placements: ["p1", "p2"]      # optional column IDs, default "1".."m"
//	weights: [1.5, 2, 0.25]
//	matrix:
//	  - [1, 0]
//	  - [1, 1]
//	  - [0, 1]
//
// Weights are exact decimals: the literal in the file is the value used,
// with no binary floating-point step in between.
package placement
