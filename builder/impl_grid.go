// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs "r,c"; 4-neighborhood edges.
//   - Emission order: row-major; for each cell, right neighbor then down.
//
// Complexity:
//   - Time: O(R*C). Space: O(1) extra.

package builder

import "github.com/katalvlaran/mpm/core"

// Grid returns a Constructor that builds a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validatePair(MethodGrid, rows, cols, MinGridDim); err != nil {
			return err
		}
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id := gridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return builderErrorf(ErrConstructFailed, MethodGrid, "AddVertex(%s): %v", id, err)
				}
			}
		}
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, gridVertexID(r, c), gridVertexID(r, c+1), MethodGrid); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, gridVertexID(r, c), gridVertexID(r+1, c), MethodGrid); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
