// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) - i for i=1..n-1 in stable increasing order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(n) for the ID slice.

package builder

import "github.com/katalvlaran/mpm/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids, err := addVerticesWithIDFn(g, n, cfg.idFn, MethodPath)
		if err != nil {
			return err
		}
		var i int
		for i = 1; i < n; i++ {
			if err = addEdge(g, ids[i-1], ids[i], MethodPath); err != nil {
				return err
			}
		}

		return nil
	}
}
