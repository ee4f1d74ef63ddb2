// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Edges for i<j in lexicographic (i, j) order.
//
// Complexity:
//   - Time: O(n²). Space: O(n).

package builder

import "github.com/katalvlaran/mpm/core"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := addVerticesWithIDFn(g, n, cfg.idFn, MethodComplete)
		if err != nil {
			return err
		}

		return addCompleteEdges(g, ids, MethodComplete)
	}
}
