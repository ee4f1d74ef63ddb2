// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center vertex is CenterVertexID; leaves are cfg.idFn(0..n-2).
//   - Edges Center - leaf in leaf index order.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import "github.com/katalvlaran/mpm/core"

// Star returns a Constructor that builds a star with n vertices in total.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return builderErrorf(ErrConstructFailed, MethodStar, "AddVertex(%s): %v", CenterVertexID, err)
		}
		leaves, err := addVerticesWithIDFn(g, n-1, cfg.idFn, MethodStar)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, CenterVertexID, leaf, MethodStar); err != nil {
				return err
			}
		}

		return nil
	}
}
