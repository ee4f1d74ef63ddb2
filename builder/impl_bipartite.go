// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs cfg.leftPrefix+i, right IDs cfg.rightPrefix+j.
//   - Edges left_i - right_j in row-major (i, j) order.
//
// Complexity:
//   - Time: O(n1+n2) vertices + O(n1*n2) edges. Space: O(n1+n2).

package builder

import "github.com/katalvlaran/mpm/core"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validatePair(MethodCompleteBipartite, n1, n2, MinPartitionSize); err != nil {
			return err
		}
		left := makeIDs(cfg.leftPrefix, n1)
		right := makeIDs(cfg.rightPrefix, n2)
		for _, id := range append(append([]string{}, left...), right...) {
			if err := g.AddVertex(id); err != nil {
				return builderErrorf(ErrConstructFailed, MethodCompleteBipartite, "AddVertex(%s): %v", id, err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, u, v, MethodCompleteBipartite); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
