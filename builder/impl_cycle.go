// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices via cfg.idFn(0..n-1); edges i - (i+1)%n in increasing i.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import "github.com/katalvlaran/mpm/core"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addVerticesWithIDFn(g, n, cfg.idFn, MethodCycle)
		if err != nil {
			return err
		}
		var i int
		for i = 0; i < n; i++ {
			if err = addEdge(g, ids[i], ids[(i+1)%n], MethodCycle); err != nil {
				return err
			}
		}

		return nil
	}
}
