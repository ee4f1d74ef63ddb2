// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Rim: Cycle(n-1) over cfg.idFn(0..n-2); hub: CenterVertexID.
//   - Emission order: rim edges first, then spokes in rim index order.
//
// Complexity:
//   - Time: O(n) vertices + O(2n-2) edges. Space: O(n).

package builder

import "github.com/katalvlaran/mpm/core"

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		rim := n - 1
		ids, err := addVerticesWithIDFn(g, rim, cfg.idFn, MethodWheel)
		if err != nil {
			return err
		}
		var i int
		for i = 0; i < rim; i++ {
			if err = addEdge(g, ids[i], ids[(i+1)%rim], MethodWheel); err != nil {
				return err
			}
		}
		if err = g.AddVertex(CenterVertexID); err != nil {
			return builderErrorf(ErrConstructFailed, MethodWheel, "AddVertex(%s): %v", CenterVertexID, err)
		}
		for _, id := range ids {
			if err = addEdge(g, CenterVertexID, id, MethodWheel); err != nil {
				return err
			}
		}

		return nil
	}
}
