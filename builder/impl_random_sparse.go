// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Requires cfg.rng (else ErrNeedRandSource).
//   - Each unordered pair i<j is kept with probability p, visited in
//     lexicographic (i, j) order, one rng draw per pair.
//
// Complexity:
//   - Time: O(n²) pair checks. Space: O(n).
//
// Determinism:
//   - Identical graphs for equal (n, p, seed, idFn).

package builder

import "github.com/katalvlaran/mpm/core"

// RandomSparse returns a Constructor that builds an Erdős–Rényi G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(ErrNeedRandSource, MethodRandomSparse, "use WithSeed or WithRand")
		}
		ids, err := addVerticesWithIDFn(g, n, cfg.idFn, MethodRandomSparse)
		if err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, ids[i], ids[j], MethodRandomSparse); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
