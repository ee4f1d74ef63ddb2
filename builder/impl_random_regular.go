// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   - Undirected d-regular simple graph via stub-matching with bounded retries.
//   - Pairs stubs after a deterministic shuffle (per seed). Validates a pairing
//     (no loops, no repeated pair) before mutating the graph; on an invalid
//     pairing, reshuffles up to a small limit.
//
// Contract:
//   - n ≥ 1; 0 ≤ d < n; (n*d) must be even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Per attempt ~O(n·d) time; O(n·d) temporary space for stubs.
//
// Determinism:
//   - Fixed attempt limit and fixed trial order → identical outcomes for same seed.
//   - Either a valid realization is produced, or ErrConstructFailed after N attempts.

package builder

import "github.com/katalvlaran/mpm/core"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 200
)

// RandomRegular returns a Constructor that builds an undirected d-regular graph
// using the stub-matching (pairing) strategy with bounded retries.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomRegular, n, minRRVertices); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return builderErrorf(ErrTooFewVertices, methodRandomRegular, "degree must be in [0,%d), got %d", n, d)
		}
		if (n*d)%2 != 0 {
			return builderErrorf(ErrTooFewVertices, methodRandomRegular, "n*d must be even (n=%d, d=%d)", n, d)
		}
		if cfg.rng == nil {
			return builderErrorf(ErrNeedRandSource, methodRandomRegular, "use WithSeed or WithRand")
		}

		ids, err := addVerticesWithIDFn(g, n, cfg.idFn, methodRandomRegular)
		if err != nil {
			return err
		}
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err = addEdge(g, ids[stubs[i]], ids[stubs[i+1]], methodRandomRegular); err != nil {
					return err
				}
			}
			return nil
		}

		return builderErrorf(ErrConstructFailed, methodRandomRegular,
			"no simple pairing after %d attempts", maxStubMatchingAttempts)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
