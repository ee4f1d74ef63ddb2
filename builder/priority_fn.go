// Package builder provides helper functions and types
// for assigning vertex priorities in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// PriorityFn produces the priority of the idx-th of n vertices (indices
// follow the sorted vertex IDs). It must be deterministic for a given RNG
// seed and should return values in [1, n]; Priorities rejects anything else.
type PriorityFn func(idx, n int, rng *rand.Rand) int

// ConstantPriorityFn returns a PriorityFn that always yields value.
// Panics if value < 1.
func ConstantPriorityFn(value int) PriorityFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantPriorityFn: value must be ≥ 1, got %d", value))
	}

	return func(_, _ int, _ *rand.Rand) int {
		return value
	}
}

// UniformPriorityFn returns a PriorityFn sampling uniformly in [1, k],
// with k clipped to n. Panics if k < 1.
// If rng is nil, yields idx%k+1 to maintain a deterministic fallback.
func UniformPriorityFn(k int) PriorityFn {
	if k < 1 {
		panic(fmt.Sprintf("UniformPriorityFn: k must be ≥ 1, got %d", k))
	}

	return func(idx, n int, rng *rand.Rand) int {
		top := k
		if top > n {
			top = n
		}
		if rng == nil {
			return idx%top + 1
		}
		return rng.Intn(top) + 1
	}
}

// CyclicPriorityFn cycles through 1..k in vertex order. Panics if k < 1.
func CyclicPriorityFn(k int) PriorityFn {
	if k < 1 {
		panic(fmt.Sprintf("CyclicPriorityFn: k must be ≥ 1, got %d", k))
	}

	return func(idx, n int, _ *rand.Rand) int {
		top := k
		if top > n {
			top = n
		}
		return idx%top + 1
	}
}

// DistinctPriorityFn gives the idx-th vertex priority idx+1, so every
// vertex forms its own class.
func DistinctPriorityFn(idx, _ int, _ *rand.Rand) int {
	return idx + 1
}
