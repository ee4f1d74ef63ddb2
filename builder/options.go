// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPriorityFn sets the priority policy used by Priorities. Panics on nil.
func WithPriorityFn(fn PriorityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithPriorityFn(nil)")
	}
	return func(c *builderConfig) {
		c.priorityFn = fn
	}
}

// WithPriorityKey changes the vertex attribute written by Priorities and
// PriorityMap. Panics on an empty key.
func WithPriorityKey(key string) BuilderOption {
	if key == "" {
		panic("builder: WithPriorityKey(\"\")")
	}
	return func(c *builderConfig) {
		c.priorityKey = key
	}
}

// WithPartitionPrefix sets the ID prefixes of CompleteBipartite.
// Empty values fall back to the defaults "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix = left
		c.rightPrefix = right
	}
}
