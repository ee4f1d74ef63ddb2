// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Hints:
//   - Compose a topology with Priorities() or PriorityMap(...) to get a
//     graph the matching package accepts.
//   - Use WithSeed(...) to freeze RandomSparse and UniformPriorityFn.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/mpm/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph" and
// returned immediately; no partial cleanup is attempted.
//
// Errors:
//   - Callers should branch with errors.Is against builder sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ErrBadPriority, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph, e.g. to add priorities to a
// graph loaded from a file.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return errors.Wrap(ErrConstructFailed, "Apply: nil graph")
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return errors.Wrapf(ErrConstructFailed, "Apply: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return errors.Wrap(err, "Apply")
		}
	}

	return nil
}
