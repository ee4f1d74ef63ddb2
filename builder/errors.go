// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// errors.go - sentinel errors of the builder package.
//
// Policy:
//   - Constructors return these sentinels wrapped with method context
//     ("<Method>: <detail>: <sentinel>"); callers branch with errors.Is.
//   - Option constructors panic instead (programmer error), see options.go.

package builder

import "github.com/cockroachdb/errors"

// ErrTooFewVertices is returned when a size parameter is below the
// minimum of the requested topology.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when an edge probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned by stochastic constructors without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed reports a nil constructor or a failing core mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadPriority is returned when a priority falls outside [1, |V|].
var ErrBadPriority = errors.New("builder: priority out of range")

// ErrUnknownVertex is returned when a priority map names a vertex that
// does not exist in the graph.
var ErrUnknownVertex = errors.New("builder: unknown vertex")
