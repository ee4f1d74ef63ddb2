// SPDX-License-Identifier: MIT
// Package: mpm/builder
//
// config.go - resolved configuration shared by every constructor.
//
// Contract:
//   - builderConfig is immutable once newBuilderConfig returns.
//   - Defaults: decimal IDs, no RNG, every vertex priority 1,
//     bipartite prefixes "L"/"R".

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig holds everything a Constructor may consult.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn func(int) string

	// rng drives stochastic constructors; nil means "not configured".
	rng *rand.Rand

	// priorityFn assigns a priority to the idx-th of n vertices.
	priorityFn PriorityFn

	// priorityKey is the vertex attribute Priorities writes.
	priorityKey string

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		priorityFn:  ConstantPriorityFn(1),
		priorityKey: DefaultPriorityKey,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}
