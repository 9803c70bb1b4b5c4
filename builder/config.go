// SPDX-License-Identifier: MIT
// Package: graphmesh/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - keyFn    = identity             (0, 1, 2, ...)
//   - rng      = nil                  (pure/deterministic unless seeded)
//   - radiusFn = ConstantRadiusFn(DefaultRadius)
//   - spacing  = 1.0                  (distance between neighboring nodes)
//   - origin   = (0,0,0)
//   - edgeType = 0

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node key strategy: index -> key.
	keyFn KeyFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Radius generator for edges of the synthetic topologies.
	radiusFn RadiusFn
	// Distance between consecutive nodes of Path/Cycle/Star.
	spacing float64
	// Position of node index 0.
	origin [3]float64
	// Type tag stamped on every generated edge (Tree uses generations instead).
	edgeType int
}

const defaultSpacing = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		keyFn:    DefaultKeyFn,
		radiusFn: DefaultRadiusFn,
		spacing:  defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
