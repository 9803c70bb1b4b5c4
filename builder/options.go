// SPDX-License-Identifier: MIT
// Package: graphmesh/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic; they return sentinel errors.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithKeyScheme sets the node key generator: idx -> key. Panics on nil.
func WithKeyScheme(fn KeyFn) BuilderOption {
	if fn == nil {
		panic("builder: WithKeyScheme(nil)")
	}

	return func(c *builderConfig) { c.keyFn = fn }
}

// WithKeyOffset shifts every generated key by offset, so several
// constructors can share one graph without key collisions.
func WithKeyOffset(offset int) BuilderOption {
	return WithKeyScheme(OffsetKeyFn(offset))
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRadiusFn overrides the per-edge radius generator. Panics on nil.
func WithRadiusFn(fn RadiusFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRadiusFn(nil)")
	}

	return func(c *builderConfig) { c.radiusFn = fn }
}

// WithSpacing sets the distance between neighboring generated nodes.
// Panics unless d is finite and > 0.
func WithSpacing(d float64) BuilderOption {
	if !(d > 0) || math.IsInf(d, 0) {
		panic("builder: WithSpacing(d<=0)")
	}

	return func(c *builderConfig) { c.spacing = d }
}

// WithOrigin sets the position of the node with index 0.
func WithOrigin(p [3]float64) BuilderOption {
	return func(c *builderConfig) { c.origin = p }
}

// WithEdgeType stamps t on every edge of Path/Cycle/Star.
func WithEdgeType(t int) BuilderOption {
	return func(c *builderConfig) { c.edgeType = t }
}
