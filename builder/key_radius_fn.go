// Package builder provides helper functions and types for configuring
// node keys and edge radii in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// KeyFn generates a node key from its zero-based index.
// It must be pure and injective.
type KeyFn func(idx int) int

// DefaultKeyFn is the identity: index i becomes key i.
func DefaultKeyFn(idx int) int { return idx }

// OffsetKeyFn returns a KeyFn mapping i to offset+i.
func OffsetKeyFn(offset int) KeyFn {
	return func(idx int) int { return offset + idx }
}

// DefaultRadius is the radius assigned to each edge when no custom
// RadiusFn is provided.
const DefaultRadius float64 = 1

// RadiusFn produces an edge radius given an optional *rand.Rand source.
// It must return a value > 0 and be deterministic for a given RNG seed.
type RadiusFn func(rng *rand.Rand) float64

// DefaultRadiusFn always returns DefaultRadius.
func DefaultRadiusFn(_ *rand.Rand) float64 {
	return DefaultRadius
}

// ConstantRadiusFn returns a RadiusFn that always yields value.
// Panics if value <= 0.
func ConstantRadiusFn(value float64) RadiusFn {
	if !(value > 0) {
		panic(fmt.Sprintf("ConstantRadiusFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformRadiusFn returns a RadiusFn sampling uniformly in (min, max].
// Panics unless 0 <= min < max. With a nil rng it yields max.
func UniformRadiusFn(min, max float64) RadiusFn {
	if min < 0 || !(max > min) {
		panic(fmt.Sprintf("UniformRadiusFn: require 0 <= min < max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return max
		}
		// Float64 is in [0,1); flip it so the result never hits min (possibly 0).
		return max - (max-min)*rng.Float64()
	}
}
