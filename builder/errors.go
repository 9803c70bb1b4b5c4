// SPDX-License-Identifier: MIT
// Package: graphmesh/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context using %w.
//   - Constructors never panic; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (n, generations)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidParams indicates inconsistent geometric parameters
// (non-positive diameter or lambda, gamma outside (0,1], zero direction,
// normal parallel to the direction).
var ErrInvalidParams = errors.New("builder: invalid parameters")

// ErrConstructFailed indicates a nil constructor or a core insertion failure
// that left the graph unusable.
var ErrConstructFailed = errors.New("builder: construction failed")
