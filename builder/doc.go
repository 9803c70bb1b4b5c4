// Package builder provides deterministic synthetic network generators that
// feed the meshing pipeline when no file is at hand, and reusable
// functional-options building blocks for them.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a core.Graph and apply
//     constructors in order.
//   - Constructors:
//     – Path(n):   straight chain along +x (a single open branch).
//     – Cycle(n):  planar loop (a single closed branch).
//     – Star(n):   hub with n-1 spokes (n-1 branches sharing one vertex).
//     – Tree(g, p): binary bifurcation tree following a Murray-type law.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand, WithKeyScheme, WithKeyOffset,
//     WithRadiusFn, WithSpacing, WithOrigin, WithEdgeType.
//   - Node key schemes (KeyFn): DefaultKeyFn, OffsetKeyFn.
//   - Edge radius distributions (RadiusFn): DefaultRadiusFn,
//     ConstantRadiusFn, UniformRadiusFn.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinels (ErrTooFewVertices,
//     ErrInvalidParams, ErrConstructFailed) and never panic.
//   - Same options, seed and constructor order give identical graphs.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Tree(5, builder.DefaultTreeParams()))
package builder
