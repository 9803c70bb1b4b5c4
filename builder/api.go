// SPDX-License-Identifier: MIT
// Package: graphmesh/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order give identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmesh/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: the sum of their costs.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder and core sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNode inserts the node for index idx, wrapping failures with method context.
func addNode(g *core.Graph, cfg builderConfig, method string, idx int, pos [3]float64) (int, error) {
	key := cfg.keyFn(idx)
	if err := g.AddNode(key, pos); err != nil {
		return 0, fmt.Errorf("%s: AddNode(%d): %w", method, key, err)
	}

	return key, nil
}

// addEdge inserts u-v with the configured radius and type.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	r := cfg.radiusFn(cfg.rng)
	if _, err := g.AddEdge(u, v, r, core.WithType(cfg.edgeType)); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, r=%g): %w", method, u, v, r, err)
	}

	return nil
}
