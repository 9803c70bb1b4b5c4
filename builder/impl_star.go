// SPDX-License-Identifier: MIT
// Package: graphmesh/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Index 0 is the hub at origin; leaves 1..n-1 lie on a circle of radius
//     spacing in the xy plane.
//   - Emits edges (hub, leaf) by increasing leaf index.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphmesh/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 spokes. Every spoke
// is its own branch, which makes stars the smallest fixture for coloring.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub, err := addNode(g, cfg, methodStar, 0, cfg.origin)
		if err != nil {
			return err
		}
		leaves := n - 1
		for i := 1; i < n; i++ {
			theta := 2 * math.Pi * float64(i-1) / float64(leaves)
			pos := cfg.origin
			pos[0] += cfg.spacing * math.Cos(theta)
			pos[1] += cfg.spacing * math.Sin(theta)
			leaf, err := addNode(g, cfg, methodStar, i, pos)
			if err != nil {
				return err
			}
			if err = addEdge(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
