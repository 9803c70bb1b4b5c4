// SPDX-License-Identifier: MIT
// Package: graphmesh/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Nodes lie on a circle in the xy plane centred at origin, with chord
//     length spacing between neighbors; node 0 on the +x axis.
//   - Emits edges (i, (i+1)%n) for i=0..n-1.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the key table.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphmesh/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node loop C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// chord = 2R sin(pi/n)
		radius := cfg.spacing / (2 * math.Sin(math.Pi/float64(n)))
		keys := make([]int, n)
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			pos := cfg.origin
			pos[0] += radius * math.Cos(theta)
			pos[1] += radius * math.Sin(theta)
			key, err := addNode(g, cfg, methodCycle, i, pos)
			if err != nil {
				return err
			}
			keys[i] = key
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, keys[i], keys[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
