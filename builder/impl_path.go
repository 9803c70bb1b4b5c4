// SPDX-License-Identifier: MIT
// Package: graphmesh/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Node i sits at origin + i*spacing along +x.
//   - Emits edges (i-1, i) for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmesh/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a straight path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		keys := make([]int, n)
		for i := 0; i < n; i++ {
			pos := cfg.origin
			pos[0] += float64(i) * cfg.spacing
			key, err := addNode(g, cfg, methodPath, i, pos)
			if err != nil {
				return err
			}
			keys[i] = key
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, keys[i-1], keys[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
