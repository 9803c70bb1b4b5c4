// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and structural validation.

package core

import (
	"fmt"
)

// Clone returns a deep copy of g: same options, nodes, edges and edge IDs.
// The edge ID counter continues from the source so new edges never collide.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithCapacity(len(g.nodes), len(g.edges)))
	c.strict = g.strict
	c.nextEdgeID = g.nextEdgeID
	for _, n := range g.nodes {
		cp := *n
		c.nodeIndex[cp.Key] = len(c.nodes)
		c.nodes = append(c.nodes, &cp)
	}
	for _, e := range g.edges {
		cp := *e
		c.edges = append(c.edges, &cp)
	}
	c.retainEdges(func(*Edge) bool { return true })

	return c
}

// Validate checks that every edge endpoint is a node of the graph.
// The returned error wraps ErrDanglingEdge and names the first offending
// edge together with the total number of dangling endpoints.
//
// Complexity: O(E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		first   *Edge
		missing int
		key     int
	)
	for _, e := range g.edges {
		for _, k := range [2]int{e.From, e.To} {
			if _, ok := g.nodeIndex[k]; ok {
				continue
			}
			if first == nil {
				first, key = e, k
			}
			missing++
		}
	}
	if first != nil {
		return fmt.Errorf("Validate: edge %d (%d,%d) endpoint %d (%d missing in total): %w",
			first.ID, first.From, first.To, key, missing, ErrDanglingEdge)
	}

	return nil
}
