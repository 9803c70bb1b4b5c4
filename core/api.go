// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a Graph.

package core

// Stats is a snapshot of the shape of a Graph.
type Stats struct {
	Nodes        int // number of nodes
	Edges        int // number of edges
	Leaves       int // nodes of degree 1
	BranchPoints int // nodes of degree >= 3
	Isolated     int // nodes with no incident edge
	Dangling     int // edge endpoints that are not nodes
	MinRadius    float64
	MaxRadius    float64
}

// Stats computes a Stats snapshot. Radii are zero for an edgeless graph.
// Complexity: O(V+E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges)}
	for _, n := range g.nodes {
		switch d := len(g.adjacency[n.Key]); {
		case d == 0:
			s.Isolated++
		case d == 1:
			s.Leaves++
		case d >= 3:
			s.BranchPoints++
		}
	}
	for i, e := range g.edges {
		if i == 0 || e.Radius < s.MinRadius {
			s.MinRadius = e.Radius
		}
		if e.Radius > s.MaxRadius {
			s.MaxRadius = e.Radius
		}
		for _, k := range [2]int{e.From, e.To} {
			if _, ok := g.nodeIndex[k]; !ok {
				s.Dangling++
			}
		}
	}

	return s
}
