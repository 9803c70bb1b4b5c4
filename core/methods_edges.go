// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount,
//       plus predicate-based filtering.
// Determinism:
//   - Edges() returns edges in insertion order; removal keeps the relative
//     order of the survivors.
//   - Edge IDs are monotonic and never reused within a Graph.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge creates an undirected edge between u and v with the given radius.
//
// Steps:
//  1. Validate radius (finite, > 0) and reject u == v.
//  2. Lock, reject a second edge on the same unordered pair.
//  3. In strict mode, both endpoints must already be nodes.
//  4. Assign the next ID, apply opts, append to the arena and adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, radius float64, opts ...EdgeOption) (int, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return 0, fmt.Errorf("AddEdge: (%d,%d) radius=%v: %w", u, v, radius, ErrBadRadius)
	}
	if u == v {
		return 0, fmt.Errorf("AddEdge: (%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	p := makePair(u, v)
	if _, exists := g.pairs[p]; exists {
		return 0, fmt.Errorf("AddEdge: (%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	if g.strict {
		for _, k := range [2]int{u, v} {
			if _, ok := g.nodeIndex[k]; !ok {
				return 0, fmt.Errorf("AddEdge: endpoint %d: %w", k, ErrNodeNotFound)
			}
		}
	}

	g.nextEdgeID++
	e := &Edge{ID: g.nextEdgeID, From: u, To: v, Radius: radius}
	for _, opt := range opts {
		opt(e)
	}

	g.edgeIndex[e.ID] = len(g.edges)
	g.edges = append(g.edges, e)
	g.pairs[p] = e.ID
	g.adjacency[u] = append(g.adjacency[u], e.ID)
	g.adjacency[v] = append(g.adjacency[v], e.ID)

	return e.ID, nil
}

// HasEdge reports whether an edge joins u and v (in either order).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pairs[makePair(u, v)]

	return ok
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	slot, ok := g.edgeIndex[id]
	if !ok {
		return Edge{}, fmt.Errorf("Edge: id=%d: %w", id, ErrEdgeNotFound)
	}

	return *g.edges[slot], nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// RemoveEdge deletes the edge with the given ID.
// Complexity: O(E) to compact the arena.
func (g *Graph) RemoveEdge(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.edgeIndex[id]; !ok {
		return fmt.Errorf("RemoveEdge: id=%d: %w", id, ErrEdgeNotFound)
	}
	g.retainEdges(func(e *Edge) bool { return e.ID != id })

	return nil
}

// FilterEdges keeps only the edges for which keep returns true and
// returns how many were removed. Nodes are never removed.
//
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(Edge) bool) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	before := len(g.edges)
	g.retainEdges(func(e *Edge) bool { return keep(*e) })

	return before - len(g.edges)
}

// retainEdges compacts the edge arena in place and rebuilds the indexes.
// Caller must hold mu for writing.
func (g *Graph) retainEdges(keep func(*Edge) bool) {
	kept := g.edges[:0]
	for _, e := range g.edges {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	g.edgeIndex = make(map[int]int, len(kept))
	g.pairs = make(map[pair]int, len(kept))
	g.adjacency = make(map[int][]int, len(g.adjacency))
	for i, e := range kept {
		g.edgeIndex[e.ID] = i
		g.pairs[makePair(e.From, e.To)] = e.ID
		g.adjacency[e.From] = append(g.adjacency[e.From], e.ID)
		g.adjacency[e.To] = append(g.adjacency[e.To], e.ID)
	}
}
