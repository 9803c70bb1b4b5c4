// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and Keys() return nodes in insertion order.
//
// Concurrency:
//   - Writes under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"math"
)

// AddNode inserts a node with the given key and position.
//
// Implementation:
//   - Stage 1: Reject non-finite coordinates (ErrBadPosition).
//   - Stage 2: Under the write lock, reject an existing key (ErrDuplicateNode).
//   - Stage 3: Append to the node arena and record the key slot.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(key int, pos [3]float64) error {
	for i, x := range pos {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("AddNode: key=%d coordinate %d=%v: %w", key, i, x, ErrBadPosition)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodeIndex[key]; exists {
		return fmt.Errorf("AddNode: key=%d: %w", key, ErrDuplicateNode)
	}
	g.nodeIndex[key] = len(g.nodes)
	g.nodes = append(g.nodes, &Node{Key: key, Pos: pos})

	return nil
}

// HasNode reports whether a node with the given key exists.
// Complexity: O(1).
func (g *Graph) HasNode(key int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodeIndex[key]

	return ok
}

// Node returns a copy of the node stored under key.
func (g *Graph) Node(key int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	slot, ok := g.nodeIndex[key]
	if !ok {
		return Node{}, fmt.Errorf("Node: key=%d: %w", key, ErrNodeNotFound)
	}

	return *g.nodes[slot], nil
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = *n
	}

	return out
}

// Keys returns all node keys in insertion order.
func (g *Graph) Keys() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Key
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of edges incident to key.
// Keys referenced only by dangling edges have a degree too.
func (g *Graph) Degree(key int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[key])
}

// Neighbors returns the keys adjacent to key, in edge insertion order.
func (g *Graph) Neighbors(key int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := g.adjacency[key]
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		e := g.edges[g.edgeIndex[id]]
		if e.From == key {
			out = append(out, e.To)
		} else {
			out = append(out, e.From)
		}
	}

	return out
}
