// Cycle detection for undirected core.Graphs using three-color marking.
// FindCycle reports the first cycle met by a forest DFS in node insertion
// order, reconstructed from the recursion path at the back edge.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"github.com/katalvlaran/graphmesh/core"
)

// FindCycle returns the keys of one simple cycle of g, starting at the
// ancestor end of the back edge, and true; or nil and false if g is a forest.
// A nil graph is cycle-free.
func FindCycle(g *core.Graph) ([]int, bool) {
	if g == nil {
		return nil, false
	}

	w := &walker{graph: g}
	w.snapshot()

	state := make(map[int]int, g.NodeCount())
	var path []int

	var visit func(key, viaEdge int) []int
	visit = func(key, viaEdge int) []int {
		state[key] = Gray
		path = append(path, key)
		for _, id := range w.inc[key] {
			if id == viaEdge {
				continue
			}
			e := w.edges[id]
			next := e.To
			if next == key {
				next = e.From
			}
			switch state[next] {
			case Gray:
				// back edge: cycle is path from next to key
				for i := len(path) - 1; i >= 0; i-- {
					if path[i] == next {
						return append([]int(nil), path[i:]...)
					}
				}
			case White:
				if c := visit(next, id); c != nil {
					return c
				}
			}
		}
		state[key] = Black
		path = path[:len(path)-1]

		return nil
	}

	for _, k := range g.Keys() {
		if state[k] != White {
			continue
		}
		if c := visit(k, 0); c != nil {
			return c, true
		}
	}

	return nil, false
}

// HasCycle reports whether g contains any cycle.
func HasCycle(g *core.Graph) bool {
	_, ok := FindCycle(g)

	return ok
}
