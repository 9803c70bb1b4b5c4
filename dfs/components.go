package dfs

import (
	"github.com/katalvlaran/graphmesh/core"
)

// Components returns the connected components of g. Each component lists
// its keys in DFS discovery order; components are ordered by their first
// node in insertion order. Isolated nodes form singleton components.
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var preorder []int
	collect := WithOnVisit(func(key int) error {
		preorder = append(preorder, key)
		return nil
	})
	res, err := DFS(g, 0, append(opts, collect, WithFullTraversal())...)
	if err != nil {
		return nil, err
	}

	// a key without a DFS parent starts a new component
	var comps [][]int
	for _, k := range preorder {
		if _, child := res.Parent[k]; !child {
			comps = append(comps, nil)
		}
		comps[len(comps)-1] = append(comps[len(comps)-1], k)
	}

	return comps, nil
}

// IsTree reports whether g is a valid, connected, acyclic graph with at
// least one edge: the shape produced by arbor sources such as SWC files.
func IsTree(g *core.Graph) bool {
	if g == nil || g.EdgeCount() == 0 || g.Validate() != nil {
		return false
	}
	comps, err := Components(g)
	if err != nil || len(comps) != 1 {
		return false
	}

	return g.EdgeCount() == g.NodeCount()-1
}
