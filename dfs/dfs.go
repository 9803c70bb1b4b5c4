// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, and the topology checks built on it: connected components,
// cycle detection and tree recognition.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the whole forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterEdge, SkippedEdges diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartNodeNotFound      if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphmesh/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	edges map[int]core.Edge // edge ID → edge, snapshot
	inc   map[int][]int     // key → incident edge IDs, snapshot
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components in node insertion order; otherwise it starts only from start.
// Neighbors are explored in edge insertion order, so results are deterministic.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("dfs: start=%d: %w", start, ErrStartNodeNotFound)
	}

	keys := g.Keys()
	res := &Result{
		Order:   make([]int, 0, len(keys)),
		Depth:   make(map[int]int, len(keys)),
		Parent:  make(map[int]int, len(keys)),
		Visited: make(map[int]bool, len(keys)),
	}
	w := &walker{graph: g, opts: o, res: res}
	w.snapshot()

	if o.FullTraversal {
		for _, k := range keys {
			if res.Visited[k] {
				continue
			}
			res.Roots = append(res.Roots, k)
			if err := w.traverse(k, 0); err != nil {
				return res, err
			}
		}
	} else {
		res.Roots = append(res.Roots, start)
		if err := w.traverse(start, 0); err != nil {
			return res, err
		}
	}
	res.SkippedEdges = w.opts.SkippedEdges

	return res, nil
}

// snapshot copies the edge set once so traversal does not take the graph
// lock per step.
func (w *walker) snapshot() {
	edges := w.graph.Edges()
	w.edges = make(map[int]core.Edge, len(edges))
	w.inc = make(map[int][]int)
	for _, e := range edges {
		w.edges[e.ID] = e
		w.inc[e.From] = append(w.inc[e.From], e.ID)
		w.inc[e.To] = append(w.inc[e.To], e.ID)
	}
}

// traverse visits key at the given depth and recurses into neighbors.
func (w *walker) traverse(key, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[key] = true
	w.res.Depth[key] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(key); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", key, err)
		}
	}

	for _, id := range w.inc[key] {
		e := w.edges[id]
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			w.opts.SkippedEdges++
			continue
		}
		next := e.To
		if next == key {
			next = e.From
		}
		if w.res.Visited[next] {
			continue
		}
		w.res.Parent[next] = key
		if err := w.traverse(next, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(key); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", key, err)
		}
	}
	w.res.Order = append(w.res.Order, key)

	return nil
}
