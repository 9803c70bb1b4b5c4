// Package dfs defines types and options for depth-first search over a
// core.Graph, including cancellation, pre-/post-order hooks, depth limiting,
// edge filtering and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphmesh/core"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start key is not a node.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on discovery (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(key int) error

	// OnExit, if non-nil, is invoked after all descendants are explored
	// (post-order). Returning an error aborts traversal.
	OnExit func(key int) error

	// MaxDepth, if non-negative, limits recursion depth. Default -1.
	MaxDepth int

	// FilterEdge, if non-nil, decides whether an edge may be traversed.
	FilterEdge func(e core.Edge) bool

	// FullTraversal runs DFS from every unvisited node (forest traversal).
	FullTraversal bool

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filter and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("dfs: WithContext(nil)")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(key int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(key int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits recursion; limit must be >= 0.
func WithMaxDepth(limit int) Option {
	if limit < 0 {
		panic("dfs: WithMaxDepth requires limit >= 0")
	}

	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterEdge restricts traversal to edges accepted by fn.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) { o.FilterEdge = fn }
}

// WithFullTraversal makes DFS cover every connected component.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result collects the outcome of a traversal.
type Result struct {
	// Order is the post-order finish sequence.
	Order []int

	// Depth maps each visited key to its depth in its DFS tree.
	Depth map[int]int

	// Parent maps each non-root visited key to its DFS parent.
	Parent map[int]int

	// Visited marks every discovered key.
	Visited map[int]bool

	// Roots lists the start key of every DFS tree, in traversal order.
	Roots []int

	// SkippedEdges mirrors Options.SkippedEdges.
	SkippedEdges int
}
