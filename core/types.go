// Package core defines the network Graph, Node and Edge types used as the
// input of mesh construction, and provides thread-safe primitives for
// building, querying, filtering and cloning such graphs.
//
// This file declares Node, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrDuplicateNode       - node key already present.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadRadius           - edge radius is not strictly positive and finite.
//	ErrBadPosition         - node position has a NaN or infinite coordinate.
//	ErrLoopNotAllowed      - edge joins a node to itself.
//	ErrMultiEdgeNotAllowed - a second edge between the same pair of nodes.
//	ErrDanglingEdge        - an edge references a node that was never added.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates AddNode was called twice with the same key.
	ErrDuplicateNode = errors.New("core: duplicate node key")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadRadius indicates a radius that is not a finite positive number.
	ErrBadRadius = errors.New("core: edge radius must be > 0")

	// ErrBadPosition indicates a node position with a NaN or infinite component.
	ErrBadPosition = errors.New("core: node position is not finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDanglingEdge indicates an edge endpoint has no matching node.
	ErrDanglingEdge = errors.New("core: edge endpoint has no node")
)

// Node is a point of the network.
//
// Key is the stable identifier chosen by the graph source (SWC index,
// generator counter, grid vertex number). Pos is the embedding in 3-D.
type Node struct {
	// Key uniquely identifies this Node within its Graph.
	Key int

	// Pos is the node position in 3-D space.
	Pos [3]float64
}

// Edge is a tube segment between two nodes.
type Edge struct {
	// ID is a monotonic identifier assigned by AddEdge (1, 2, ...).
	ID int

	// From and To are the endpoint node keys, in the order given to AddEdge.
	From int
	To   int

	// Radius is the tube radius along this segment, always > 0.
	Radius float64

	// Type is an optional integer tag (SWC structure type, generation, ...).
	// Zero when absent.
	Type int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictEndpoints makes AddEdge reject endpoints that are not yet nodes.
// Without it, edges may be added before their endpoints; Validate reports
// any endpoint still missing once construction is over.
func WithStrictEndpoints() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// WithCapacity preallocates room for n nodes and m edges.
func WithCapacity(n, m int) GraphOption {
	if n < 0 || m < 0 {
		panic("core: WithCapacity requires n >= 0 and m >= 0")
	}

	return func(g *Graph) {
		g.nodes = make([]*Node, 0, n)
		g.edges = make([]*Edge, 0, m)
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithType sets the integer type tag of the edge.
func WithType(t int) EdgeOption {
	return func(e *Edge) { e.Type = t }
}

// Graph is an undirected simple graph with positioned nodes and edges
// that carry a radius and a type tag.
//
// Storage is arena-style: nodes and edges live in flat slices in insertion
// order, so every enumeration is deterministic and index-based consumers
// (the mesh builder) can rely on that order.
// mu protects all fields; nextEdgeID is the edge ID counter.
type Graph struct {
	mu sync.RWMutex

	strict bool // reject edges to unknown nodes

	nextEdgeID int

	nodes     []*Node     // insertion order
	nodeIndex map[int]int // node key → slot in nodes

	edges     []*Edge       // insertion order
	edgeIndex map[int]int   // edge ID → slot in edges
	pairs     map[pair]int  // normalized endpoint pair → edge ID
	adjacency map[int][]int // node key → incident edge IDs, insertion order
}

// pair is an endpoint pair normalized so that a <= b.
type pair struct{ a, b int }

func makePair(u, v int) pair {
	if u > v {
		u, v = v, u
	}

	return pair{u, v}
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) plus any capacity requested.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodeIndex: make(map[int]int),
		edgeIndex: make(map[int]int),
		pairs:     make(map[pair]int),
		adjacency: make(map[int][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
