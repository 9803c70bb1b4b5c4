// Package core provides the in-memory network graph that feeds mesh
// construction: positioned nodes joined by tube segments with a radius.
//
// The Graph G = (V,E) is undirected and simple:
//
//   - Nodes carry a stable integer key and a 3-D position (AddNode).
//   - Edges carry a strictly positive radius and an optional integer type tag
//     (AddEdge with WithType).
//   - Self-loops and parallel edges are rejected (ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed).
//   - Storage is arena-style: Nodes() and Edges() return insertion order,
//     which is the order the mesh builder uses for vertex and cell indices.
//   - Edge IDs are monotonic (1, 2, ...) and survive Clone.
//
// Edges may be added before their endpoints exist; sources such as file
// parsers do not always see nodes first. Validate reports any edge whose
// endpoint never appeared (ErrDanglingEdge). WithStrictEndpoints turns that
// into an immediate AddEdge error instead.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(key int, pos [3]float64) error    // O(1)
//	HasNode(key int) bool                     // O(1)
//	Node(key int) (Node, error)               // O(1)
//	Nodes() []Node, Keys() []int              // O(V)
//	Degree(key int) int, Neighbors(key) []int // O(deg)
//
//	// Edge lifecycle
//	AddEdge(u, v int, radius float64, opts ...EdgeOption) (id int, err error) // O(1)
//	RemoveEdge(id int) error                  // O(E)
//	FilterEdges(keep func(Edge) bool) int     // O(E)
//	HasEdge(u, v int) bool, Edge(id) (Edge, error), Edges() []Edge
//
//	// Whole-graph
//	Clone() *Graph                            // O(V+E)
//	Validate() error                          // O(E)
//	Stats() Stats                             // O(V+E)
//
// All methods are safe for concurrent use; a single sync.RWMutex guards
// the arenas.
package core
