// Package dfs implements depth-first search traversal and the topology
// checks the meshing pipeline runs on an input network.
//
// What:
//
//   - DFS: explores as far as possible along each edge chain before
//     backtracking. Supports pre-order and post-order hooks, cancellation via
//     context.Context, depth limiting and edge filtering.
//   - FindCycle / HasCycle: three-color (White, Gray, Black) search for a
//     back edge in an undirected graph.
//   - Components: connected components in deterministic order.
//   - IsTree: connected, acyclic, no dangling endpoints.
//
// Why:
//   - Arbor sources (SWC, generated bifurcation trees) must be trees; a
//     cycle or a second component usually means a broken file.
//   - Sampled grid networks are general graphs; reporting their components
//     explains branch and coloring counts downstream.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option: functional options for DFS behavior
//   - Options: holds Context, hooks, MaxDepth, FilterEdge
//   - Result: post-order, Depth, Parent, Visited, Roots
//
// Errors:
//
//   - ErrGraphNil:          nil graph passed
//   - ErrStartNodeNotFound: start key is not a node
package dfs
