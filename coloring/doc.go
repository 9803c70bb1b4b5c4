// Package coloring reduces a branch tagging to a small palette.
//
// Every branch of a tagged mesh is a node of the branch adjacency graph;
// two branches are adjacent when they share an endpoint vertex. Reduce
// colors that graph greedily in ascending order of the input colors, so
// adjacent branches never share a reduced color and the number of colors
// never grows. The result is deterministic but not guaranteed minimal.
//
// Errors:
//
//   - ErrInconsistentTagging: endpoints or colors contradict the mesh.
package coloring
