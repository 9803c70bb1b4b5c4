// Package gridgraph generates irregular test networks by sampling a
// background lattice.
//
// What:
//
//   - GridGraph describes a (Cols+1)×(Rows+1) vertex lattice over a square
//     domain with axis, triangulated or fully diagonal background edges.
//   - ToCoreGraph converts the full background into a *core.Graph.
//   - RandomEdgeGraph drops each background edge with a given probability
//     and gives survivors a random radius; the result usually has many
//     branch points, loops and several components, which stresses the
//     branch and coloring stages far more than tree inputs do.
//
// Complexity:
//
//   - Edges, ToCoreGraph, RandomEdgeGraph: O(V×d), Memory: O(V + E)
//     (d = number of forward offsets, 2 to 4).
//
// Options:
//
//   - GridOptions.Conn: Conn4, ConnTriangulated or Conn8.
//   - GridOptions.Extent / Origin: size and placement of the domain.
//
// Errors:
//
//   - ErrEmptyGrid, ErrBadExtent: invalid lattice.
//   - ErrInvalidProbability, ErrNeedRandSource: invalid sampling request.
package gridgraph
