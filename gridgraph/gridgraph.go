// Package gridgraph builds synthetic networks by sampling the edges of a
// background grid over a square domain. It supports:
//
//   - Axis-aligned, triangulated or fully diagonal background edges
//   - Conversion of the full background to a *core.Graph
//   - Random edge subgraphs with per-edge random radii (RandomEdgeGraph)
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/graphmesh/core"
)

// NewGridGraph constructs a GridGraph with cols×rows squares.
// Returns ErrEmptyGrid if either count is < 1 and ErrBadExtent if
// opts.Extent is not positive.
// Complexity: O(1).
func NewGridGraph(cols, rows int, opts GridOptions) (*GridGraph, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("NewGridGraph: %dx%d: %w", cols, rows, ErrEmptyGrid)
	}
	if !(opts.Extent > 0) {
		return nil, fmt.Errorf("NewGridGraph: extent=%g: %w", opts.Extent, ErrBadExtent)
	}

	offsets := [][2]int{{1, 0}, {0, 1}}
	switch opts.Conn {
	case ConnTriangulated:
		offsets = append(offsets, [2]int{1, 1})
	case Conn8:
		offsets = append(offsets, [2]int{1, 1}, [2]int{-1, 1})
	}

	return &GridGraph{
		Cols:           cols,
		Rows:           rows,
		Conn:           opts.Conn,
		Extent:         opts.Extent,
		Origin:         opts.Origin,
		forwardOffsets: offsets,
	}, nil
}

// InBounds reports whether vertex (x,y) lies within the lattice.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x <= gg.Cols && y >= 0 && y <= gg.Rows
}

// NumVertices returns the number of lattice vertices.
func (gg *GridGraph) NumVertices() int {
	return (gg.Cols + 1) * (gg.Rows + 1)
}

// index maps (x,y) to a row-major index: y*(Cols+1) + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*(gg.Cols+1) + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % (gg.Cols + 1), idx / (gg.Cols + 1)
}

// Position returns the point of vertex idx. Squares are Extent/Cols wide
// and Extent/Rows tall, so the lattice always fills the square domain.
func (gg *GridGraph) Position(idx int) [3]float64 {
	x, y := gg.Coordinate(idx)
	p := gg.Origin
	p[0] += gg.Extent * float64(x) / float64(gg.Cols)
	p[1] += gg.Extent * float64(y) / float64(gg.Rows)

	return p
}

// Edges enumerates the background edges as vertex index pairs, in row-major
// order of their first endpoint and then in offset order.
// Complexity: O(V×d).
func (gg *GridGraph) Edges() [][2]int {
	out := make([][2]int, 0, gg.NumVertices()*len(gg.forwardOffsets))
	for y := 0; y <= gg.Rows; y++ {
		for x := 0; x <= gg.Cols; x++ {
			for _, d := range gg.forwardOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				out = append(out, [2]int{gg.index(x, y), gg.index(nx, ny)})
			}
		}
	}

	return out
}

// ToCoreGraph converts the whole background into a *core.Graph where every
// edge has the given radius. Node keys are lattice indices.
// Complexity: O(V + E).
func (gg *GridGraph) ToCoreGraph(radius float64) (*core.Graph, error) {
	edges := gg.Edges()
	g := core.NewGraph(core.WithCapacity(gg.NumVertices(), len(edges)), core.WithStrictEndpoints())
	for idx := 0; idx < gg.NumVertices(); idx++ {
		if err := g.AddNode(idx, gg.Position(idx)); err != nil {
			return nil, fmt.Errorf("ToCoreGraph: %w", err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], radius); err != nil {
			return nil, fmt.Errorf("ToCoreGraph: %w", err)
		}
	}

	return g, nil
}
