// Package mesh holds the 1-D simplicial mesh built from a network graph:
// vertices embedded in 3-D, two-vertex cells, and piecewise-constant
// cell fields defined on them.
//
// Vertex i of a mesh built by Build is the i-th node of the graph in
// insertion order; cell c is the c-th edge. Refined and extracted meshes
// keep their own index spaces and carry parent maps back to their source.
package mesh

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphmesh/geom"
)

var (
	// ErrMalformedGraph reports a graph that cannot be meshed: nil, without
	// edges, or with an edge endpoint that is not a node.
	ErrMalformedGraph = errors.New("mesh: malformed graph")

	// ErrInvalidMesh reports raw arrays that do not describe a 1-D mesh.
	ErrInvalidMesh = errors.New("mesh: invalid mesh")
)

const (
	// GeometricDim is the dimension of the embedding space.
	GeometricDim = 3
	// TopologicalDim is the dimension of the cells.
	TopologicalDim = 1
)

// Mesh is an interval mesh embedded in 3-D.
type Mesh struct {
	// Coords holds vertex positions.
	Coords [][3]float64
	// Cells holds vertex index pairs in the orientation they were created.
	Cells [][2]int
	// Keys maps the first len(Keys) vertices back to graph node keys.
	// Vertices created later (refinement midpoints) have no key.
	Keys []int

	index map[int]int // node key → vertex
}

// New assembles a mesh from raw arrays after checking that every cell has
// two distinct in-range vertices. The arrays are copied.
func New(coords [][3]float64, cells [][2]int) (*Mesh, error) {
	for c, cell := range cells {
		for _, v := range cell {
			if v < 0 || v >= len(coords) {
				return nil, errors.Wrapf(ErrInvalidMesh, "cell %d vertex %d out of range [0,%d)", c, v, len(coords))
			}
		}
		if cell[0] == cell[1] {
			return nil, errors.Wrapf(ErrInvalidMesh, "cell %d is degenerate (%d,%d)", c, cell[0], cell[1])
		}
	}
	m := &Mesh{
		Coords: append([][3]float64(nil), coords...),
		Cells:  append([][2]int(nil), cells...),
	}

	return m, nil
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.Coords) }

// NumCells returns the cell count.
func (m *Mesh) NumCells() int { return len(m.Cells) }

// VertexOf returns the vertex index of graph node key.
func (m *Mesh) VertexOf(key int) (int, bool) {
	v, ok := m.index[key]
	return v, ok
}

// CellLength returns the Euclidean length of cell c.
func (m *Mesh) CellLength(c int) float64 {
	cell := m.Cells[c]
	return geom.Dist(m.Coords[cell[0]], m.Coords[cell[1]])
}

// CellMidpoint returns the midpoint of cell c.
func (m *Mesh) CellMidpoint(c int) [3]float64 {
	cell := m.Cells[c]
	return geom.Mid(m.Coords[cell[0]], m.Coords[cell[1]])
}

// VertexCells returns, for every vertex, the cells incident to it in
// ascending order.
// Complexity: O(V + C).
func (m *Mesh) VertexCells() [][]int {
	out := make([][]int, len(m.Coords))
	for c, cell := range m.Cells {
		out[cell[0]] = append(out[cell[0]], c)
		out[cell[1]] = append(out[cell[1]], c)
	}

	return out
}

// Degrees returns the number of cells incident to each vertex.
func (m *Mesh) Degrees() []int {
	out := make([]int, len(m.Coords))
	for _, cell := range m.Cells {
		out[cell[0]]++
		out[cell[1]]++
	}

	return out
}

// IsLoop reports whether every vertex of m has exactly two cells, i.e. m
// has no bifurcations and no open ends. An empty mesh is not a loop.
func (m *Mesh) IsLoop() bool {
	if len(m.Coords) == 0 {
		return false
	}
	for _, d := range m.Degrees() {
		if d != 2 {
			return false
		}
	}

	return true
}

// SortedKeys returns the node keys known to m in ascending order.
func (m *Mesh) SortedKeys() []int {
	keys := append([]int(nil), m.Keys...)
	sort.Ints(keys)

	return keys
}

// SetKeys records node keys for the first len(keys) vertices.
func (m *Mesh) SetKeys(keys []int) error {
	if len(keys) > len(m.Coords) {
		return errors.Wrapf(ErrInvalidMesh, "%d keys for %d vertices", len(keys), len(m.Coords))
	}
	m.Keys = append([]int(nil), keys...)
	m.reindex()

	return nil
}

// reindex rebuilds the key → vertex map from Keys.
func (m *Mesh) reindex() {
	m.index = make(map[int]int, len(m.Keys))
	for v, k := range m.Keys {
		m.index[k] = v
	}
}
