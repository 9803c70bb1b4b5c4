package mesh

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphmesh/core"
)

// Build converts g into a mesh plus its radius and type cell fields.
//
// Vertex indices follow node insertion order and cell indices follow edge
// insertion order; cell c joins the vertices of edge c's endpoints in the
// order they were given to AddEdge. Isolated nodes become vertices without
// cells.
//
// Build is atomic: on ErrMalformedGraph nothing is returned.
// Complexity: O(V + E).
func Build(g *core.Graph) (*Mesh, CellField[float64], CellField[int], error) {
	if g == nil {
		return nil, nil, nil, errors.Wrap(ErrMalformedGraph, "nil graph")
	}
	nodes := g.Nodes()
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, nil, nil, errors.Wrapf(ErrMalformedGraph, "graph has %d nodes and no edges", len(nodes))
	}

	m := &Mesh{
		Coords: make([][3]float64, len(nodes)),
		Cells:  make([][2]int, len(edges)),
		Keys:   make([]int, len(nodes)),
	}
	for i, n := range nodes {
		m.Coords[i] = n.Pos
		m.Keys[i] = n.Key
	}
	m.reindex()

	radius := make(CellField[float64], len(edges))
	kind := make(CellField[int], len(edges))
	for c, e := range edges {
		u, ok := m.index[e.From]
		if !ok {
			return nil, nil, nil, errors.Wrapf(ErrMalformedGraph, "edge %d endpoint %d is not a node", e.ID, e.From)
		}
		v, ok := m.index[e.To]
		if !ok {
			return nil, nil, nil, errors.Wrapf(ErrMalformedGraph, "edge %d endpoint %d is not a node", e.ID, e.To)
		}
		m.Cells[c] = [2]int{u, v}
		radius[c] = e.Radius
		kind[c] = e.Type
	}

	klog.V(1).Infof("mesh: %d vertices, %d cells", m.NumVertices(), m.NumCells())

	return m, radius, kind, nil
}
