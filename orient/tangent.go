package orient

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphmesh/branch"
	"github.com/katalvlaran/graphmesh/geom"
	"github.com/katalvlaran/graphmesh/mesh"
)

// CellTangents returns the unit tangent of every cell in its stored
// orientation, (x1-x0)/|x1-x0|.
func CellTangents(m *mesh.Mesh) [][3]float64 {
	out := make([][3]float64, m.NumCells())
	for c, cell := range m.Cells {
		out[c] = geom.Direction(m.Coords[cell[0]], m.Coords[cell[1]])
	}

	return out
}

// WalkTangents returns a tangent field that runs consistently along each
// branch of t, in the direction branch.WalkCells visits it. Single-cell
// branches keep their stored orientation; untagged cells keep theirs too.
//
// Errors: branch.ErrDegenerateBranch for a multi-cell color that is not a
// simple path or loop.
func WalkTangents(m *mesh.Mesh, t *branch.Tagging) ([][3]float64, error) {
	if len(t.Colors) != m.NumCells() {
		return nil, errors.Wrapf(mesh.ErrInvalidMesh, "tagging has %d entries for %d cells", len(t.Colors), m.NumCells())
	}
	out := CellTangents(m)

	size := make(map[int]int)
	for _, color := range t.Colors {
		size[color]++
	}
	for _, color := range t.Colors.Distinct() {
		if color == branch.Untagged || size[color] < 2 {
			continue
		}
		steps, err := branch.WalkCells(m, t.Colors, color)
		if err != nil {
			return nil, err
		}
		for _, s := range steps {
			if !s.Forward {
				out[s.Cell] = geom.Point(geom.Vec(out[s.Cell]).Mul(-1))
			}
		}
	}

	return out, nil
}
