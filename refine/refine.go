// Package refine subdivides meshes and carries cell fields across.
//
// Refinement records, for every fine cell, the coarse cell it came from.
// Piecewise-constant fields transfer exactly along that map: a child takes
// its parent's value with no interpolation.
package refine

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphmesh/mesh"
)

// ErrRefinementMap reports a parent-cell map that does not fit the fields
// or meshes it is applied to.
var ErrRefinementMap = errors.New("refine: bad parent cell map")

// Prolong transfers coarse onto a refined mesh of refinedCells cells:
// fine[r] = coarse[parent[r]].
//
// Errors: ErrRefinementMap when len(parent) != refinedCells, a parent
// index is outside coarse, or a coarse cell has no child.
// Complexity: O(len(parent) + len(coarse)).
func Prolong[T mesh.Scalar](coarse mesh.CellField[T], parent []int, refinedCells int) (mesh.CellField[T], error) {
	if len(parent) != refinedCells {
		return nil, errors.Wrapf(ErrRefinementMap, "map has %d entries for %d refined cells", len(parent), refinedCells)
	}

	covered := make([]bool, len(coarse))
	fine := make(mesh.CellField[T], refinedCells)
	for r, c := range parent {
		if c < 0 || c >= len(coarse) {
			return nil, errors.Wrapf(ErrRefinementMap, "cell %d has parent %d outside [0,%d)", r, c, len(coarse))
		}
		fine[r] = coarse[c]
		covered[c] = true
	}
	for c, ok := range covered {
		if !ok {
			return nil, errors.Wrapf(ErrRefinementMap, "coarse cell %d has no child", c)
		}
	}

	return fine, nil
}

// Uniform bisects every cell of m at its midpoint.
//
// The coarse vertices keep their indices and node keys; the midpoint of
// coarse cell c becomes vertex NumVertices()+c. Coarse cell (u,v) yields
// fine cells 2c = (u,mid) and 2c+1 = (mid,v), so orientation is kept.
// The returned map gives the coarse parent of each fine cell.
func Uniform(m *mesh.Mesh) (*mesh.Mesh, []int) {
	nv := m.NumVertices()
	coords := make([][3]float64, nv, nv+m.NumCells())
	copy(coords, m.Coords)
	cells := make([][2]int, 0, 2*m.NumCells())
	parent := make([]int, 0, 2*m.NumCells())
	for c, cell := range m.Cells {
		mid := len(coords)
		coords = append(coords, m.CellMidpoint(c))
		cells = append(cells, [2]int{cell[0], mid}, [2]int{mid, cell[1]})
		parent = append(parent, c, c)
	}

	// arrays are valid by construction
	fine, _ := mesh.New(coords, cells)
	_ = fine.SetKeys(m.Keys)

	klog.V(2).Infof("refine: %d -> %d cells", m.NumCells(), fine.NumCells())

	return fine, parent
}

// UniformN applies Uniform levels times and returns the composed map from
// the finest cells to the cells of m. levels <= 0 returns m itself and the
// identity map.
func UniformN(m *mesh.Mesh, levels int) (*mesh.Mesh, []int) {
	parent := make([]int, m.NumCells())
	for c := range parent {
		parent[c] = c
	}
	for i := 0; i < levels; i++ {
		var step []int
		m, step = Uniform(m)
		parent = Compose(parent, step)
	}

	return m, parent
}

// Compose chains two parent maps: inner maps the finest cells to a middle
// mesh and outer maps that mesh to the coarsest one.
func Compose(outer, inner []int) []int {
	out := make([]int, len(inner))
	for r, mid := range inner {
		out[r] = outer[mid]
	}

	return out
}
