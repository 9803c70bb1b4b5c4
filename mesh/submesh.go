package mesh

import (
	"github.com/pkg/errors"
)

// Submesh is the part of a parent mesh carrying one tag.
type Submesh struct {
	*Mesh
	// ParentCells maps each submesh cell to its parent cell.
	ParentCells []int
	// ParentVertices maps each submesh vertex to its parent vertex.
	ParentVertices []int
}

// Submesh extracts the cells of m whose tag equals tag. Cells keep their
// relative order and orientation; vertices are numbered in order of first
// use. Node keys are carried over for vertices that have one.
//
// Errors: ErrInvalidMesh if len(tags) != m.NumCells() or no cell carries tag.
func (m *Mesh) Submesh(tags []int, tag int) (*Submesh, error) {
	if len(tags) != m.NumCells() {
		return nil, errors.Wrapf(ErrInvalidMesh, "tags has %d entries for %d cells", len(tags), m.NumCells())
	}

	local := make(map[int]int)
	s := &Submesh{Mesh: &Mesh{}}
	keyed := len(m.Keys)
	for c, t := range tags {
		if t != tag {
			continue
		}
		var cell [2]int
		for i, v := range m.Cells[c] {
			lv, ok := local[v]
			if !ok {
				lv = len(s.Coords)
				local[v] = lv
				s.Coords = append(s.Coords, m.Coords[v])
				s.ParentVertices = append(s.ParentVertices, v)
			}
			cell[i] = lv
		}
		s.Cells = append(s.Cells, cell)
		s.ParentCells = append(s.ParentCells, c)
	}
	if len(s.Cells) == 0 {
		return nil, errors.Wrapf(ErrInvalidMesh, "no cell tagged %d", tag)
	}

	// Keys covers the longest prefix of vertices that have a node key
	for _, pv := range s.ParentVertices {
		if pv >= keyed {
			break
		}
		s.Keys = append(s.Keys, m.Keys[pv])
	}
	s.reindex()

	return s, nil
}
