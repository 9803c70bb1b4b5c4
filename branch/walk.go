package branch

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphmesh/mesh"
)

// restriction is the tagged part of a mesh: the tagged cells in ascending
// order and an ordered vertex → tagged incident cells map.
type restriction struct {
	m     *mesh.Mesh
	cells []int
	adj   *treemap.Map // int → []int
}

// restrict collects the cells carrying color. A nil colors slice selects
// every cell of m.
func restrict(m *mesh.Mesh, colors []int, color int) (*restriction, error) {
	if colors != nil && len(colors) != m.NumCells() {
		return nil, errors.Wrapf(ErrDegenerateBranch, "tagging has %d entries for %d cells", len(colors), m.NumCells())
	}
	r := &restriction{m: m, adj: treemap.NewWithIntComparator()}
	for c, cell := range m.Cells {
		if colors != nil && colors[c] != color {
			continue
		}
		r.cells = append(r.cells, c)
		for _, v := range cell {
			var inc []int
			if got, ok := r.adj.Get(v); ok {
				inc = got.([]int)
			}
			r.adj.Put(v, append(inc, c))
		}
	}

	return r, nil
}

func (r *restriction) incident(v int) []int {
	got, ok := r.adj.Get(v)
	if !ok {
		return nil
	}

	return got.([]int)
}

// nextVertex returns the vertex of cell c that is not v.
func (r *restriction) nextVertex(c, v int) int {
	cell := r.m.Cells[c]
	if cell[0] == v {
		return cell[1]
	}

	return cell[0]
}

// nextCell returns the tagged cell at v that is not c.
func (r *restriction) nextCell(v, c int) (int, error) {
	inc := r.incident(v)
	if len(inc) != 2 {
		return 0, errors.Wrapf(ErrDegenerateBranch, "vertex %d has %d tagged cells mid-walk", v, len(inc))
	}
	if inc[0] == c {
		return inc[1], nil
	}

	return inc[0], nil
}

// shape classifies the restriction.
func (r *restriction) shape(color int) (Shape, error) {
	if len(r.cells) < 2 {
		return nil, errors.Wrapf(ErrDegenerateBranch, "color %d has %d cells", color, len(r.cells))
	}

	var ends []int
	it := r.adj.Iterator()
	for it.Next() {
		switch n := len(it.Value().([]int)); {
		case n == 1:
			ends = append(ends, it.Key().(int))
		case n >= 3:
			return nil, errors.Wrapf(ErrDegenerateBranch, "color %d: vertex %d has %d cells", color, it.Key().(int), n)
		}
	}

	switch len(ends) {
	case 0:
		return Loop{Start: r.m.Cells[r.cells[0]][0]}, nil
	case 2:
		return Path{Start: ends[0], End: ends[1]}, nil
	}

	return nil, errors.Wrapf(ErrDegenerateBranch, "color %d has %d open ends", color, len(ends))
}

// Classify decides whether the cells tagged color form a Loop (every
// tagged vertex has two tagged cells) or a Path (exactly two vertices have
// one). A Loop starts at the first vertex of the lowest tagged cell; a Path
// starts at its lower end vertex. A nil colors slice classifies all of m.
func Classify(m *mesh.Mesh, colors []int, color int) (Shape, error) {
	r, err := restrict(m, colors, color)
	if err != nil {
		return nil, err
	}

	return r.shape(color)
}

// WalkCells visits the cells tagged color in linked order and reports for
// each whether its stored orientation agrees with the walk. Every tagged
// cell appears exactly once. A nil colors slice walks the whole mesh.
//
// Errors: ErrDegenerateBranch, see Classify; also when the tagged cells
// are not one connected chain.
// Complexity: O(C log V).
func WalkCells(m *mesh.Mesh, colors []int, color int) ([]Step, error) {
	r, err := restrict(m, colors, color)
	if err != nil {
		return nil, err
	}
	s, err := r.shape(color)
	if err != nil {
		return nil, err
	}

	start, end := s.Ends()
	var link int
	if _, loop := s.(Loop); loop {
		link = r.cells[0]
	} else {
		link = r.incident(start)[0]
	}

	steps := make([]Step, 0, len(r.cells))
	steps = append(steps, Step{Cell: link, Forward: m.Cells[link][0] == start})

	v := start
	for {
		v = r.nextVertex(link, v)
		if v == end {
			break
		}
		if link, err = r.nextCell(v, link); err != nil {
			return nil, err
		}
		steps = append(steps, Step{Cell: link, Forward: m.Cells[link][0] == v})
		if len(steps) > len(r.cells) {
			return nil, errors.Wrapf(ErrDegenerateBranch, "color %d: walk exceeded %d cells", color, len(r.cells))
		}
	}
	if len(steps) != len(r.cells) {
		return nil, errors.Wrapf(ErrDegenerateBranch, "color %d: walk reached %d of %d cells", color, len(steps), len(r.cells))
	}

	return steps, nil
}

// Walk returns the vertices of the branch tagged color in walk order: L+1
// vertices for a path of L cells, L for a loop (the closing vertex equals
// the first and is not repeated).
func Walk(m *mesh.Mesh, colors []int, color int) ([]int, error) {
	steps, err := WalkCells(m, colors, color)
	if err != nil {
		return nil, err
	}

	first := m.Cells[steps[0].Cell]
	if !steps[0].Forward {
		first[0], first[1] = first[1], first[0]
	}
	out := make([]int, 0, len(steps)+1)
	out = append(out, first[0], first[1])
	for _, s := range steps[1:] {
		cell := m.Cells[s.Cell]
		if s.Forward {
			out = append(out, cell[1])
		} else {
			out = append(out, cell[0])
		}
	}
	if out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	return out, nil
}

// IsLoop reports whether the whole mesh is one closed chain.
func IsLoop(m *mesh.Mesh) bool {
	return m.IsLoop()
}
