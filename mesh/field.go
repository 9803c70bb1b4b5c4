package mesh

import "sort"

// Scalar is the value type of a cell field.
type Scalar interface {
	~int | ~float64
}

// CellField is a piecewise-constant field: one value per mesh cell.
// Its values are constant on each cell by construction, which is what
// makes exact transfer between nested meshes possible.
type CellField[T Scalar] []T

// NewCellField returns a field over m filled with value.
func NewCellField[T Scalar](m *Mesh, value T) CellField[T] {
	f := make(CellField[T], m.NumCells())
	for i := range f {
		f[i] = value
	}

	return f
}

// Clone returns an independent copy of f.
func (f CellField[T]) Clone() CellField[T] {
	return append(CellField[T](nil), f...)
}

// Restrict returns the values of f on the given cells, in order.
func (f CellField[T]) Restrict(cells []int) CellField[T] {
	out := make(CellField[T], len(cells))
	for i, c := range cells {
		out[i] = f[c]
	}

	return out
}

// Distinct returns the distinct values of f in ascending order.
func (f CellField[T]) Distinct() []T {
	seen := make(map[T]struct{}, len(f))
	var out []T
	for _, v := range f {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
