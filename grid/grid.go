package grid

import (
	"github.com/katalvlaran/nrange/axis"
	"github.com/katalvlaran/nrange/region"
)

// New builds a Grid over space with one value per cell, in enumeration order.
// It copies values to ensure immutability.
// Returns ErrEmptyGrid if space has no cells, ErrUnboundedGrid if an axis
// lacks an edge, ErrShape if len(values) differs from the cell count.
// Complexity: O(C + 3^N).
func New(space Space, values []int, opts Options) (*Grid, error) {
	if space.IsEmpty() {
		return nil, ErrEmptyGrid
	}
	for _, a := range space.Axes() {
		if a.StartBound().Kind == axis.Unbounded || a.EndBound().Kind == axis.Unbounded {
			return nil, ErrUnboundedGrid
		}
	}
	if len(values) != space.Len() {
		return nil, ErrShape
	}
	cells := make([]int, len(values))
	copy(cells, values)

	return &Grid{
		Space:         space,
		Values:        cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       Offsets(space.Dim(), opts.Conn),
	}, nil
}

// From2D builds a Grid from rows of a rectangular 2D slice, using
// DefaultOptions with the given connectivity. values[y][x] becomes the cell
// at point [x y], so x is axis 0.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]int, conn Connectivity) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	flat := make([]int, 0, w*h)
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}
	opts := DefaultOptions()
	opts.Conn = conn

	return New(region.Of(axis.New(0, w), axis.New(0, h)), flat, opts)
}

// Offsets lists the neighbour displacements of a cell in n dimensions,
// in enumeration order of the cube {-1,0,1}^n, excluding the zero offset.
// Complexity: O(3^n).
func Offsets(n int, conn Connectivity) [][]int {
	var out [][]int
	for d := range region.Repeat[int](axis.Inclusive(-1, 1), n).All() {
		moved := 0
		for _, c := range d {
			if c != 0 {
				moved++
			}
		}
		if moved == 0 || conn == ConnFaces && moved != 1 {
			continue
		}
		out = append(out, d)
	}

	return out
}

// InBounds reports whether p lies within the grid.
// Complexity: O(N).
func (g *Grid) InBounds(p []int) bool {
	return g.Space.Contains(p)
}

// Index maps a point to its cell index; false when p is outside the grid.
func (g *Grid) Index(p []int) (int, bool) {
	return g.Space.Index(p)
}

// Point converts a cell index back to its point.
func (g *Grid) Point(idx int) []int {
	p, _ := g.Space.At(idx)

	return p
}

// Value returns the value stored at p; false when p is outside the grid.
func (g *Grid) Value(p []int) (int, bool) {
	i, ok := g.Space.Index(p)
	if !ok {
		return 0, false
	}

	return g.Values[i], true
}

// NeighborOffsets returns the precomputed neighbour displacements.
func (g *Grid) NeighborOffsets() [][]int {
	return g.offsets
}

// isLand reports whether the cell at index i is land.
func (g *Grid) isLand(i int) bool {
	return g.Values[i] >= g.LandThreshold
}

// neighbors calls fn with the index of every in-bounds neighbour of cell u.
func (g *Grid) neighbors(u int, fn func(v int)) {
	p := g.Point(u)
	q := make([]int, len(p))
	for _, d := range g.offsets {
		for k := range p {
			q[k] = p[k] + d[k]
		}
		if v, ok := g.Space.Index(q); ok {
			fn(v)
		}
	}
}
