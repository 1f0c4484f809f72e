package grid

import (
	"fmt"
	"iter"
	"slices"
)

// Options configures the adjacency rules of a grid. The zero value is a
// Bounded grid with the Square neighborhood.
type Options struct {
	Topology     Topology     `yaml:"topology"`
	Neighborhood Neighborhood `yaml:"neighborhood"`
}

// Grid is a dense width×height grid of cells stored in row-major order.
type Grid[T any] struct {
	width, height int
	topology      Topology
	neighborhood  Neighborhood
	data          []T
}

// Neighbor is a neighbouring cell together with the direction it lies in.
type Neighbor[T any] struct {
	Pos   Pos
	Dir   Direction
	Value T
}

// New allocates a width×height grid of zero values.
func New[T any](width, height int, opts Options) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new %dx%d grid: %w", width, height, ErrInvalidDimensions)
	}
	return newGrid(width, height, opts, make([]T, width*height)), nil
}

// FromSlice builds a grid over data, interpreted row by row with the given
// width. The grid takes ownership of data.
func FromSlice[T any](width int, data []T, opts Options) (*Grid[T], error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if width <= 0 || len(data)%width != 0 {
		return nil, fmt.Errorf("%d cells with width %d: %w", len(data), width, ErrInvalidDimensions)
	}
	return newGrid(width, len(data)/width, opts, data), nil
}

// FromRows builds a grid from nested rows; rows[y][x] becomes cell (x, y).
func FromRows[T any](rows [][]T, opts Options) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	data := make([]T, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrRagged)
		}
		data = append(data, row...)
	}
	return newGrid(width, len(rows), opts, data), nil
}

func newGrid[T any](width, height int, opts Options, data []T) *Grid[T] {
	return &Grid[T]{
		width:        width,
		height:       height,
		topology:     opts.Topology,
		neighborhood: opts.Neighborhood,
		data:         data,
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

func (g *Grid[T]) Topology() Topology { return g.topology }

func (g *Grid[T]) Neighborhood() Neighborhood { return g.neighborhood }

// Options returns the adjacency configuration of the grid.
func (g *Grid[T]) Options() Options {
	return Options{Topology: g.topology, Neighborhood: g.neighborhood}
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid[T]) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns the cell at (x, y), or false if it lies outside the grid.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.data[y*g.width+x], true
}

// MustGet returns the cell at (x, y) for callers that already know the
// coordinate is valid. It panics otherwise.
func (g *Grid[T]) MustGet(x, y int) T {
	return g.data[g.index(x, y)]
}

// Ptr returns a pointer to the cell at (x, y), or nil outside the grid. The
// pointer is invalidated by transforms.
func (g *Grid[T]) Ptr(x, y int) *T {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.data[y*g.width+x]
}

// Set stores v at (x, y) and returns the previous value. It panics if the
// coordinate lies outside the grid.
func (g *Grid[T]) Set(x, y int, v T) T {
	i := g.index(x, y)
	old := g.data[i]
	g.data[i] = v
	return old
}

// SetRows overwrites every cell from nested rows of the grid's exact size.
func (g *Grid[T]) SetRows(rows [][]T) error {
	if len(rows) != g.height {
		return fmt.Errorf("%d rows for grid of height %d: %w", len(rows), g.height, ErrInvalidDimensions)
	}
	for y, row := range rows {
		if len(row) != g.width {
			return fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), g.width, ErrRagged)
		}
	}
	for y, row := range rows {
		copy(g.data[y*g.width:], row)
	}
	return nil
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid buffer. Cell values are copied
// shallowly.
func (g *Grid[T]) Clone() *Grid[T] {
	c := *g
	c.data = slices.Clone(g.data)
	return &c
}

// Equal reports whether a and b have the same dimensions, options and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.width == b.width &&
		a.height == b.height &&
		a.topology == b.topology &&
		a.neighborhood == b.neighborhood &&
		slices.Equal(a.data, b.data)
}

// IsEdge reports whether (x, y) is on the border of a bounded grid.
func (g *Grid[T]) IsEdge(x, y int) bool {
	g.index(x, y)
	return IsEdge(g.topology, g.width, g.height, Pos{x, y})
}

// IsCorner reports whether (x, y) is a corner of a bounded grid.
func (g *Grid[T]) IsCorner(x, y int) bool {
	g.index(x, y)
	return IsCorner(g.topology, g.width, g.height, Pos{x, y})
}

// AdjacentDirections yields the directions of the grid's neighborhood.
func (g *Grid[T]) AdjacentDirections() iter.Seq[Direction] {
	return AdjacentDirections(g.neighborhood)
}

// Adjacent returns the coordinate next to (x, y) in direction d under the
// grid's topology.
func (g *Grid[T]) Adjacent(x, y int, d Direction) (Pos, bool) {
	return Adjacent(g.topology, g.width, g.height, Pos{x, y}, d)
}

// Coords yields every coordinate, x in the outer loop and y in the inner.
func (g *Grid[T]) Coords() iter.Seq[Pos] {
	return AllCoords(g.width, g.height)
}

// Cells yields every coordinate with its value, in Coords order.
func (g *Grid[T]) Cells() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for p := range g.Coords() {
			if !yield(p, g.data[p.Y*g.width+p.X]) {
				return
			}
		}
	}
}

// Values yields the raw buffer in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return slices.Values(g.data)
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) []T {
	g.index(0, y)
	return slices.Clone(g.data[y*g.width : (y+1)*g.width])
}

// NeighborCoords yields the coordinates around (x, y) allowed by the grid's
// neighborhood and topology. Like the other neighbor iterators it panics
// when (x, y) lies outside the grid.
func (g *Grid[T]) NeighborCoords(x, y int) iter.Seq[Pos] {
	g.index(x, y)
	return NeighborhoodCoords(g.topology, g.width, g.height, Pos{x, y}, g.neighborhood)
}

// Neighbors yields the cells around (x, y) with their coordinates.
func (g *Grid[T]) Neighbors(x, y int) iter.Seq2[Pos, T] {
	g.index(x, y)
	return func(yield func(Pos, T) bool) {
		for p := range g.NeighborCoords(x, y) {
			if !yield(p, g.data[p.Y*g.width+p.X]) {
				return
			}
		}
	}
}

// NeighborsWithDirs yields the cells around (x, y) together with the
// direction each was reached by.
func (g *Grid[T]) NeighborsWithDirs(x, y int) iter.Seq[Neighbor[T]] {
	g.index(x, y)
	return func(yield func(Neighbor[T]) bool) {
		for p, d := range NeighborhoodCoordsAndDirs(g.topology, g.width, g.height, Pos{x, y}, g.neighborhood) {
			if !yield(Neighbor[T]{Pos: p, Dir: d, Value: g.data[p.Y*g.width+p.X]}) {
				return
			}
		}
	}
}

// Find returns the first coordinate, in Coords order, whose cell satisfies
// match.
func (g *Grid[T]) Find(match func(T) bool) (Pos, bool) {
	for p, v := range g.Cells() {
		if match(v) {
			return p, true
		}
	}
	return Pos{}, false
}

// CountFunc returns the number of cells satisfying match.
func (g *Grid[T]) CountFunc(match func(T) bool) int {
	n := 0
	for _, v := range g.data {
		if match(v) {
			n++
		}
	}
	return n
}
