package grid

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// SparseGrid is an unbounded grid that stores only occupied cells, keyed by
// signed coordinates. It has a neighborhood but no topology: every
// coordinate has a full set of neighbours.
type SparseGrid[T any] struct {
	neighborhood Neighborhood
	cells        map[Pos]T
}

// NewSparse returns an empty sparse grid.
func NewSparse[T any](n Neighborhood) *SparseGrid[T] {
	return &SparseGrid[T]{neighborhood: n, cells: make(map[Pos]T)}
}

// SparseFromSlice stores data row by row with the given width, starting at
// the origin.
func SparseFromSlice[T any](width int, data []T, n Neighborhood) (*SparseGrid[T], error) {
	if width <= 0 || len(data)%width != 0 {
		return nil, fmt.Errorf("%d cells with width %d: %w", len(data), width, ErrInvalidDimensions)
	}
	s := NewSparse[T](n)
	for i, v := range data {
		s.cells[Pos{i % width, i / width}] = v
	}
	return s, nil
}

// ParseSparse reads text like Parse and keeps the cells for which keep
// returns true.
func ParseSparse(input string, n Neighborhood, keep func(rune) bool) (*SparseGrid[rune], error) {
	g, err := Parse(input, Options{Neighborhood: n})
	if err != nil {
		return nil, err
	}
	s := NewSparse[rune](n)
	for p, r := range g.Cells() {
		if keep(r) {
			s.cells[p] = r
		}
	}
	return s, nil
}

func (s *SparseGrid[T]) Neighborhood() Neighborhood { return s.neighborhood }

// Len returns the number of occupied cells.
func (s *SparseGrid[T]) Len() int { return len(s.cells) }

// Get returns the cell at p and whether it is occupied.
func (s *SparseGrid[T]) Get(p Pos) (T, bool) {
	v, ok := s.cells[p]
	return v, ok
}

// Update replaces the cell at p with fn applied to it, if p is occupied, and
// reports whether it was.
func (s *SparseGrid[T]) Update(p Pos, fn func(T) T) bool {
	v, ok := s.cells[p]
	if !ok {
		return false
	}
	s.cells[p] = fn(v)
	return true
}

// Set stores v at p and returns the previous value, if any.
func (s *SparseGrid[T]) Set(p Pos, v T) (T, bool) {
	old, ok := s.cells[p]
	s.cells[p] = v
	return old, ok
}

// Remove clears p and returns the value it held, if any.
func (s *SparseGrid[T]) Remove(p Pos) (T, bool) {
	old, ok := s.cells[p]
	delete(s.cells, p)
	return old, ok
}

// Bounds returns the smallest box containing every occupied cell. It reports
// false for an empty grid.
func (s *SparseGrid[T]) Bounds() (lo, hi Pos, ok bool) {
	for p := range s.cells {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo, hi = lo.Min(p), hi.Max(p)
	}
	return lo, hi, ok
}

// Coords yields the occupied coordinates in (x, y) order.
func (s *SparseGrid[T]) Coords() iter.Seq[Pos] {
	return slices.Values(slices.SortedFunc(maps.Keys(s.cells), Compare[int]))
}

// Cells yields the occupied cells in (x, y) order.
func (s *SparseGrid[T]) Cells() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for p := range s.Coords() {
			if !yield(p, s.cells[p]) {
				return
			}
		}
	}
}

// NeighborCoords yields every coordinate in the neighborhood of p, occupied
// or not.
func (s *SparseGrid[T]) NeighborCoords(p Pos) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for d := range AdjacentDirections(s.neighborhood) {
			if !yield(p.Add(d.Delta())) {
				return
			}
		}
	}
}

// Neighbors yields the occupied cells in the neighborhood of p.
func (s *SparseGrid[T]) Neighbors(p Pos) iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for n := range s.NeighborCoords(p) {
			v, ok := s.cells[n]
			if !ok {
				continue
			}
			if !yield(n, v) {
				return
			}
		}
	}
}

// Dense copies the bounding box of the sparse grid into a dense grid, with
// empty cells set to fill. The box is translated so its minimum corner is
// the origin; the offset is returned alongside the grid.
func (s *SparseGrid[T]) Dense(fill T, opts Options) (*Grid[T], Pos, error) {
	lo, hi, ok := s.Bounds()
	if !ok {
		return nil, Pos{}, ErrEmpty
	}
	size := hi.Sub(lo)
	g, err := New[T](size.X+1, size.Y+1, opts)
	if err != nil {
		return nil, Pos{}, err
	}
	g.Fill(fill)
	for p, v := range s.cells {
		q := p.Sub(lo)
		g.data[q.Y*g.width+q.X] = v
	}
	return g, lo, nil
}
