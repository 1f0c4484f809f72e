package grid

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Coord is a 2D integer coordinate. Arithmetic follows the native behaviour
// of T: unsigned coordinates wrap when stepping below zero.
type Coord[T constraints.Integer] struct {
	X, Y T
}

// Pos is the coordinate type used to index dense and sparse grids.
type Pos = Coord[int]

// NewCoord returns the coordinate (x, y). Any pair is legal.
func NewCoord[T constraints.Integer](x, y T) Coord[T] {
	return Coord[T]{X: x, Y: y}
}

// Add returns the component-wise sum a+b.
func (a Coord[T]) Add(b Coord[T]) Coord[T] {
	return Coord[T]{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns the component-wise difference a-b.
func (a Coord[T]) Sub(b Coord[T]) Coord[T] {
	return Coord[T]{X: a.X - b.X, Y: a.Y - b.Y}
}

// Step moves the coordinate one unit in direction d.
func (a Coord[T]) Step(d Direction) Coord[T] {
	delta := d.Delta()
	return Coord[T]{X: a.X + T(delta.X), Y: a.Y + T(delta.Y)}
}

// Min returns the component-wise minimum.
func (a Coord[T]) Min(b Coord[T]) Coord[T] {
	return Coord[T]{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (a Coord[T]) Max(b Coord[T]) Coord[T] {
	return Coord[T]{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}

// Tuple returns the components as a pair.
func (a Coord[T]) Tuple() (T, T) { return a.X, a.Y }

// Less reports whether a sorts before b in (x, y) lexicographic order.
func (a Coord[T]) Less(b Coord[T]) bool { return Compare(a, b) < 0 }

// Compare orders coordinates lexicographically on (x, y). It is suitable for
// slices.SortFunc.
func Compare[T constraints.Integer](a, b Coord[T]) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Abs returns |x| + |y|, the distance from the origin.
func (a Coord[T]) Abs() uint {
	return absInt64(toInt64(a.X)) + absInt64(toInt64(a.Y))
}

// ManhattanDistance returns |a.x-b.x| + |a.y-b.y|. Both coordinates are
// converted to int64 first; it panics if a component does not fit.
func (a Coord[T]) ManhattanDistance(b Coord[T]) uint {
	dx := toInt64(a.X) - toInt64(b.X)
	dy := toInt64(a.Y) - toInt64(b.Y)
	return absInt64(dx) + absInt64(dy)
}

// DirectionTo returns the compass direction from a towards b, classified
// only by the sign of each axis difference. It reports false when a == b.
func (a Coord[T]) DirectionTo(b Coord[T]) (Direction, bool) {
	switch dx, dy := cmp.Compare(b.X, a.X), cmp.Compare(b.Y, a.Y); {
	case dx == 0 && dy == 0:
		return North, false
	case dx == 0 && dy < 0:
		return North, true
	case dx == 0 && dy > 0:
		return South, true
	case dx < 0 && dy == 0:
		return West, true
	case dx > 0 && dy == 0:
		return East, true
	case dx < 0 && dy < 0:
		return NorthWest, true
	case dx < 0 && dy > 0:
		return SouthWest, true
	case dx > 0 && dy < 0:
		return NorthEast, true
	default:
		return SouthEast, true
	}
}

// String formats the coordinate as "(x,y)".
func (a Coord[T]) String() string {
	return fmt.Sprintf("(%d,%d)", a.X, a.Y)
}

func toInt64[T constraints.Integer](v T) int64 {
	i := int64(v)
	if (v < 0) != (i < 0) {
		panic(fmt.Sprintf("grid: coordinate component %d does not fit in int64", v))
	}
	return i
}

func absInt64(v int64) uint {
	if v < 0 {
		return uint(-v)
	}
	return uint(v)
}
