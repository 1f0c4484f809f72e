package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Topology decides what lies beyond the edge of a grid.
type Topology uint8

const (
	// Bounded grids have no wrap-around; edge cells have fewer neighbours.
	Bounded Topology = iota
	// Torus grids wrap on both axes, like Pacman.
	Torus
)

func (t Topology) String() string {
	switch t {
	case Bounded:
		return "bounded"
	case Torus:
		return "torus"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	switch s {
	case "bounded":
		*t = Bounded
	case "torus", "toroidal", "wrap":
		*t = Torus
	default:
		return fmt.Errorf("grid: unknown topology %q", s)
	}
	return nil
}

// Adjacent returns the cell next to c in direction d on a width×height grid.
//
// Diagonal moves are taken as a vertical step followed by a horizontal one;
// if the vertical step leaves a bounded grid the whole move fails, as does
// any move from a cell outside a bounded grid. On a torus the move always
// succeeds and c is first reduced into the grid, so the result is always a
// valid cell. Non-positive dimensions have no cells.
func Adjacent(t Topology, width, height int, c Pos, d Direction) (Pos, bool) {
	if width <= 0 || height <= 0 {
		return c, false
	}
	switch d {
	case NorthEast:
		return adjacent2(t, width, height, c, North, East)
	case NorthWest:
		return adjacent2(t, width, height, c, North, West)
	case SouthEast:
		return adjacent2(t, width, height, c, South, East)
	case SouthWest:
		return adjacent2(t, width, height, c, South, West)
	}

	x, y := c.X, c.Y
	if t == Torus {
		x, y = wrap(x, width), wrap(y, height)
		switch d {
		case North:
			return Pos{x, wrap(y-1, height)}, true
		case South:
			return Pos{x, wrap(y+1, height)}, true
		case East:
			return Pos{wrap(x+1, width), y}, true
		case West:
			return Pos{wrap(x-1, width), y}, true
		}
		return c, false
	}

	if x < 0 || x >= width || y < 0 || y >= height {
		return c, false
	}
	switch d {
	case North:
		if y > 0 {
			return Pos{x, y - 1}, true
		}
	case South:
		if y+1 < height {
			return Pos{x, y + 1}, true
		}
	case East:
		if x+1 < width {
			return Pos{x + 1, y}, true
		}
	case West:
		if x > 0 {
			return Pos{x - 1, y}, true
		}
	}
	return c, false
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func adjacent2(t Topology, width, height int, c Pos, vertical, horizontal Direction) (Pos, bool) {
	next, ok := Adjacent(t, width, height, c, vertical)
	if !ok {
		return c, false
	}
	return Adjacent(t, width, height, next, horizontal)
}

// IsEdge reports whether c lies on the border of a bounded grid. A torus has
// no edges.
func IsEdge(t Topology, width, height int, c Pos) bool {
	return t == Bounded && (c.X == 0 || c.X+1 == width || c.Y == 0 || c.Y+1 == height)
}

// IsCorner reports whether c is one of the four corners of a bounded grid.
func IsCorner(t Topology, width, height int, c Pos) bool {
	return t == Bounded && (c.X == 0 || c.X+1 == width) && (c.Y == 0 || c.Y+1 == height)
}

// AllCoords yields every coordinate of a width×height grid, x in the outer
// loop and y in the inner loop.
func AllCoords(width, height int) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				if !yield(Pos{x, y}) {
					return
				}
			}
		}
	}
}

// NeighborhoodCoords yields the coordinates adjacent to c for every
// direction of n, skipping moves that leave a bounded grid.
func NeighborhoodCoords(t Topology, width, height int, c Pos, n Neighborhood) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for p := range NeighborhoodCoordsAndDirs(t, width, height, c, n) {
			if !yield(p) {
				return
			}
		}
	}
}

// NeighborhoodCoordsAndDirs is NeighborhoodCoords that also yields the
// direction each neighbour was reached by.
func NeighborhoodCoordsAndDirs(t Topology, width, height int, c Pos, n Neighborhood) iter.Seq2[Pos, Direction] {
	return func(yield func(Pos, Direction) bool) {
		for _, d := range neighborhoodDirections(n) {
			p, ok := Adjacent(t, width, height, c, d)
			if !ok {
				continue
			}
			if !yield(p, d) {
				return
			}
		}
	}
}
