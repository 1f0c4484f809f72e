package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Direction is one of the eight compass directions. The ordinal order is
// clockwise starting at North, so rotating by 45° is adding one modulo 8.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

const directionCount = 8

var directionNames = [directionCount]string{
	"north", "northeast", "east", "southeast",
	"south", "southwest", "west", "northwest",
}

// Unit displacement per direction, y grows downward.
var directionDeltas = [directionCount]Pos{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Rotate returns d rotated clockwise by degrees (negative rotates
// counter-clockwise). It panics unless degrees is a multiple of 45.
func (d Direction) Rotate(degrees int) Direction {
	if degrees%45 != 0 {
		panic(fmt.Sprintf("grid: rotation by %d degrees is not a multiple of 45", degrees))
	}
	return d.RotateSteps(degrees / 45)
}

// RotateSteps rotates d clockwise by steps*45°.
func (d Direction) RotateSteps(steps int) Direction {
	n := (int(d) + steps) % directionCount
	if n < 0 {
		n += directionCount
	}
	return Direction(n)
}

// Opposite returns the direction rotated by 180°.
func (d Direction) Opposite() Direction { return d.RotateSteps(4) }

// IsDiagonal reports whether d is one of the four composite directions.
func (d Direction) IsDiagonal() bool { return d%2 == 1 }

// Delta returns the unit displacement of d, e.g. North is (0,-1).
func (d Direction) Delta() Pos {
	return directionDeltas[d%directionCount]
}

func (d Direction) String() string {
	if d >= directionCount {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection accepts a direction name ("north", "SouthEast") or its
// abbreviation ("n", "se"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if s == name || s == abbreviate(name) {
			return Direction(i), nil
		}
	}
	return North, fmt.Errorf("grid: unknown direction %q", s)
}

func abbreviate(name string) string {
	var b strings.Builder
	for _, part := range []string{"north", "south", "east", "west"} {
		if strings.HasPrefix(name, part) {
			b.WriteByte(part[0])
			name = strings.TrimPrefix(name, part)
		}
	}
	return b.String()
}

// Neighborhood selects which directions count as adjacent. A neighborhood
// never includes the cell itself.
type Neighborhood uint8

const (
	// Square is all eight surrounding cells (Moore neighborhood).
	Square Neighborhood = iota
	// Orthogonal is the cells directly north, south, east and west.
	Orthogonal
	// Diagonal is the four diagonal cells.
	Diagonal
)

var neighborhoodNames = [...]string{"square", "orthogonal", "diagonal"}

var (
	orthogonalDirections = []Direction{North, South, East, West}
	diagonalDirections   = []Direction{NorthWest, NorthEast, SouthEast, SouthWest}
	squareDirections     = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
)

func neighborhoodDirections(n Neighborhood) []Direction {
	switch n {
	case Orthogonal:
		return orthogonalDirections
	case Diagonal:
		return diagonalDirections
	default:
		return squareDirections
	}
}

// AdjacentDirections yields the directions of n in a fixed order:
// Orthogonal N,S,E,W; Diagonal NW,NE,SE,SW; Square clockwise from N.
func AdjacentDirections(n Neighborhood) iter.Seq[Direction] {
	dirs := neighborhoodDirections(n)
	return func(yield func(Direction) bool) {
		for _, d := range dirs {
			if !yield(d) {
				return
			}
		}
	}
}

// Directions returns a copy of the direction list of n, in the order of
// AdjacentDirections.
func Directions(n Neighborhood) []Direction {
	return append([]Direction(nil), neighborhoodDirections(n)...)
}

func (n Neighborhood) String() string {
	if int(n) >= len(neighborhoodNames) {
		return fmt.Sprintf("Neighborhood(%d)", uint8(n))
	}
	return neighborhoodNames[n]
}

// MarshalText implements encoding.TextMarshaler.
func (n Neighborhood) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Neighborhood) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	switch s {
	case "square", "moore":
		*n = Square
	case "orthogonal", "vonneumann", "von-neumann":
		*n = Orthogonal
	case "diagonal":
		*n = Diagonal
	default:
		return fmt.Errorf("grid: unknown neighborhood %q", s)
	}
	return nil
}
