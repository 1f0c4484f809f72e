package pathfind

import (
	"errors"
	"fmt"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// ErrNotAdjacent is returned by Directions when consecutive path points are
// not one king's move apart.
var ErrNotAdjacent = errors.New("pathfind: path points are not adjacent")

// Directions converts a path of adjacent points into the moves between them.
// A torus wrap is not recognised as a single step.
func Directions(path []grid.Pos) ([]grid.Direction, error) {
	if len(path) < 2 {
		return nil, nil
	}
	dirs := make([]grid.Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		d, ok := a.DirectionTo(b)
		if !ok || a.Step(d) != b {
			return nil, fmt.Errorf("step %d %v -> %v: %w", i, a, b, ErrNotAdjacent)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
