// Package pathfind searches grids built with package grid.
package pathfind

import (
	"slices"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// DistanceField holds breadth-first step counts from a start cell.
type DistanceField struct {
	start grid.Pos
	width int
	dist  []int
	prev  []int
}

// Distances runs a breadth-first search from start over the cells for which
// passable returns true, using the grid's own neighborhood and topology. The
// start cell is always reachable.
func Distances[T any](g *grid.Grid[T], start grid.Pos, passable func(T) bool) *DistanceField {
	f := &DistanceField{
		start: start,
		width: g.Width(),
		dist:  make([]int, g.Len()),
		prev:  make([]int, g.Len()),
	}
	for i := range f.dist {
		f.dist[i] = -1
		f.prev[i] = -1
	}
	if !g.InBounds(start.X, start.Y) {
		return f
	}

	queue := []grid.Pos{start}
	f.dist[f.index(start)] = 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		ci := f.index(cur)
		for p, v := range g.Neighbors(cur.X, cur.Y) {
			ni := f.index(p)
			if f.dist[ni] >= 0 || !passable(v) {
				continue
			}
			f.dist[ni] = f.dist[ci] + 1
			f.prev[ni] = ci
			queue = append(queue, p)
		}
	}
	return f
}

func (f *DistanceField) index(p grid.Pos) int { return p.Y*f.width + p.X }

func (f *DistanceField) pos(i int) grid.Pos { return grid.Pos{X: i % f.width, Y: i / f.width} }

func (f *DistanceField) inside(p grid.Pos) bool {
	return p.X >= 0 && p.X < f.width && p.Y >= 0 && f.index(p) < len(f.dist)
}

// Distance returns the number of steps from the start to p.
func (f *DistanceField) Distance(p grid.Pos) (int, bool) {
	if !f.inside(p) || f.dist[f.index(p)] < 0 {
		return 0, false
	}
	return f.dist[f.index(p)], true
}

// Reachable returns the number of cells reachable from the start, the start
// included.
func (f *DistanceField) Reachable() int {
	n := 0
	for _, d := range f.dist {
		if d >= 0 {
			n++
		}
	}
	return n
}

// PathTo returns a shortest path from the start to p, both ends included.
func (f *DistanceField) PathTo(p grid.Pos) ([]grid.Pos, bool) {
	if _, ok := f.Distance(p); !ok {
		return nil, false
	}
	path := []grid.Pos{p}
	for i := f.prev[f.index(p)]; i >= 0; i = f.prev[i] {
		path = append(path, f.pos(i))
	}
	slices.Reverse(path)
	return path, true
}

// ShortestPath returns a shortest path from start to goal over passable
// cells, both ends included.
func ShortestPath[T any](g *grid.Grid[T], start, goal grid.Pos, passable func(T) bool) ([]grid.Pos, bool) {
	return Distances(g, start, passable).PathTo(goal)
}
