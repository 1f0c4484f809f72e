package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

const maze = `#######
#S..#.#
#.#.#.#
#.#...#
#...#E#
#######
`

func open(r rune) bool { return r != '#' }

func TestDistances(t *testing.T) {
	g := grid.MustParse(maze, grid.Options{Neighborhood: grid.Orthogonal})
	start, _ := g.Find(func(r rune) bool { return r == 'S' })
	end, _ := g.Find(func(r rune) bool { return r == 'E' })

	f := Distances(g, start, open)
	d, ok := f.Distance(end)
	require.True(t, ok)
	assert.Equal(t, 7, d)
	assert.Equal(t, 15, f.Reachable())

	_, ok = f.Distance(grid.Pos{X: 0, Y: 0})
	assert.False(t, ok)
	_, ok = f.Distance(grid.Pos{X: 40, Y: 1})
	assert.False(t, ok)

	path, ok := ShortestPath(g, start, end, open)
	require.True(t, ok)
	assert.Len(t, path, 8)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])

	dirs, err := Directions(path)
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{
		grid.East, grid.East, grid.South, grid.South, grid.East, grid.East, grid.South,
	}, dirs)
}

func TestShortestPathBlocked(t *testing.T) {
	g := grid.MustParse("S#E\n.#.\n", grid.Options{Neighborhood: grid.Orthogonal})
	_, ok := ShortestPath(g, grid.Pos{X: 0, Y: 0}, grid.Pos{X: 2, Y: 0}, open)
	assert.False(t, ok)

	// A diagonal move does not check the cell it cuts across.
	g = grid.MustParse("S.\n#E\n", grid.Options{Neighborhood: grid.Square})
	path, ok := ShortestPath(g, grid.Pos{X: 0, Y: 0}, grid.Pos{X: 1, Y: 1}, open)
	require.True(t, ok)
	assert.Equal(t, []grid.Pos{{X: 0, Y: 0}, {X: 1, Y: 1}}, path)
}

func TestDistancesTorus(t *testing.T) {
	g := grid.MustParse(".....\n", grid.Options{Topology: grid.Torus, Neighborhood: grid.Orthogonal})
	f := Distances(g, grid.Pos{X: 0, Y: 0}, open)
	d, ok := f.Distance(grid.Pos{X: 4, Y: 0})
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

type reindeer struct {
	pos grid.Pos
	dir grid.Direction
}

func TestDijkstraWithHeading(t *testing.T) {
	g := grid.MustParse(maze, grid.Options{Neighborhood: grid.Orthogonal})
	start, _ := g.Find(func(r rune) bool { return r == 'S' })

	successors := func(s reindeer) []Edge[reindeer] {
		edges := []Edge[reindeer]{
			{To: reindeer{s.pos, s.dir.Rotate(90)}, Cost: 1000},
			{To: reindeer{s.pos, s.dir.Rotate(-90)}, Cost: 1000},
		}
		if next, ok := g.Adjacent(s.pos.X, s.pos.Y, s.dir); ok && g.MustGet(next.X, next.Y) != '#' {
			edges = append(edges, Edge[reindeer]{To: reindeer{next, s.dir}, Cost: 1})
		}
		return edges
	}
	goal := func(s reindeer) bool { return g.MustGet(s.pos.X, s.pos.Y) == 'E' }

	res, ok := Dijkstra(reindeer{start, grid.East}, successors, goal)
	require.True(t, ok)
	// Seven steps and three turns.
	assert.Equal(t, 3007, res.Cost)
	assert.Equal(t, start, res.Path[0].pos)

	_, ok = Dijkstra(reindeer{start, grid.East}, successors, func(reindeer) bool { return false })
	assert.False(t, ok)
}

func TestDijkstraPrefersCheaperDetour(t *testing.T) {
	edges := map[string][]Edge[string]{
		"a": {{To: "b", Cost: 10}, {To: "c", Cost: 1}},
		"c": {{To: "d", Cost: 1}},
		"d": {{To: "b", Cost: 1}},
	}
	res, ok := Dijkstra("a", func(s string) []Edge[string] { return edges[s] }, func(s string) bool { return s == "b" })
	require.True(t, ok)
	assert.Equal(t, 3, res.Cost)
	assert.Equal(t, []string{"a", "c", "d", "b"}, res.Path)

	res, ok = Dijkstra("a", func(s string) []Edge[string] { return edges[s] }, func(s string) bool { return s == "a" })
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestDirections(t *testing.T) {
	dirs, err := Directions([]grid.Pos{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 0}})
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{grid.East, grid.SouthEast, grid.North}, dirs)

	_, err = Directions([]grid.Pos{{X: 0, Y: 0}, {X: 2, Y: 0}})
	assert.ErrorIs(t, err, ErrNotAdjacent)
	_, err = Directions([]grid.Pos{{X: 1, Y: 1}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, ErrNotAdjacent)

	dirs, err = Directions([]grid.Pos{{X: 3, Y: 3}})
	assert.NoError(t, err)
	assert.Empty(t, dirs)
}
