package grid

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// populate sets every cell to its index in Coords order.
func populate(t *testing.T, g *Grid[int]) {
	t.Helper()
	i := 0
	for p := range g.Coords() {
		g.Set(p.X, p.Y, i)
		i++
	}
	require.Equal(t, 0, g.MustGet(0, 0))
}

func newFixture(t *testing.T, opts Options) *Grid[int] {
	t.Helper()
	g, err := New[int](4, 5, opts)
	require.NoError(t, err)
	return g
}

func TestGridFixture(t *testing.T) {
	cases := []struct {
		opts           Options
		inner, corners int
	}{
		{Options{Bounded, Square}, 8, 3},
		{Options{Bounded, Orthogonal}, 4, 2},
		{Options{Torus, Square}, 8, 8},
		{Options{Torus, Orthogonal}, 4, 4},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s", tc.opts.Topology, tc.opts.Neighborhood), func(t *testing.T) {
			g := newFixture(t, tc.opts)

			_, ok := g.Get(10, 11)
			assert.False(t, ok)
			assert.Equal(t, 20, countSeq(g.Coords()))
			assert.Len(t, slices.Compact(slices.Collect(g.Coords())), 20)

			g.Set(3, 2, -42)
			assert.Equal(t, -42, g.MustGet(3, 2))

			*g.Ptr(2, 3) = 42
			var found int
			for p, v := range g.Cells() {
				if p == (Pos{2, 3}) {
					found = v
				}
			}
			assert.Equal(t, 42, found)

			assert.Equal(t, tc.inner, countSeq(g.NeighborCoords(1, 1)))
			for _, x := range []int{0, g.Width() - 1} {
				for _, y := range []int{0, g.Height() - 1} {
					assert.Equal(t, tc.corners, countSeq(g.NeighborCoords(x, y)), "corner (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestGridFlipTranspose(t *testing.T) {
	g := newFixture(t, Options{})
	populate(t, g)

	g.FlipHorizontal()
	assert.Equal(t, 15, g.MustGet(0, 0))

	g.FlipVertical()
	assert.Equal(t, 19, g.MustGet(0, 0))

	g.Transpose()
	require.Equal(t, 5, g.Width())
	require.Equal(t, 4, g.Height())
	assert.Equal(t, 19, g.MustGet(0, 0))
	assert.Equal(t, 15, g.MustGet(g.Width()-1, 0))

	populate(t, g)
	c := g.Clone()
	c.Transpose()
	c.Transpose()
	assert.True(t, Equal(c, g))

	t.Run("rotate cw", func(t *testing.T) {
		g := g.Clone()
		populate(t, g)
		g.RotateCW()
		assert.Equal(t, 3, g.MustGet(0, 0))
		assert.Equal(t, 16, g.MustGet(g.Width()-1, g.Height()-1))

		populate(t, g)
		c := g.Clone()
		for range 4 {
			c.RotateCW()
		}
		assert.True(t, Equal(c, g))
	})

	t.Run("rotate ccw", func(t *testing.T) {
		g := newFixture(t, Options{})
		populate(t, g)
		g.RotateCCW()
		assert.Equal(t, 15, g.MustGet(0, 0))
		assert.Equal(t, 4, g.MustGet(g.Width()-1, g.Height()-1))

		populate(t, g)
		c := g.Clone()
		for range 4 {
			c.RotateCCW()
		}
		assert.True(t, Equal(c, g))

		c.RotateCW()
		c.RotateCCW()
		c.RotateCCW()
		c.RotateCW()
		assert.True(t, Equal(c, g))
	})
}

func TestRotateMatchesText(t *testing.T) {
	g := MustParse("ab\ncd\nef\n", Options{})

	cw := g.Clone()
	cw.RotateCW()
	assert.Equal(t, "eca\nfdb\n", text(cw))

	ccw := g.Clone()
	ccw.RotateCCW()
	assert.Equal(t, "bdf\nace\n", text(ccw))

	tr := g.Clone()
	tr.Transpose()
	assert.Equal(t, "ace\nbdf\n", text(tr))
}

func TestNew(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := New[int](dims[0], dims[1], Options{})
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", dims[0], dims[1])
	}

	g, err := New[string](3, 2, Options{Topology: Torus})
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, Torus, g.Topology())
	assert.Equal(t, Square, g.Neighborhood())
	assert.Equal(t, "", g.MustGet(2, 1))
}

func TestFromSliceAndRows(t *testing.T) {
	_, err := FromSlice[int](3, nil, Options{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = FromSlice(4, []int{1, 2, 3, 4, 5, 6}, Options{})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	g, err := FromSlice(3, []int{1, 2, 3, 4, 5, 6}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.MustGet(2, 1))

	_, err = FromRows([][]int{{1, 2}, {3}}, Options{})
	assert.ErrorIs(t, err, ErrRagged)

	_, err = FromRows([][]int{}, Options{})
	assert.ErrorIs(t, err, ErrEmpty)

	r, err := FromRows([][]int{{1, 2, 3}, {4, 5, 6}}, Options{})
	require.NoError(t, err)
	assert.True(t, Equal(g, r))
	assert.Equal(t, []int{4, 5, 6}, r.Row(1))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slices.Collect(r.Values()))
}

func TestSetRows(t *testing.T) {
	g, err := New[int](2, 2, Options{})
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetRows([][]int{{1, 2}}), ErrInvalidDimensions)
	assert.ErrorIs(t, g.SetRows([][]int{{1, 2}, {3}}), ErrRagged)
	assert.Equal(t, 0, g.MustGet(0, 0), "failed SetRows must not write")

	require.NoError(t, g.SetRows([][]int{{1, 2}, {3, 4}}))
	assert.Equal(t, 3, g.MustGet(0, 1))
}

func TestGetSet(t *testing.T) {
	g, err := New[int](3, 3, Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, g.Set(1, 1, 7))
	assert.Equal(t, 7, g.Set(1, 1, 9))
	v, ok := g.Get(1, 1)
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = g.Get(-1, 0)
	assert.False(t, ok)
	assert.Nil(t, g.Ptr(3, 0))
	assert.Panics(t, func() { g.Set(3, 0, 1) })
	assert.Panics(t, func() { g.MustGet(0, -1) })
	assert.Panics(t, func() { g.IsEdge(5, 5) })

	c := g.Clone()
	c.Set(0, 0, 1)
	assert.Equal(t, 0, g.MustGet(0, 0))

	g.Fill(4)
	assert.Equal(t, 9, g.CountFunc(func(v int) bool { return v == 4 }))
}

func TestNeighbors(t *testing.T) {
	g := MustParse("ABC\nDEF\nGHI\n", Options{Neighborhood: Orthogonal})
	require.Equal(t, 'E', g.MustGet(1, 1))

	var got []rune
	for _, v := range g.Neighbors(1, 1) {
		got = append(got, v)
	}
	assert.Equal(t, []rune{'B', 'H', 'F', 'D'}, got)

	var dirs []Direction
	for n := range g.NeighborsWithDirs(0, 0) {
		dirs = append(dirs, n.Dir)
		assert.Equal(t, g.MustGet(n.Pos.X, n.Pos.Y), n.Value)
	}
	assert.Equal(t, []Direction{South, East}, dirs)

	p, ok := g.Find(func(r rune) bool { return r == 'H' })
	assert.True(t, ok)
	assert.Equal(t, Pos{1, 2}, p)
	_, ok = g.Find(func(r rune) bool { return r == 'Z' })
	assert.False(t, ok)

	assert.True(t, g.IsCorner(2, 2))
	assert.True(t, g.IsEdge(1, 0))
	assert.False(t, g.IsEdge(1, 1))
}

func TestNeighborsOffGridPanics(t *testing.T) {
	for _, top := range []Topology{Bounded, Torus} {
		g := MustParse("ABC\nDEF\nGHI\n", Options{Topology: top, Neighborhood: Orthogonal})
		for _, p := range []Pos{{-1, 0}, {5, 5}, {-2, 1}, {3, 0}} {
			assert.Panics(t, func() { g.Neighbors(p.X, p.Y) }, "%s Neighbors %v", top, p)
			assert.Panics(t, func() { g.NeighborCoords(p.X, p.Y) }, "%s NeighborCoords %v", top, p)
			assert.Panics(t, func() { g.NeighborsWithDirs(p.X, p.Y) }, "%s NeighborsWithDirs %v", top, p)
		}
		assert.NotPanics(t, func() { g.Neighbors(2, 2) })
	}
}

func TestNeighborhoodCounts(t *testing.T) {
	cases := []struct {
		opts Options
		at   Pos
		want int
	}{
		{Options{Torus, Square}, Pos{0, 0}, 8},
		{Options{Bounded, Square}, Pos{0, 0}, 3},
		{Options{Bounded, Square}, Pos{2, 2}, 8},
		{Options{Bounded, Square}, Pos{2, 0}, 5},
		{Options{Bounded, Orthogonal}, Pos{2, 0}, 3},
		{Options{Bounded, Diagonal}, Pos{0, 0}, 1},
		{Options{Torus, Diagonal}, Pos{0, 0}, 4},
	}
	for _, tc := range cases {
		g, err := New[bool](5, 5, tc.opts)
		require.NoError(t, err)
		assert.Equal(t, tc.want, countSeq(g.NeighborCoords(tc.at.X, tc.at.Y)), "%v at %v", tc.opts, tc.at)
	}
}

func TestNeighborsEarlyStop(t *testing.T) {
	g, err := New[int](3, 3, Options{})
	require.NoError(t, err)
	n := 0
	for range g.Neighbors(1, 1) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestCellsOrder(t *testing.T) {
	g, err := FromRows([][]int{{1, 2}, {3, 4}}, Options{})
	require.NoError(t, err)

	var got []int
	for _, v := range g.Cells() {
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{1, 3, 2, 4}, got); diff != "" {
		t.Fatalf("cells order mismatch (-want +got):\n%s", diff)
	}
}

func countSeq[V any](seq func(func(V) bool)) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func text(g *Grid[rune]) string {
	var b []rune
	for y := range g.Height() {
		b = append(b, g.Row(y)...)
		b = append(b, '\n')
	}
	return string(b)
}
