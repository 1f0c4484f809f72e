package grid

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseGrid(t *testing.T) {
	s := NewSparse[int](Square)
	_, _, ok := s.Bounds()
	assert.False(t, ok)

	_, had := s.Set(Pos{-2, 3}, 1)
	assert.False(t, had)
	old, had := s.Set(Pos{-2, 3}, 5)
	assert.True(t, had)
	assert.Equal(t, 1, old)
	s.Set(Pos{4, -1}, 2)
	s.Set(Pos{0, 0}, 3)
	assert.Equal(t, 3, s.Len())

	v, ok := s.Get(Pos{0, 0})
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = s.Get(Pos{1, 1})
	assert.False(t, ok)

	assert.True(t, s.Update(Pos{0, 0}, func(v int) int { return v * 10 }))
	assert.False(t, s.Update(Pos{9, 9}, func(v int) int { return v }))
	v, _ = s.Get(Pos{0, 0})
	assert.Equal(t, 30, v)

	lo, hi, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, Pos{-2, -1}, lo)
	assert.Equal(t, Pos{4, 3}, hi)

	assert.Equal(t, []Pos{{-2, 3}, {0, 0}, {4, -1}}, slices.Collect(s.Coords()))

	old, had = s.Remove(Pos{4, -1})
	assert.True(t, had)
	assert.Equal(t, 2, old)
	_, had = s.Remove(Pos{4, -1})
	assert.False(t, had)
	assert.Equal(t, 2, s.Len())
}

func TestSparseNeighbors(t *testing.T) {
	s, err := ParseSparse("#..\n.#.\n..#\n", Diagonal, func(r rune) bool { return r == '#' })
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	assert.Len(t, slices.Collect(s.NeighborCoords(Pos{0, 0})), 4)
	assert.Contains(t, slices.Collect(s.NeighborCoords(Pos{0, 0})), Pos{-1, -1})

	var got []Pos
	for p := range s.Neighbors(Pos{1, 1}) {
		got = append(got, p)
	}
	assert.Equal(t, []Pos{{0, 0}, {2, 2}}, got)
}

func TestSparseDense(t *testing.T) {
	s, err := SparseFromSlice(2, []rune("ab"+"cd"), Orthogonal)
	require.NoError(t, err)
	s.Remove(Pos{0, 0})
	s.Set(Pos{-1, 1}, 'z')

	g, offset, err := s.Dense('.', Options{Neighborhood: Orthogonal})
	require.NoError(t, err)
	assert.Equal(t, Pos{-1, 0}, offset)
	assert.Equal(t, "..b\nzcd\n", text(g))

	_, _, err = NewSparse[int](Square).Dense(0, Options{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = SparseFromSlice(3, []int{1, 2}, Square)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
