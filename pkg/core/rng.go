package core

import (
	"math/rand/v2"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance returns true with probability 1/n.
func (r *RNG) Chance(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// Direction returns a uniformly random compass direction.
func (r *RNG) Direction() grid.Direction {
	return grid.Direction(r.r.IntN(8))
}

// FillBinary sets every cell of g to 0 or 1.
func (r *RNG) FillBinary(g *grid.Grid[uint8]) {
	for p := range g.Coords() {
		g.Set(p.X, p.Y, r.Uint8n(2))
	}
}

// FillFunc sets every cell of g from fn, visiting cells in Coords order.
func FillFunc[T any](g *grid.Grid[T], fn func(grid.Pos) T) {
	for p := range g.Coords() {
		g.Set(p.X, p.Y, fn(p))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
