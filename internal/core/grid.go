package core

import "github.com/oechslein/AdventOfCode2024/pkg/grid"

// Buffers is a pair of equally sized grids for simulations that compute the
// next generation from the current one.
type Buffers struct {
	cur, nxt *grid.Grid[uint8]
}

// NewBuffers allocates both generations. Non-positive dimensions are clamped
// to one cell.
func NewBuffers(w, h int, opts grid.Options) *Buffers {
	w, h = max(w, 1), max(h, 1)
	// grid.New only fails for non-positive dimensions.
	cur, _ := grid.New[uint8](w, h, opts)
	nxt, _ := grid.New[uint8](w, h, opts)
	return &Buffers{cur: cur, nxt: nxt}
}

// Cur is the generation being displayed.
func (b *Buffers) Cur() *grid.Grid[uint8] { return b.cur }

// Next is the generation being computed.
func (b *Buffers) Next() *grid.Grid[uint8] { return b.nxt }

// Size returns the grid dimensions.
func (b *Buffers) Size() Size { return Size{W: b.cur.Width(), H: b.cur.Height()} }

// Swap makes the computed generation current.
func (b *Buffers) Swap() { b.cur, b.nxt = b.nxt, b.cur }

// Clear fills the current generation with zeros.
func (b *Buffers) Clear() { b.cur.Fill(0) }

// CountNeighbors returns how many neighbours of (x, y) in the current
// generation hold state.
func (b *Buffers) CountNeighbors(x, y int, state uint8) int {
	n := 0
	for _, v := range b.cur.Neighbors(x, y) {
		if v == state {
			n++
		}
	}
	return n
}
