package life

import (
	"github.com/oechslein/AdventOfCode2024/internal/core"
	pcore "github.com/oechslein/AdventOfCode2024/pkg/core"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

const (
	dead  = 0
	alive = 1
)

// Life implements Conway's Game of Life on any topology and neighborhood.
type Life struct {
	cfg Config
	buf *core.Buffers
}

// New returns a Life simulation with the provided configuration.
func New(cfg Config) *Life {
	return &Life{cfg: cfg, buf: core.NewBuffers(cfg.Width, cfg.Height, cfg.Options)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.buf.Size() }

// Cells exposes the current generation.
func (l *Life) Cells() *grid.Grid[uint8] { return l.buf.Cur() }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Parameters lists the tunables the simulation was built with.
func (l *Life) Parameters() []core.Parameter { return l.cfg.Parameters() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := pcore.NewRNG(seed)
	if l.cfg.Density == 2 {
		rng.FillBinary(l.buf.Cur())
		return
	}
	pcore.FillFunc(l.buf.Cur(), func(grid.Pos) uint8 {
		if rng.Chance(l.cfg.Density) {
			return alive
		}
		return dead
	})
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	cur, nxt := l.buf.Cur(), l.buf.Next()
	for p, v := range cur.Cells() {
		n := l.buf.CountNeighbors(p.X, p.Y, alive)
		state := uint8(dead)
		if (v == alive && (n == 2 || n == 3)) || (v == dead && n == 3) {
			state = alive
		}
		nxt.Set(p.X, p.Y, state)
	}
	l.buf.Swap()
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	return l.buf.Cur().CountFunc(func(v uint8) bool { return v == alive })
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
