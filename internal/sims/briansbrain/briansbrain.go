package briansbrain

import (
	"strconv"

	"github.com/oechslein/AdventOfCode2024/internal/core"
	pcore "github.com/oechslein/AdventOfCode2024/pkg/core"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Width   int
	Height  int
	Options grid.Options
	// Spark is the inverse probability of a cell starting in the firing state.
	Spark int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Options: grid.Options{Topology: grid.Torus}, Spark: 8}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	core.ParseGridParams(cfg, &c.Width, &c.Height, &c.Options)
	if v, ok := cfg["spark"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Spark = parsed
		}
	}
	return c
}

// Parameters lists the tunables of c.
func (c Config) Parameters() []core.Parameter {
	return append(core.GridParameters(c.Width, c.Height, c.Options), core.Parameter{
		Key:         "spark",
		Type:        core.ParamTypeInt,
		Value:       strconv.Itoa(c.Spark),
		Description: "one cell in N starts firing",
	})
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cfg Config
	buf *core.Buffers
}

// New creates a Brain simulation.
func New(cfg Config) *Brain {
	return &Brain{cfg: cfg, buf: core.NewBuffers(cfg.Width, cfg.Height, cfg.Options)}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return b.buf.Size() }

// Cells exposes the current state buffer.
func (b *Brain) Cells() *grid.Grid[uint8] { return b.buf.Cur() }

// Parameters lists the tunables the simulation was built with.
func (b *Brain) Parameters() []core.Parameter { return b.cfg.Parameters() }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := pcore.NewRNG(seed)
	pcore.FillFunc(b.buf.Cur(), func(grid.Pos) uint8 {
		if rng.Chance(b.cfg.Spark) {
			return stateOn
		}
		return stateDead
	})
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	cur, nxt := b.buf.Cur(), b.buf.Next()
	for p, v := range cur.Cells() {
		next := uint8(stateDead)
		switch v {
		case stateOn:
			next = stateDying
		case stateDying:
			next = stateDead
		default:
			if b.buf.CountNeighbors(p.X, p.Y, stateOn) == 2 {
				next = stateOn
			}
		}
		nxt.Set(p.X, p.Y, next)
	}
	b.buf.Swap()
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
