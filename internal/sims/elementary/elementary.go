package elementary

import (
	"strconv"

	"github.com/oechslein/AdventOfCode2024/internal/core"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
	// Topology decides whether the generating row wraps at its ends.
	Topology grid.Topology
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110, Topology: grid.Torus}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	opts := grid.Options{Topology: c.Topology}
	core.ParseGridParams(cfg, &c.Width, &c.Height, &opts)
	c.Topology = opts.Topology
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Parameters lists the tunables of c.
func (c Config) Parameters() []core.Parameter {
	params := core.GridParameters(c.Width, c.Height, grid.Options{Topology: c.Topology})
	return append(params[:3], core.Parameter{
		Key:         "rule",
		Type:        core.ParamTypeInt,
		Value:       strconv.Itoa(int(c.Rule)),
		Description: "Wolfram rule number 0-255",
	})
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
// Row 0 is the newest generation; history scrolls downwards.
type Elementary struct {
	cfg   Config
	cells *grid.Grid[uint8]
	tmp   []uint8
}

// New creates an automaton with the given configuration.
func New(cfg Config) *Elementary {
	cfg.Width, cfg.Height = max(cfg.Width, 1), max(cfg.Height, 1)
	cells, _ := grid.New[uint8](cfg.Width, cfg.Height, grid.Options{Topology: cfg.Topology, Neighborhood: grid.Orthogonal})
	return &Elementary{cfg: cfg, cells: cells, tmp: make([]uint8, cfg.Width)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.cells.Width(), H: e.cells.Height()} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() *grid.Grid[uint8] { return e.cells }

// Parameters lists the tunables the simulation was built with.
func (e *Elementary) Parameters() []core.Parameter { return e.cfg.Parameters() }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(seed int64) {
	e.cells.Fill(0)
	e.cells.Set(e.cells.Width()/2, 0, 1)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w, h := e.cells.Width(), e.cells.Height()
	copy(e.tmp, e.cells.Row(0))
	for y := h - 1; y > 0; y-- {
		for x, v := range e.cells.Row(y - 1) {
			e.cells.Set(x, y, v)
		}
	}
	for x := range w {
		idx := e.neighbor(x, grid.West)<<2 | e.tmp[x]<<1 | e.neighbor(x, grid.East)
		e.cells.Set(x, 0, (e.cfg.Rule>>idx)&1)
	}
}

// neighbor reads the previous generation beside x; off-grid cells are dead.
func (e *Elementary) neighbor(x int, d grid.Direction) uint8 {
	p, ok := e.cells.Adjacent(x, 0, d)
	if !ok {
		return 0
	}
	return e.tmp[p.X]
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
