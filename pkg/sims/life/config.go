package life

import (
	"strconv"

	"github.com/oechslein/AdventOfCode2024/internal/core"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// Config holds parameters for Life.
type Config struct {
	Width   int
	Height  int
	Options grid.Options
	// Density is the inverse probability of a cell starting alive: 2 means
	// half the board.
	Density int
}

// DefaultConfig returns a 128x128 torus with the Moore neighborhood.
func DefaultConfig() Config {
	return Config{
		Width:   128,
		Height:  128,
		Options: grid.Options{Topology: grid.Torus, Neighborhood: grid.Square},
		Density: 2,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	core.ParseGridParams(cfg, &c.Width, &c.Height, &c.Options)
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Density = parsed
		}
	}
	return c
}

// Parameters lists the tunables of c.
func (c Config) Parameters() []core.Parameter {
	return append(core.GridParameters(c.Width, c.Height, c.Options), core.Parameter{
		Key:         "density",
		Type:        core.ParamTypeInt,
		Value:       strconv.Itoa(c.Density),
		Description: "one cell in N starts alive",
	})
}
