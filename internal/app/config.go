package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the desktop viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Panel int
	// Params are passed to the simulation factory.
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42, Panel: 160, Params: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Panel, "panel", c.Panel, "status panel width in pixels, 0 to hide")
	fs.Func("param", "simulation parameter as key=value (repeatable)", func(s string) error {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return fmt.Errorf("parameter %q is not key=value", s)
		}
		c.Params[k] = v
		return nil
	})
}
