// Package config loads gridtool settings from YAML and command-line flags.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"runtime"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/oechslein/AdventOfCode2024/internal/logging"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// Config is the full gridtool configuration.
type Config struct {
	Grid  grid.Options   `yaml:"grid"`
	Sim   SimConfig      `yaml:"sim"`
	Sweep SweepConfig    `yaml:"sweep"`
	Log   logging.Config `yaml:"log"`
}

// SimConfig selects and seeds a registered simulation.
type SimConfig struct {
	Name   string            `yaml:"name"`
	TPS    int               `yaml:"tps"`
	Seed   int64             `yaml:"seed"`
	Steps  int               `yaml:"steps"`
	Params map[string]string `yaml:"params"`
}

// SweepConfig controls a parallel sweep over seeds.
type SweepConfig struct {
	Seeds   int `yaml:"seeds"`
	Steps   int `yaml:"steps"`
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Grid: grid.Options{Topology: grid.Bounded, Neighborhood: grid.Square},
		Sim: SimConfig{
			Name:   "life",
			TPS:    10,
			Seed:   42,
			Params: map[string]string{},
		},
		Sweep: SweepConfig{
			Seeds:   16,
			Steps:   100,
			Workers: runtime.NumCPU(),
		},
		Log: logging.DefaultConfig(),
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Sim.Params == nil {
		cfg.Sim.Params = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithFlags replaces c with the configuration in path and then applies
// every flag of fs the user set again, so flags win over the file. Parameter
// maps are merged, with flag entries taking precedence.
func (c *Config) LoadWithFlags(path string, fs *pflag.FlagSet) error {
	type setting struct{ name, value string }
	var changed []setting
	params := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		if f.Value.Type() == "stringToString" {
			if m, err := fs.GetStringToString(f.Name); err == nil {
				maps.Copy(params, m)
			}
			return
		}
		changed = append(changed, setting{f.Name, f.Value.String()})
	})

	loaded, err := Load(path)
	if err != nil {
		return err
	}
	*c = *loaded
	for _, s := range changed {
		if err := fs.Set(s.name, s.value); err != nil {
			return fmt.Errorf("--%s: %w", s.name, err)
		}
	}
	maps.Copy(c.Sim.Params, params)
	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Sim.TPS < 0:
		return fmt.Errorf("sim.tps must not be negative, got %d", c.Sim.TPS)
	case c.Sim.Steps < 0:
		return fmt.Errorf("sim.steps must not be negative, got %d", c.Sim.Steps)
	case c.Sweep.Seeds < 1:
		return fmt.Errorf("sweep.seeds must be at least 1, got %d", c.Sweep.Seeds)
	case c.Sweep.Steps < 0:
		return fmt.Errorf("sweep.steps must not be negative, got %d", c.Sweep.Steps)
	case c.Sweep.Workers < 1:
		return fmt.Errorf("sweep.workers must be at least 1, got %d", c.Sweep.Workers)
	}
	return nil
}

// SimParams returns the simulation parameters with the grid options filled in
// where the params do not set them.
func (c *Config) SimParams() map[string]string {
	params := maps.Clone(c.Sim.Params)
	if params == nil {
		params = map[string]string{}
	}
	if _, ok := params["topology"]; !ok {
		params["topology"] = c.Grid.Topology.String()
	}
	if _, ok := params["neighborhood"]; !ok {
		params["neighborhood"] = c.Grid.Neighborhood.String()
	}
	return params
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// BindGrid registers --topology and --neighborhood on fs.
func (c *Config) BindGrid(fs *pflag.FlagSet) {
	fs.Var(textFlag{&c.Grid.Topology}, "topology", "grid topology: bounded or torus")
	fs.Var(textFlag{&c.Grid.Neighborhood}, "neighborhood", "grid neighborhood: square, orthogonal or diagonal")
}

// BindSim registers the simulation flags on fs.
func (c *Config) BindSim(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim.Name, "sim", c.Sim.Name, "simulation to run")
	fs.IntVar(&c.Sim.TPS, "tps", c.Sim.TPS, "ticks per second")
	fs.Int64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "seed for simulation reset")
	fs.IntVar(&c.Sim.Steps, "steps", c.Sim.Steps, "stop after this many generations, 0 runs until quit")
	fs.StringToStringVar(&c.Sim.Params, "param", c.Sim.Params, "simulation parameters as key=value")
}

// BindSweep registers the sweep flags on fs.
func (c *Config) BindSweep(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim.Name, "sim", c.Sim.Name, "simulation to sweep")
	fs.StringToStringVar(&c.Sim.Params, "param", c.Sim.Params, "simulation parameters as key=value")
	fs.Int64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "first seed of the sweep")
	fs.IntVar(&c.Sweep.Seeds, "seeds", c.Sweep.Seeds, "number of consecutive seeds")
	fs.IntVar(&c.Sweep.Steps, "steps", c.Sweep.Steps, "generations per seed")
	fs.IntVar(&c.Sweep.Workers, "workers", c.Sweep.Workers, "parallel workers")
}

// textFlag adapts an encoding.TextUnmarshaler enum to pflag.Value.
type textFlag struct {
	v interface {
		String() string
		UnmarshalText([]byte) error
	}
}

func (f textFlag) String() string {
	if f.v == nil {
		return ""
	}
	return f.v.String()
}

func (f textFlag) Set(s string) error { return f.v.UnmarshalText([]byte(s)) }

func (f textFlag) Type() string { return "string" }
