// Command gridtool inspects, searches and animates 2D grids from the
// terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oechslein/AdventOfCode2024/internal/config"
	"github.com/oechslein/AdventOfCode2024/internal/logging"
	_ "github.com/oechslein/AdventOfCode2024/internal/sims/briansbrain"
	_ "github.com/oechslein/AdventOfCode2024/internal/sims/elementary"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
	_ "github.com/oechslein/AdventOfCode2024/pkg/sims/life"
)

// cli carries state shared by all subcommands.
type cli struct {
	configPath string
	logLevel   string
	cfg        *config.Config
	logger     *zap.Logger
	newScreen  func() (tcell.Screen, error)
}

func newCLI() *cli {
	return &cli{cfg: config.DefaultConfig(), logger: zap.NewNop(), newScreen: tcell.NewScreen}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridtool",
		Short: "Inspect, search and animate 2D grids",
		Long: `gridtool works on rectangular text grids, one row per line.

Grids can be bounded or wrap around as a torus, and adjacency can be the
eight surrounding cells, the four orthogonal ones or the four diagonal ones.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.LoadWithFlags(c.configPath, cmd.Flags()); err != nil {
				return err
			}
			if c.logLevel != "" {
				c.cfg.Log.Level = c.logLevel
			}

			logger, err := logging.New(c.cfg.Log)
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error")
	c.cfg.BindGrid(root.PersistentFlags())

	root.AddCommand(
		c.showCmd(),
		c.neighborsCmd(),
		c.pathCmd(),
		c.lifeCmd(),
		c.sweepCmd(),
		c.gifCmd(),
		c.simsCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCLI().rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// readGrid parses the grid in path, or stdin for "-".
func readGrid(cmd *cobra.Command, path string, opts grid.Options) (*grid.Grid[rune], error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	g, err := grid.Parse(string(data), opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// singleRune validates a one-character flag value.
func singleRune(name, v string) (rune, error) {
	r := []rune(v)
	if len(r) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, v)
	}
	return r[0], nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
