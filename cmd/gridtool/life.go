package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oechslein/AdventOfCode2024/internal/core"
	"github.com/oechslein/AdventOfCode2024/internal/tui"
)

func (c *cli) lifeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "life",
		Short: "Play a registered simulation in the terminal",
		Long: `life runs a simulation full screen in the terminal.

Keys: q or Esc quits, space pauses, n steps once while paused and r resets
with the same seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := core.New(c.cfg.Sim.Name, c.cfg.SimParams())
			if err != nil {
				return err
			}

			screen, err := c.newScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			player := tui.NewPlayer(screen, sim, tui.PlayerOptions{
				TPS:   c.cfg.Sim.TPS,
				Seed:  c.cfg.Sim.Seed,
				Steps: c.cfg.Sim.Steps,
			}, c.logger)
			if err := player.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	c.cfg.BindSim(cmd.Flags())
	return cmd
}
