package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oechslein/AdventOfCode2024/internal/render"
	"github.com/oechslein/AdventOfCode2024/pkg/sims/life"
)

func (c *cli) gifCmd() *cobra.Command {
	var (
		steps, scale, delay int
		alive               string
	)
	cmd := &cobra.Command{
		Use:   "gif FILE OUT",
		Short: "Animate Conway's Life from a text grid into a GIF",
		Long: `gif reads FILE as the first generation, with --alive marking live cells,
runs Life under the configured topology and neighborhood and writes every
generation as a frame of OUT.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliveR, err := singleRune("alive", alive)
			if err != nil {
				return err
			}
			g, err := readGrid(cmd, args[0], c.cfg.Grid)
			if err != nil {
				return err
			}

			cfg := life.DefaultConfig()
			cfg.Width, cfg.Height, cfg.Options = g.Width(), g.Height(), c.cfg.Grid
			sim := life.New(cfg)
			for p, r := range g.Cells() {
				if r == aliveR {
					sim.Cells().Set(p.X, p.Y, 1)
				}
			}

			palette := color.Palette{render.DefaultPalette[0], render.DefaultPalette[1]}
			rec, err := render.NewGIFRecorder(map[uint8]uint8{0: 0, 1: 1}, palette, scale, delay)
			if err != nil {
				return err
			}
			for i := 0; ; i++ {
				if err := rec.AddFrame(sim.Cells()); err != nil {
					return err
				}
				if i == steps {
					break
				}
				sim.Step()
			}

			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := rec.Encode(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			c.logger.Info("gif written", zap.String("file", args[1]), zap.Int("frames", rec.Frames()))
			fmt.Fprintf(cmd.OutOrStdout(), "%d frames, final population %d\n", rec.Frames(), sim.Population())
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 20, "generations to record after the first")
	cmd.Flags().IntVar(&scale, "scale", 4, "pixels per cell")
	cmd.Flags().IntVar(&delay, "delay", 10, "frame delay in hundredths of a second")
	cmd.Flags().StringVar(&alive, "alive", "#", "live cell marker")
	return cmd
}
