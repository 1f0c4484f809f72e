package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

func (c *cli) neighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors FILE X Y",
		Short: "List the neighbors of a cell under the configured topology",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}

			g, err := readGrid(cmd, args[0], c.cfg.Grid)
			if err != nil {
				return err
			}
			v, ok := g.Get(x, y)
			if !ok {
				return fmt.Errorf("(%d,%d) is outside the %dx%d grid", x, y, g.Width(), g.Height())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%v %q %s/%s\n", grid.Pos{X: x, Y: y}, v, g.Topology(), g.Neighborhood())
			for n := range g.NeighborsWithDirs(x, y) {
				fmt.Fprintf(out, "%-9s %-7v %q\n", n.Dir, n.Pos, n.Value)
			}
			return nil
		},
	}
}
