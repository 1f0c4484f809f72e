package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oechslein/AdventOfCode2024/internal/render"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// transforms maps --transform names to in-place grid operations.
var transforms = map[string]func(*grid.Grid[rune]){
	"flip-h":    (*grid.Grid[rune]).FlipHorizontal,
	"flip-v":    (*grid.Grid[rune]).FlipVertical,
	"transpose": (*grid.Grid[rune]).Transpose,
	"cw":        (*grid.Grid[rune]).RotateCW,
	"ccw":       (*grid.Grid[rune]).RotateCCW,
}

func (c *cli) showCmd() *cobra.Command {
	var transform string
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a grid, optionally flipped, transposed or rotated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := splitList(transform)
			for _, name := range steps {
				if _, ok := transforms[name]; !ok {
					return fmt.Errorf("unknown transform %q", name)
				}
			}

			g, err := readGrid(cmd, args[0], c.cfg.Grid)
			if err != nil {
				return err
			}
			for _, name := range steps {
				transforms[name](g)
			}
			c.logger.Debug("grid loaded",
				zap.String("file", args[0]),
				zap.Int("width", g.Width()),
				zap.Int("height", g.Height()),
				zap.Strings("transforms", steps))
			return render.WriteText(cmd.OutOrStdout(), g, render.Runes)
		},
	}
	cmd.Flags().StringVar(&transform, "transform", "", "comma separated: flip-h, flip-v, transpose, cw, ccw")
	return cmd
}
