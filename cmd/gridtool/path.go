package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oechslein/AdventOfCode2024/internal/render"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
	"github.com/oechslein/AdventOfCode2024/pkg/pathfind"
)

// heading is a search state for paths that pay extra for turning.
type heading struct {
	pos grid.Pos
	dir grid.Direction
}

func (c *cli) pathCmd() *cobra.Command {
	var (
		from, to, wall string
		turnCost       int
		start          string
	)
	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Find the shortest path between two marked cells",
		Long: `path finds the shortest route from the --from cell to the --to cell,
stepping only through cells that are not --wall and using the configured
topology and neighborhood. With --turn-cost every 90 degree turn adds that
cost, starting out facing --heading.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromR, err := singleRune("from", from)
			if err != nil {
				return err
			}
			toR, err := singleRune("to", to)
			if err != nil {
				return err
			}
			wallR, err := singleRune("wall", wall)
			if err != nil {
				return err
			}

			g, err := readGrid(cmd, args[0], c.cfg.Grid)
			if err != nil {
				return err
			}
			src, ok := g.Find(func(r rune) bool { return r == fromR })
			if !ok {
				return fmt.Errorf("no %q cell in %s", fromR, args[0])
			}
			dst, ok := g.Find(func(r rune) bool { return r == toR })
			if !ok {
				return fmt.Errorf("no %q cell in %s", toR, args[0])
			}
			open := func(r rune) bool { return r != wallR }

			var (
				path []grid.Pos
				cost int
			)
			if turnCost > 0 {
				dir, err := grid.ParseDirection(start)
				if err != nil {
					return err
				}
				path, cost, ok = turningPath(g, src, dst, dir, turnCost, open)
			} else {
				path, ok = pathfind.ShortestPath(g, src, dst, open)
				cost = len(path) - 1
			}
			if !ok {
				return fmt.Errorf("no path from %v to %v", src, dst)
			}
			c.logger.Debug("path found", zap.Stringer("from", src), zap.Stringer("to", dst), zap.Int("cost", cost))

			names, err := moves(g, path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "steps: %d\n", len(path)-1)
			fmt.Fprintf(out, "cost: %d\n", cost)
			fmt.Fprintf(out, "moves: %s\n", strings.Join(names, " "))
			marked := g.Clone()
			for i, p := range path {
				if i > 0 && i < len(path)-1 {
					marked.Set(p.X, p.Y, 'O')
				}
			}
			return render.WriteText(out, marked, render.Runes)
		},
	}
	cmd.Flags().StringVar(&from, "from", "S", "start cell marker")
	cmd.Flags().StringVar(&to, "to", "E", "goal cell marker")
	cmd.Flags().StringVar(&wall, "wall", "#", "impassable cell marker")
	cmd.Flags().IntVar(&turnCost, "turn-cost", 0, "extra cost per 90 degree turn")
	cmd.Flags().StringVar(&start, "heading", "east", "initial heading when --turn-cost is set")
	return cmd
}

// turningPath runs Dijkstra over (cell, heading) states. Moving forward costs
// one and each 90 degree turn in place costs turnCost.
func turningPath(g *grid.Grid[rune], src, dst grid.Pos, dir grid.Direction, turnCost int, open func(rune) bool) ([]grid.Pos, int, bool) {
	successors := func(s heading) []pathfind.Edge[heading] {
		edges := []pathfind.Edge[heading]{
			{To: heading{s.pos, s.dir.Rotate(90)}, Cost: turnCost},
			{To: heading{s.pos, s.dir.Rotate(-90)}, Cost: turnCost},
		}
		if next, ok := g.Adjacent(s.pos.X, s.pos.Y, s.dir); ok && open(g.MustGet(next.X, next.Y)) {
			edges = append(edges, pathfind.Edge[heading]{To: heading{next, s.dir}, Cost: 1})
		}
		return edges
	}
	res, ok := pathfind.Dijkstra(heading{src, dir}, successors, func(s heading) bool { return s.pos == dst })
	if !ok {
		return nil, 0, false
	}
	path := []grid.Pos{res.Path[0].pos}
	for _, s := range res.Path[1:] {
		if s.pos != path[len(path)-1] {
			path = append(path, s.pos)
		}
	}
	return path, res.Cost, true
}

// moves names the step between each pair of cells in path. Steps across a
// torus seam are resolved through the grid's own adjacency.
func moves(g *grid.Grid[rune], path []grid.Pos) ([]string, error) {
	dirs, err := pathfind.Directions(path)
	if err != nil && !errors.Is(err, pathfind.ErrNotAdjacent) {
		return nil, err
	}
	if err != nil {
		dirs = dirs[:0]
		for i := 1; i < len(path); i++ {
			d, ok := stepBetween(g, path[i-1], path[i])
			if !ok {
				return nil, fmt.Errorf("%v to %v: %w", path[i-1], path[i], pathfind.ErrNotAdjacent)
			}
			dirs = append(dirs, d)
		}
	}
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return names, nil
}

func stepBetween(g *grid.Grid[rune], from, to grid.Pos) (grid.Direction, bool) {
	for d := range g.AdjacentDirections() {
		if q, ok := g.Adjacent(from.X, from.Y, d); ok && q == to {
			return d, true
		}
	}
	return 0, false
}
