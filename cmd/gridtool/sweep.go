package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oechslein/AdventOfCode2024/internal/core"
	"github.com/oechslein/AdventOfCode2024/internal/sweep"
)

func (c *cli) sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a simulation headless over many seeds in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, ok := core.Sims()[c.cfg.Sim.Name]
			if !ok {
				return fmt.Errorf("unknown simulation %q (available: %v)", c.cfg.Sim.Name, core.Names())
			}

			results, err := sweep.Run(cmd.Context(), factory, c.cfg.SimParams(), sweep.Options{
				Seeds:   sweep.Seeds(c.cfg.Sim.Seed, c.cfg.Sweep.Seeds),
				Steps:   c.cfg.Sweep.Steps,
				Workers: c.cfg.Sweep.Workers,
			}, c.logger)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "seed\tinitial\tfinal\tpeak\tpeak step\tstable at\t")
			for _, r := range results {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\t\n", r.Seed, r.Initial, r.Final, r.Peak, r.PeakStep, stableAt(r.StableAt))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			s := sweep.Summarize(results)
			fmt.Fprintf(cmd.OutOrStdout(), "runs %d, extinct %d, stable %d, mean final %.1f, best seed %d (%d)\n",
				s.Runs, s.Extinct, s.Stable, s.MeanFinal, s.Best.Seed, s.Best.Final)
			return nil
		},
	}
	c.cfg.BindSweep(cmd.Flags())
	return cmd
}

func stableAt(step int) string {
	if step < 0 {
		return "-"
	}
	return fmt.Sprint(step)
}
