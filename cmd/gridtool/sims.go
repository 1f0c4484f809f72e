package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oechslein/AdventOfCode2024/internal/core"
)

func (c *cli) simsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sims",
		Short: "List registered simulations and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.Names() {
				sim, err := core.New(name, nil)
				if err != nil {
					return err
				}
				size := sim.Size()
				fmt.Fprintf(out, "%s (%dx%d)\n", name, size.W, size.H)
				if pp, ok := sim.(core.ParameterProvider); ok {
					for _, p := range pp.Parameters() {
						fmt.Fprintf(out, "  %s\n", core.FormatParameter(p))
					}
				}
			}
			return nil
		},
	}
}
