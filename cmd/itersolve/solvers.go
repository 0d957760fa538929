package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/itersolve/solver"
)

func newSolversCmd() *cobra.Command {
	var exclude []string
	cmd := &cobra.Command{
		Use:   "solvers",
		Short: "List registered solver setups in preference order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRANK\tDESCRIPTION")
			for _, s := range solver.Setups(exclude...) {
				fmt.Fprintf(w, "%s\t%.2f\t%s\n", s.Name, s.Rank(), s.Description)
			}

			return w.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Setup names to omit")

	return cmd
}
