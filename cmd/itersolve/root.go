package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configPath string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "itersolve",
		Short: "Iterative linear solvers under a convergence controller",
		Long: `itersolve runs conjugate gradient, BiCGStab or Jacobi iteration on
linear systems A·x = b read from YAML problem files.

Each run is supervised by an iteration controller composed of stop criteria
(iteration limit, residual, divergence, failure, cancellation) configured in
a YAML file or through ITERSOLVE_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to itersolve.yaml (defaults and env only when empty)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newSolveCmd(opts))
	cmd.AddCommand(newSolversCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
