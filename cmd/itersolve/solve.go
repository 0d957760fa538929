package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/itersolve/config"
	"github.com/katalvlaran/itersolve/iterate"
	"github.com/katalvlaran/itersolve/solver"
	"github.com/katalvlaran/itersolve/vector"
)

// errNotConverged is returned when at least one problem ends in a status
// other than Converged.
var errNotConverged = errors.New("not every problem converged")

type solveFlags struct {
	solver  string
	workers int
	timeout time.Duration
}

// outcome is one problem's result, printed in argument order.
type outcome struct {
	name   string
	status iterate.Status
	report solver.Report
	x      *vector.Dense[float64]
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	flags := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve problem.yaml [problem.yaml...]",
		Short: "Solve one or more problem files concurrently",
		Long: `Solve loads every problem file, then solves them concurrently, each under
its own clone of the configured controller. Ctrl-C cancels all runs; the
partial iterates are still reported.

Exit status is non-zero when a problem fails to load, a solver errors, or
any problem does not converge.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runSolve(ctx, cfg, args, cmd.OutOrStdout(), cfg.Logging.Logger(cmd.ErrOrStderr()))
		},
	}

	cmd.Flags().StringVarP(&flags.solver, "solver", "s", "", "Registry setup to use (overrides solver.name)")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "Concurrent solves (overrides solver.workers)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Wall-clock limit for the whole batch (overrides solver.timeout)")

	return cmd
}

// apply copies explicitly set flags over cfg and re-validates.
func (f *solveFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("solver") {
		cfg.Solver.Name = f.solver
	}
	if cmd.Flags().Changed("workers") {
		cfg.Solver.Workers = f.workers
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Solver.Timeout = f.timeout
	}

	return cfg.Validate()
}

// runSolve executes the batch.
// Stage 1: derive the batch context (timeout) and build the prototype controller.
// Stage 2: load every problem; any load error aborts before solving.
// Stage 3: solve concurrently on controller clones, bounded by Workers.
// Stage 4: print outcomes in argument order.
func runSolve(ctx context.Context, cfg *config.Config, paths []string, out io.Writer, logger *slog.Logger) error {
	if cfg.Solver.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Solver.Timeout)
		defer cancel()
	}

	batchID := uuid.NewString()
	logger = logger.With(slog.String("batch_id", batchID))

	setup, err := solver.Lookup(cfg.Solver.Name)
	if err != nil {
		return err
	}
	proto, err := config.BuildController(cfg.Controller, ctx, logger)
	if err != nil {
		return err
	}

	problems := make([]*config.Problem, len(paths))
	for i, path := range paths {
		if problems[i], err = config.LoadProblem(path); err != nil {
			return err
		}
	}

	logger.Info("batch_started",
		slog.String("solver", setup.Name),
		slog.Int("problems", len(problems)),
		slog.Int("workers", cfg.Solver.Workers),
	)

	outcomes := make([]outcome, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Solver.Workers)
	for i, p := range problems {
		ctl := proto.Clone()
		g.Go(func() error {
			a, b, x, err := p.Build()
			if err != nil {
				return err
			}
			outcomes[i] = outcome{name: p.Name, x: x}
			s := setup.NewSolver(
				solver.WithLogger(logger.With(slog.String("problem", p.Name))),
				solver.WithReporter(func(r solver.Report) { outcomes[i].report = r }),
			)
			status, err := s.Solve(gctx, a, b, x, ctl, setup.NewPreconditioner())
			outcomes[i].status = status
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}

			return nil
		})
	}
	solveErr := g.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.x == nil {
			continue
		}
		printOutcome(out, o)
		if o.status != iterate.Converged {
			failed++
		}
	}
	logger.Info("batch_complete", slog.Int("problems", len(problems)), slog.Int("not_converged", failed))

	if solveErr != nil {
		return solveErr
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errNotConverged, failed, len(problems))
	}

	return nil
}

// printOutcome writes one status line and the iterate.
func printOutcome(w io.Writer, o outcome) {
	symbol, attr := "⚠", color.FgYellow
	switch o.status {
	case iterate.Converged:
		symbol, attr = "✓", color.FgGreen
	case iterate.Diverged, iterate.Failure:
		symbol, attr = "✗", color.FgRed
	}
	c := color.New(attr)

	fmt.Fprintf(w, "%s %s: %s after %d iterations (residual %.3e)\n",
		c.Sprint(symbol), o.name, o.status, o.report.Iterations, o.report.Residual)
	fmt.Fprintf(w, "  x = %s\n", o.x)
}
