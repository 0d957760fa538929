// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/itersolve/iterate"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/vector"
)

// tracerName is the instrumentation scope of solver spans.
const tracerName = "github.com/katalvlaran/itersolve/solver"

// Solver iteratively improves x towards the solution of A·x = b.
//
// Solve overwrites x in place, starting from its current contents, and
// consults ctl once per iteration (iteration 0 is the initial guess). It
// returns the controller's terminal status, or iterate.Failure when the
// method breaks down numerically. Cancelling ctx latches ctl.Cancel().
// ctl must not be driven concurrently by anything else.
type Solver interface {
	Name() string
	Solve(ctx context.Context, a matrix.Matrix, b, x *vector.Dense[float64],
		ctl *iterate.Controller[float64], pre Preconditioner) (iterate.Status, error)
}

// problem carries the operands of one Solve call.
type problem struct {
	a   matrix.Matrix
	b   *vector.Dense[float64]
	x   *vector.Dense[float64]
	ctl *iterate.Controller[float64]
	pre Preconditioner
	n   int
}

// outcome is what an iteration loop hands back to drive.
type outcome struct {
	status    iterate.Status
	iteration int
	residual  *vector.Dense[float64]
}

// loop runs the method-specific iteration on a validated problem.
type loop func(p *problem) (outcome, error)

// validate checks operands before any state is touched.
// Stage 1: nil checks. Stage 2: square matrix. Stage 3: vector lengths.
func (p *problem) validate() error {
	if p.a == nil || p.b == nil || p.x == nil || p.ctl == nil || p.pre == nil {
		return ErrNilArgument
	}
	if err := matrix.ValidateSquare(p.a); err != nil {
		return err
	}
	p.n = p.a.Rows()
	if p.b.Len() != p.n || p.x.Len() != p.n {
		return ErrDimensionMismatch
	}

	return nil
}

// scratch allocates one work vector of the problem order.
func (p *problem) scratch() *vector.Dense[float64] {
	v, _ := vector.New[float64](p.n) // n >= 1 after validate

	return v
}

// check hands the current iterate to the controller.
func (p *problem) check(iteration int, r *vector.Dense[float64]) (iterate.Status, error) {
	return p.ctl.DetermineStatus(iteration, p.x, p.b, r)
}

// drive wraps a method loop with validation, tracing, metrics, logging and
// context forwarding.
//
// Stage 1 (Trace): open span "solver.<name>.Solve".
// Stage 2 (Validate): operands and preconditioner initialization.
// Stage 3 (Forward): ctx.Done() latches ctl.Cancel() for the whole run.
// Stage 4 (Iterate): run body, then record span attributes and metrics.
func drive(ctx context.Context, name string, opts Options, p problem, body loop) (iterate.Status, error) {
	runID := uuid.NewString()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "solver."+name+".Solve",
		trace.WithAttributes(
			attribute.String("solver", name),
			attribute.String("run_id", runID),
		),
	)
	defer span.End()

	tag := name + ".Solve"
	fail := func(err error) (iterate.Status, error) {
		solveErrors.WithLabelValues(name).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve failed")
		opts.logger.LogAttrs(ctx, slog.LevelWarn, "solve_failed",
			slog.String("solver", name),
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		status := iterate.Indeterminate
		if p.ctl != nil {
			status = p.ctl.Status()
		}

		return status, solverErrorf(tag, err)
	}

	if err := p.validate(); err != nil {
		return fail(err)
	}
	if err := p.pre.Initialize(p.a); err != nil {
		return fail(err)
	}
	span.SetAttributes(
		attribute.Int("dimension", p.n),
		attribute.String("preconditioner", p.pre.Name()),
	)

	if ctx.Err() != nil {
		p.ctl.Cancel()
	}
	stop := context.AfterFunc(ctx, p.ctl.Cancel)
	defer stop()

	opts.logger.LogAttrs(ctx, slog.LevelDebug, "solve_started",
		slog.String("solver", name),
		slog.String("run_id", runID),
		slog.Int("dimension", p.n),
		slog.String("preconditioner", p.pre.Name()),
	)

	start := time.Now()
	out, err := body(&p)
	elapsed := time.Since(start)
	if err != nil {
		return fail(err)
	}

	residual := out.residual.InfinityNorm()
	span.SetAttributes(
		attribute.Int("iterations", out.iteration),
		attribute.String("status", out.status.String()),
		attribute.Float64("residual", residual),
	)
	if out.status == iterate.Converged {
		span.SetStatus(codes.Ok, "converged")
	} else {
		span.SetStatus(codes.Ok, "stopped: "+out.status.String())
	}
	solveIterations.WithLabelValues(name, out.status.String()).Observe(float64(out.iteration))
	solveDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	opts.logger.LogAttrs(ctx, slog.LevelDebug, "solve_complete",
		slog.String("solver", name),
		slog.String("run_id", runID),
		slog.Int("iterations", out.iteration),
		slog.String("status", out.status.String()),
		slog.Float64("residual", residual),
		slog.Duration("duration", elapsed),
	)
	opts.reporter(Report{
		RunID:      runID,
		Solver:     name,
		Status:     out.status.String(),
		Iterations: out.iteration,
		Residual:   residual,
		Duration:   elapsed,
	})

	return out.status, nil
}

// kernels chains vector and matrix kernels and keeps the first error, so a
// loop body can check once per iteration.
type kernels struct {
	err error
}

func (k *kernels) dot(a, b *vector.Dense[float64]) float64 {
	if k.err != nil {
		return 0
	}
	d, err := vector.Dot(a, b)
	k.err = err

	return d
}

// axpy performs y += alpha·x.
func (k *kernels) axpy(y *vector.Dense[float64], alpha float64, x *vector.Dense[float64]) {
	if k.err == nil {
		k.err = vector.AddScaled(y, alpha, x)
	}
}

func (k *kernels) sub(dst, a, b *vector.Dense[float64]) {
	if k.err == nil {
		k.err = vector.Sub(dst, a, b)
	}
}

func (k *kernels) copy(dst, src *vector.Dense[float64]) {
	if k.err == nil {
		k.err = vector.CopyFrom(dst, src)
	}
}

func (k *kernels) matVec(a matrix.Matrix, x, dst *vector.Dense[float64]) {
	if k.err == nil {
		k.err = matrix.MatVec(a, x, dst)
	}
}

func (k *kernels) precondition(pre Preconditioner, rhs, dst *vector.Dense[float64]) {
	if k.err == nil {
		k.err = pre.Approximate(rhs, dst)
	}
}

// residual writes r = b - A·x.
func (k *kernels) residual(p *problem, r *vector.Dense[float64]) {
	k.matVec(p.a, p.x, r)
	k.sub(r, p.b, r)
}
