// SPDX-License-Identifier: MIT

package iterate

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Controller composes an ordered list of stop criteria into one status per
// iteration.
//
// Composition (DetermineStatus):
//  1. Reject an empty criteria list, a negative iteration number, and
//     provided vectors of different lengths. Nothing is mutated on error.
//  2. If Cancel has latched, return Cancelled without consulting criteria.
//  3. Consult criteria in registration order. Continue and Indeterminate
//     pass through; the first terminal verdict is adopted and later criteria
//     are not consulted for this call.
//  4. If no criterion is terminal the status is Running.
//
// Concurrency: Cancel, Status, HasConverged and HasStoppedWithoutConvergence
// may be called from any goroutine.
// DetermineStatus, Reset and Clone must be driven by one goroutine at a time.
type Controller[T Scalar] struct {
	criteria  []Criterion[T]
	status    atomic.Int32 // last verdict, a Status
	cancelled atomic.Bool
	opts      Options
}

// NewController creates a controller owning criteria in the given order.
// The slice is copied; the criteria themselves become owned by the
// controller and must not be driven elsewhere. An empty list is accepted
// here and rejected by DetermineStatus.
func NewController[T Scalar](criteria []Criterion[T], opts ...Option) *Controller[T] {
	owned := make([]Criterion[T], len(criteria))
	copy(owned, criteria)

	c := &Controller[T]{criteria: owned, opts: gatherOptions(opts...)}
	c.setStatus(Indeterminate)

	return c
}

// DefaultController returns a controller over the default criteria set:
// IterationLimit(1000), Residual(1e-12, 0), Divergence(0.08, 10), FailureDetector.
func DefaultController[T Scalar](opts ...Option) *Controller[T] {
	limit, err := NewIterationLimit[T](DefaultMaximumIterations)
	must(err)
	residual, err := NewResidual[T](DefaultMaximumResidual, DefaultMinimumIterationsBelowMaximum)
	must(err)
	divergence, err := NewDivergence[T](DefaultMaximumRelativeIncrease, DefaultMinimumDivergenceIterations)
	must(err)

	return NewController([]Criterion[T]{limit, residual, divergence, NewFailureDetector[T]()}, opts...)
}

// must panics on errors that can only come from invalid package constants.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// DetermineStatus evaluates one iteration. See the type documentation for
// the composition rules.
func (c *Controller[T]) DetermineStatus(iteration int, solution, source, residual Vector[T]) (Status, error) {
	if len(c.criteria) == 0 {
		return c.Status(), iterateErrorf("Controller.DetermineStatus", ErrNoCriteria)
	}
	if err := validateIteration(iteration); err != nil {
		return c.Status(), iterateErrorf("Controller.DetermineStatus", err)
	}
	if err := validatePresentLen[T](solution, source, residual); err != nil {
		return c.Status(), iterateErrorf("Controller.DetermineStatus", err)
	}

	if c.cancelled.Load() {
		c.setStatus(Cancelled)

		return Cancelled, nil
	}

	for i, crit := range c.criteria {
		verdict, err := crit.Evaluate(iteration, solution, source, residual)
		if err != nil {
			return c.Status(), fmt.Errorf("Controller.DetermineStatus: criterion %d (%s): %w", i, criterionKind(crit), err)
		}
		if !verdict.IsTerminal() {
			continue
		}
		if verdict == Cancelled {
			c.latch()
		}
		c.setStatus(verdict)
		c.report(iteration, i, crit, verdict)

		return verdict, nil
	}
	c.setStatus(Running)

	return Running, nil
}

// validatePresentLen checks that the non-nil vectors among vs share one length.
func validatePresentLen[T Scalar](vs ...Vector[T]) error {
	n := -1
	for _, v := range vs {
		if isNilVector[T](v) {
			continue
		}
		if n < 0 {
			n = v.Len()
		} else if v.Len() != n {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// Status returns Cancelled once Cancel has latched, otherwise the verdict
// of the last DetermineStatus call (Indeterminate before the first one).
func (c *Controller[T]) Status() Status {
	if c.cancelled.Load() {
		return Cancelled
	}

	return Status(c.status.Load())
}

func (c *Controller[T]) setStatus(s Status) { c.status.Store(int32(s)) }

// HasConverged reports Status() == Converged.
func (c *Controller[T]) HasConverged() bool { return c.Status() == Converged }

// HasStoppedWithoutConvergence reports Status() == StoppedWithoutConvergence.
func (c *Controller[T]) HasStoppedWithoutConvergence() bool {
	return c.Status() == StoppedWithoutConvergence
}

// Cancel latches the sticky cancellation flag. Owned criteria are not
// touched. Safe to call from any goroutine; repeated calls are no-ops.
func (c *Controller[T]) Cancel() {
	c.latch()
}

// latch sets the flag and records the transition once.
func (c *Controller[T]) latch() {
	if !c.cancelled.CompareAndSwap(false, true) {
		return
	}
	controllerCancellations.WithLabelValues(c.opts.name).Inc()
	c.opts.logger.LogAttrs(context.Background(), slog.LevelInfo, "controller_cancelled",
		slog.String("controller", c.opts.name),
	)
}

// Reset clears the cancellation flag, resets every owned criterion and
// returns the status to Indeterminate.
func (c *Controller[T]) Reset() {
	for _, crit := range c.criteria {
		crit.Reset()
	}
	c.setStatus(Indeterminate)
	c.cancelled.Store(false)
}

// Clone returns an independent controller over deep clones of every owned
// criterion, with a cleared flag and the same options.
func (c *Controller[T]) Clone() *Controller[T] {
	clones := make([]Criterion[T], len(c.criteria))
	for i, crit := range c.criteria {
		clones[i] = crit.Clone()
	}

	clone := &Controller[T]{criteria: clones, opts: c.opts}
	clone.setStatus(Indeterminate)

	return clone
}

// Criteria returns the owned criteria in registration order. The slice is a
// copy; the elements are the owned instances.
func (c *Controller[T]) Criteria() []Criterion[T] {
	out := make([]Criterion[T], len(c.criteria))
	copy(out, c.criteria)

	return out
}

// Name returns the label set with WithName.
func (c *Controller[T]) Name() string { return c.opts.name }

// report records an adopted terminal verdict.
func (c *Controller[T]) report(iteration, index int, crit Criterion[T], verdict Status) {
	controllerVerdicts.WithLabelValues(c.opts.name, verdict.String()).Inc()

	level := slog.LevelWarn
	switch verdict {
	case Converged:
		level = slog.LevelDebug
	case Cancelled:
		level = slog.LevelInfo
	}
	c.opts.logger.LogAttrs(context.Background(), level, "iteration_stopped",
		slog.String("controller", c.opts.name),
		slog.Int("iteration", iteration),
		slog.String("status", verdict.String()),
		slog.Int("criterion_index", index),
		slog.String("criterion", criterionKind(crit)),
	)
}

// criterionKind names a criterion the way configuration files do.
func criterionKind[T Scalar](crit Criterion[T]) string {
	switch crit.(type) {
	case *IterationLimit[T]:
		return KindIterationLimit
	case *Residual[T]:
		return KindResidual
	case *Divergence[T]:
		return KindDivergence
	case *FailureDetector[T]:
		return KindFailure
	case *Cancellation[T]:
		return KindCancellation
	case *Delegate[T]:
		return KindDelegate
	default:
		return fmt.Sprintf("%T", crit)
	}
}
