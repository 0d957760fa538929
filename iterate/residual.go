// SPDX-License-Identifier: MIT

package iterate

import "math"

// Residual defaults.
const (
	// DefaultMaximumResidual is the relative residual bound used by DefaultController.
	DefaultMaximumResidual = 1e-12

	// DefaultMinimumIterationsBelowMaximum requires no extra confirmation iterations.
	DefaultMinimumIterationsBelowMaximum = 0
)

// Residual declares convergence once the residual has stayed below
//
//	stopBound = maximum · ‖source‖∞
//
// for at least minimumIterationsBelowMaximum iterations after first dropping
// below it. A NaN bound or residual norm is reported as Diverged.
type Residual[T Scalar] struct {
	// configuration
	maximum      float64
	minimumBelow int

	// progress
	lastIteration int  // last processed iteration, -1 when fresh
	runStart      int  // iteration at which the current below-bound run began
	inRun         bool // residual currently below the bound
	status        Status
}

// NewResidual creates a residual-threshold criterion.
// Returns ErrNegativeResidual for maximum < 0 (or NaN) and
// ErrNegativeMinimumIterations for minimumIterationsBelowMaximum < 0.
func NewResidual[T Scalar](maximum float64, minimumIterationsBelowMaximum int) (*Residual[T], error) {
	if err := validateMaximumResidual(maximum); err != nil {
		return nil, iterateErrorf("NewResidual", err)
	}
	if err := validateMinimumBelow(minimumIterationsBelowMaximum); err != nil {
		return nil, iterateErrorf("NewResidual", err)
	}
	c := &Residual[T]{maximum: maximum, minimumBelow: minimumIterationsBelowMaximum}
	c.Reset()

	return c, nil
}

func validateMaximumResidual(maximum float64) error {
	if math.IsNaN(maximum) || maximum < 0 {
		return ErrNegativeResidual
	}

	return nil
}

func validateMinimumBelow(n int) error {
	if n < 0 {
		return ErrNegativeMinimumIterations
	}

	return nil
}

// Maximum returns the relative residual bound.
func (c *Residual[T]) Maximum() float64 { return c.maximum }

// SetMaximum replaces the bound. On error the old bound is kept.
func (c *Residual[T]) SetMaximum(maximum float64) error {
	if err := validateMaximumResidual(maximum); err != nil {
		return iterateErrorf("Residual.SetMaximum", err)
	}
	c.maximum = maximum

	return nil
}

// MinimumIterationsBelowMaximum returns the required run length.
func (c *Residual[T]) MinimumIterationsBelowMaximum() int { return c.minimumBelow }

// SetMinimumIterationsBelowMaximum replaces the run length. On error the old value is kept.
func (c *Residual[T]) SetMinimumIterationsBelowMaximum(n int) error {
	if err := validateMinimumBelow(n); err != nil {
		return iterateErrorf("Residual.SetMinimumIterationsBelowMaximum", err)
	}
	c.minimumBelow = n

	return nil
}

// Evaluate checks ‖residual‖∞ against maximum·‖source‖∞.
//
// Stage 1 (Validate): iteration >= 0, all three vectors present and of equal length.
// Stage 2 (Idempotence): an iteration not after the last processed one
// returns the memoized status untouched.
// Stage 3 (Decide): NaN → Diverged; below bound → run bookkeeping;
// above bound → run cleared, Continue.
func (c *Residual[T]) Evaluate(iteration int, solution, source, residual Vector[T]) (Status, error) {
	if err := validateIteration(iteration); err != nil {
		return c.status, iterateErrorf("Residual.Evaluate", err)
	}
	if err := validateSameLen[T](solution, source, residual); err != nil {
		return c.status, iterateErrorf("Residual.Evaluate", err)
	}
	if iteration <= c.lastIteration {
		return c.status, nil
	}
	c.lastIteration = iteration

	residualNorm := residual.InfinityNorm()
	stopBound := c.maximum * source.InfinityNorm()
	if math.IsNaN(stopBound) || math.IsNaN(residualNorm) {
		c.inRun = false
		c.status = Diverged

		return c.status, nil
	}

	if residualNorm > stopBound {
		c.inRun = false
		c.status = Continue

		return c.status, nil
	}

	if !c.inRun {
		c.inRun = true
		c.runStart = iteration
	}
	if iteration-c.runStart >= c.minimumBelow {
		c.status = Converged
	} else {
		c.status = Continue
	}

	return c.status, nil
}

// Status returns the last verdict.
func (c *Residual[T]) Status() Status { return c.status }

// Reset clears the run bookkeeping; configuration is kept.
func (c *Residual[T]) Reset() {
	c.lastIteration = -1
	c.runStart = 0
	c.inRun = false
	c.status = Continue
}

// Clone copies both parameters with fresh run state.
func (c *Residual[T]) Clone() Criterion[T] {
	clone := &Residual[T]{maximum: c.maximum, minimumBelow: c.minimumBelow}
	clone.Reset()

	return clone
}
