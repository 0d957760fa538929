// SPDX-License-Identifier: MIT

package iterate

// DefaultMaximumIterations is the iteration budget used by DefaultController.
const DefaultMaximumIterations = 1000

// IterationLimit stops the computation once the iteration number reaches a
// configured budget. It is purely comparative: evaluating the same iteration
// twice is safe and yields the same verdict.
type IterationLimit[T Scalar] struct {
	maximum int
	status  Status
}

// NewIterationLimit creates an iteration-budget criterion.
// Returns ErrInvalidMaximumIterations if maximum < 1.
func NewIterationLimit[T Scalar](maximum int) (*IterationLimit[T], error) {
	if err := validateMaximumIterations(maximum); err != nil {
		return nil, iterateErrorf("NewIterationLimit", err)
	}

	return &IterationLimit[T]{maximum: maximum, status: Continue}, nil
}

func validateMaximumIterations(maximum int) error {
	if maximum < 1 {
		return ErrInvalidMaximumIterations
	}

	return nil
}

// Maximum returns the configured iteration budget.
func (c *IterationLimit[T]) Maximum() int { return c.maximum }

// SetMaximum replaces the budget. On error the old budget is kept.
func (c *IterationLimit[T]) SetMaximum(maximum int) error {
	if err := validateMaximumIterations(maximum); err != nil {
		return iterateErrorf("IterationLimit.SetMaximum", err)
	}
	c.maximum = maximum

	return nil
}

// Evaluate returns StoppedWithoutConvergence once iteration >= Maximum(),
// Continue otherwise. The vectors are not inspected and may be nil.
func (c *IterationLimit[T]) Evaluate(iteration int, _, _, _ Vector[T]) (Status, error) {
	if err := validateIteration(iteration); err != nil {
		return c.status, iterateErrorf("IterationLimit.Evaluate", err)
	}
	if iteration >= c.maximum {
		c.status = StoppedWithoutConvergence
	} else {
		c.status = Continue
	}

	return c.status, nil
}

// Status returns the last verdict.
func (c *IterationLimit[T]) Status() Status { return c.status }

// Reset returns the criterion to Continue; the budget is kept.
func (c *IterationLimit[T]) Reset() { c.status = Continue }

// Clone copies the budget.
func (c *IterationLimit[T]) Clone() Criterion[T] {
	return &IterationLimit[T]{maximum: c.maximum, status: Continue}
}
