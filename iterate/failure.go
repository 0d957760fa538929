// SPDX-License-Identifier: MIT

package iterate

import "math"

// FailureDetector reports Failure when the solution or residual contains NaN.
// It has no configuration.
type FailureDetector[T Scalar] struct {
	lastIteration int
	status        Status
}

// NewFailureDetector creates a non-finite-value detector.
func NewFailureDetector[T Scalar]() *FailureDetector[T] {
	return &FailureDetector[T]{lastIteration: -1, status: Continue}
}

// Evaluate checks ‖solution‖∞ and ‖residual‖∞ for NaN.
// Fails on a negative iteration or when solution and residual lengths
// differ. Iterations not after the last processed one return the memoized
// status.
func (c *FailureDetector[T]) Evaluate(iteration int, solution, _, residual Vector[T]) (Status, error) {
	if err := validateIteration(iteration); err != nil {
		return c.status, iterateErrorf("FailureDetector.Evaluate", err)
	}
	if err := validateSameLen[T](solution, residual); err != nil {
		return c.status, iterateErrorf("FailureDetector.Evaluate", err)
	}
	if iteration <= c.lastIteration {
		return c.status, nil
	}
	c.lastIteration = iteration

	if math.IsNaN(solution.InfinityNorm()) || math.IsNaN(residual.InfinityNorm()) {
		c.status = Failure
	} else {
		c.status = Continue
	}

	return c.status, nil
}

// Status returns the last verdict.
func (c *FailureDetector[T]) Status() Status { return c.status }

// Reset forgets the last processed iteration.
func (c *FailureDetector[T]) Reset() {
	c.lastIteration = -1
	c.status = Continue
}

// Clone returns a fresh detector.
func (c *FailureDetector[T]) Clone() Criterion[T] { return NewFailureDetector[T]() }
