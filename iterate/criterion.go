// SPDX-License-Identifier: MIT

package iterate

import "github.com/katalvlaran/itersolve/vector"

// Scalar is the element constraint every criterion and the controller are
// parameterized over. See vector.Scalar.
type Scalar interface {
	vector.Scalar
}

// Vector is the read-only numeric-vector capability the controller consumes.
// *vector.Dense[T] satisfies it.
type Vector[T Scalar] interface {
	// Len returns the element count.
	Len() int
	// InfinityNorm returns max |x_i|, NaN if any element is NaN.
	InfinityNorm() float64
}

// Criterion is one independently configured stop policy.
//
// Evaluate inspects one iteration and returns the criterion's verdict.
// Status returns the last verdict without recomputing it. Reset clears
// progress state (counters, history) and never touches configuration.
// Clone returns an instance with the same configuration and fresh progress
// state, so that Clone().Status() == Reset().Status().
//
// Implementations are not safe for concurrent use unless documented.
type Criterion[T Scalar] interface {
	Evaluate(iteration int, solution, source, residual Vector[T]) (Status, error)
	Status() Status
	Reset()
	Clone() Criterion[T]
}

// validateIteration rejects negative iteration numbers.
func validateIteration(iteration int) error {
	if iteration < 0 {
		return ErrNegativeIteration
	}

	return nil
}

// isNilVector reports a nil interface or a typed nil *vector.Dense.
func isNilVector[T Scalar](v Vector[T]) bool {
	if v == nil {
		return true
	}
	d, ok := v.(*vector.Dense[T])

	return ok && d == nil
}

// validateSameLen checks that every vector is present and of equal length.
func validateSameLen[T Scalar](vs ...Vector[T]) error {
	for _, v := range vs {
		if isNilVector[T](v) {
			return ErrNilVector
		}
	}
	for _, v := range vs[1:] {
		if v.Len() != vs[0].Len() {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// Criterion kinds, as used in log attributes and configuration files.
const (
	KindIterationLimit = "iteration_limit"
	KindResidual       = "residual"
	KindDivergence     = "divergence"
	KindFailure        = "failure"
	KindCancellation   = "cancellation"
	KindDelegate       = "delegate"
)
