// SPDX-License-Identifier: MIT
// Package iterate: sentinel error set.
// Every validation failure in this package matches ErrInvalidArgument via
// errors.Is, and additionally matches its specific sentinel. Numeric
// degeneracy (NaN norms) is never an error; it is reported as a Status.

package iterate

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella for every argument/configuration
// failure raised by criteria and the controller.
var ErrInvalidArgument = errors.New("iterate: invalid argument")

var (
	// ErrNegativeIteration is returned when an iteration number is < 0.
	ErrNegativeIteration = fmt.Errorf("%w: iteration number must be >= 0", ErrInvalidArgument)

	// ErrDimensionMismatch is returned when solution/source/residual lengths differ.
	ErrDimensionMismatch = fmt.Errorf("%w: vector lengths differ", ErrInvalidArgument)

	// ErrNilVector is returned when a required vector argument is nil.
	ErrNilVector = fmt.Errorf("%w: nil vector", ErrInvalidArgument)

	// ErrNoCriteria is returned by Controller.DetermineStatus when it owns no criteria.
	ErrNoCriteria = fmt.Errorf("%w: controller has no stop criteria", ErrInvalidArgument)

	// ErrInvalidMaximumIterations rejects an iteration limit below 1.
	ErrInvalidMaximumIterations = fmt.Errorf("%w: maximum iterations must be >= 1", ErrInvalidArgument)

	// ErrNegativeResidual rejects a negative or NaN residual threshold.
	ErrNegativeResidual = fmt.Errorf("%w: maximum residual must be a non-negative number", ErrInvalidArgument)

	// ErrNegativeMinimumIterations rejects a negative below-threshold run length.
	ErrNegativeMinimumIterations = fmt.Errorf("%w: minimum iterations below maximum must be >= 0", ErrInvalidArgument)

	// ErrInvalidRelativeIncrease rejects a non-positive or non-finite growth fraction.
	ErrInvalidRelativeIncrease = fmt.Errorf("%w: maximum relative increase must be finite and > 0", ErrInvalidArgument)

	// ErrWindowTooSmall rejects a divergence window shorter than MinimumDivergenceWindow.
	ErrWindowTooSmall = fmt.Errorf("%w: divergence window must be >= %d", ErrInvalidArgument, MinimumDivergenceWindow)

	// ErrNilCallback rejects a Delegate built around a nil function.
	ErrNilCallback = fmt.Errorf("%w: nil callback", ErrInvalidArgument)
)

// iterateErrorf tags an error with the operation that raised it.
func iterateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
