// SPDX-License-Identifier: MIT

package iterate

import "math"

// Divergence defaults and limits.
const (
	// DefaultMaximumRelativeIncrease is the per-step growth fraction above
	// which a residual increase counts towards divergence.
	DefaultMaximumRelativeIncrease = 0.08

	// DefaultMinimumDivergenceIterations is the default tracked window.
	DefaultMinimumDivergenceIterations = 10

	// MinimumDivergenceWindow is the smallest window accepted.
	MinimumDivergenceWindow = 3
)

// Divergence reports Diverged when the residual infinity norm has grown by
// more than maximumRelativeIncrease at every step of the last
// minimumIterations steps. The residual norms are kept in a history buffer
// of minimumIterations+1 entries, oldest first.
type Divergence[T Scalar] struct {
	// configuration
	maximumRelativeIncrease float64
	minimumIterations       int

	// progress
	history       []float64 // len == minimumIterations+1, oldest at index 0
	filled        int       // number of valid entries at the tail of history
	lastIteration int       // -1 when fresh
	status        Status
}

// NewDivergence creates a divergence-trend criterion.
// Returns ErrInvalidRelativeIncrease unless maximumRelativeIncrease is finite
// and > 0, and ErrWindowTooSmall if minimumIterations < MinimumDivergenceWindow.
func NewDivergence[T Scalar](maximumRelativeIncrease float64, minimumIterations int) (*Divergence[T], error) {
	if err := validateRelativeIncrease(maximumRelativeIncrease); err != nil {
		return nil, iterateErrorf("NewDivergence", err)
	}
	if err := validateDivergenceWindow(minimumIterations); err != nil {
		return nil, iterateErrorf("NewDivergence", err)
	}
	c := &Divergence[T]{
		maximumRelativeIncrease: maximumRelativeIncrease,
		minimumIterations:       minimumIterations,
	}
	c.Reset()

	return c, nil
}

func validateRelativeIncrease(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return ErrInvalidRelativeIncrease
	}

	return nil
}

func validateDivergenceWindow(n int) error {
	if n < MinimumDivergenceWindow {
		return ErrWindowTooSmall
	}

	return nil
}

// MaximumRelativeIncrease returns the configured growth fraction.
func (c *Divergence[T]) MaximumRelativeIncrease() float64 { return c.maximumRelativeIncrease }

// SetMaximumRelativeIncrease replaces the growth fraction. The history is kept.
func (c *Divergence[T]) SetMaximumRelativeIncrease(f float64) error {
	if err := validateRelativeIncrease(f); err != nil {
		return iterateErrorf("Divergence.SetMaximumRelativeIncrease", err)
	}
	c.maximumRelativeIncrease = f

	return nil
}

// MinimumIterations returns the tracked window length.
func (c *Divergence[T]) MinimumIterations() int { return c.minimumIterations }

// SetMinimumIterations replaces the window. The history buffer is resized
// and cleared since old entries no longer describe the new window.
func (c *Divergence[T]) SetMinimumIterations(n int) error {
	if err := validateDivergenceWindow(n); err != nil {
		return iterateErrorf("Divergence.SetMinimumIterations", err)
	}
	c.minimumIterations = n
	c.Reset()

	return nil
}

// Evaluate records ‖residual‖∞ and checks the growth trend.
//
// Iterations not after the last processed one are ignored. A NaN residual
// norm is Diverged at once and is not recorded in the history. Until the
// window is full the verdict is Continue.
func (c *Divergence[T]) Evaluate(iteration int, _, _, residual Vector[T]) (Status, error) {
	if err := validateIteration(iteration); err != nil {
		return c.status, iterateErrorf("Divergence.Evaluate", err)
	}
	if isNilVector[T](residual) {
		return c.status, iterateErrorf("Divergence.Evaluate", ErrNilVector)
	}
	if iteration <= c.lastIteration {
		return c.status, nil
	}
	c.lastIteration = iteration

	norm := residual.InfinityNorm()
	if math.IsNaN(norm) {
		c.status = Diverged

		return c.status, nil
	}
	c.push(norm)
	if c.filled < len(c.history) || !c.isDiverging() {
		c.status = Continue

		return c.status, nil
	}
	c.status = Diverged

	return c.status, nil
}

// push shifts the history left by one and appends norm.
func (c *Divergence[T]) push(norm float64) {
	copy(c.history, c.history[1:])
	c.history[len(c.history)-1] = norm
	if c.filled < len(c.history) {
		c.filled++
	}
}

// isDiverging requires every consecutive pair to grow, and to grow by more
// than maximumRelativeIncrease of the earlier value.
func (c *Divergence[T]) isDiverging() bool {
	var diff float64
	for i := 1; i < len(c.history); i++ {
		diff = c.history[i] - c.history[i-1]
		if !(diff > 0 && diff > c.maximumRelativeIncrease*c.history[i-1]) {
			return false
		}
	}

	return true
}

// Status returns the last verdict.
func (c *Divergence[T]) Status() Status { return c.status }

// Reset clears the history buffer and counters; configuration is kept.
func (c *Divergence[T]) Reset() {
	c.history = make([]float64, c.minimumIterations+1)
	c.filled = 0
	c.lastIteration = -1
	c.status = Continue
}

// Clone copies both parameters with an empty history.
func (c *Divergence[T]) Clone() Criterion[T] {
	clone := &Divergence[T]{
		maximumRelativeIncrease: c.maximumRelativeIncrease,
		minimumIterations:       c.minimumIterations,
	}
	clone.Reset()

	return clone
}
