package iterate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/itersolve/iterate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feed evaluates norms at iterations 0..n-1 and returns the last status.
func feed(t *testing.T, c iterate.Criterion[float64], norms ...float64) iterate.Status {
	t.Helper()
	var s iterate.Status
	var err error
	for i, n := range norms {
		s, err = c.Evaluate(i, nil, nil, vec(n))
		require.NoError(t, err)
	}

	return s
}

func TestNewDivergence_Invalid(t *testing.T) {
	for _, f := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err := iterate.NewDivergence[float64](f, 10)
		assert.ErrorIs(t, err, iterate.ErrInvalidRelativeIncrease, "%v", f)
	}
	for _, w := range []int{2, 0, -3} {
		_, err := iterate.NewDivergence[float64](0.08, w)
		assert.ErrorIs(t, err, iterate.ErrWindowTooSmall, "%d", w)
		assert.ErrorIs(t, err, iterate.ErrInvalidArgument)
	}
}

// TestDivergence_MonotoneRun covers the steady-growth and the
// single-dip sequences.
func TestDivergence_MonotoneRun(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 3)
	require.NoError(t, err)
	assert.Equal(t, iterate.Diverged, feed(t, c, 1.0, 1.1, 1.2, 1.3))

	c.Reset()
	assert.Equal(t, iterate.Continue, feed(t, c, 1.0, 1.1, 1.05, 1.3))
}

// TestDivergence_GrowthWithinTolerance rejects slow but steady growth.
func TestDivergence_GrowthWithinTolerance(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 3)
	require.NoError(t, err)
	assert.Equal(t, iterate.Continue, feed(t, c, 1.0, 1.05, 1.1, 1.15))
}

// TestDivergence_NeedsFullWindow ensures fewer than window+1 points never diverge.
func TestDivergence_NeedsFullWindow(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 3)
	require.NoError(t, err)
	assert.Equal(t, iterate.Continue, feed(t, c, 1, 2, 4))

	s, err := c.Evaluate(3, nil, nil, vec(8))
	require.NoError(t, err)
	assert.Equal(t, iterate.Diverged, s)
}

// TestDivergence_SlidingWindow drops the oldest entry as new ones arrive.
func TestDivergence_SlidingWindow(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 3)
	require.NoError(t, err)
	assert.Equal(t, iterate.Continue, feed(t, c, 5, 1, 2, 4))

	s, _ := c.Evaluate(4, nil, nil, vec(8))
	assert.Equal(t, iterate.Diverged, s, "window is now [1 2 4 8]")

	s, _ = c.Evaluate(5, nil, nil, vec(1))
	assert.Equal(t, iterate.Continue, s)
}

// TestDivergence_NaN reports Diverged without waiting for a full window.
func TestDivergence_NaN(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 10)
	require.NoError(t, err)

	s, err := c.Evaluate(0, nil, nil, nanVec())
	require.NoError(t, err)
	assert.Equal(t, iterate.Diverged, s)
}

// TestDivergence_NaNNotRecorded keeps a NaN out of the history, so a later
// recovery needs a full window of real growth before diverging again.
func TestDivergence_NaNNotRecorded(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 3)
	require.NoError(t, err)

	want := []iterate.Status{iterate.Continue, iterate.Diverged, iterate.Continue, iterate.Continue}
	for i, n := range []float64{1, math.NaN(), 2, 3} {
		s, err := c.Evaluate(i, nil, nil, vec(n))
		require.NoError(t, err)
		assert.Equal(t, want[i], s, "iteration %d", i)
	}

	s, err := c.Evaluate(4, nil, nil, vec(4))
	require.NoError(t, err)
	assert.Equal(t, iterate.Diverged, s, "window is now [1 2 3 4]")
}

// TestDivergence_IgnoresStaleIterations leaves history and status untouched.
func TestDivergence_IgnoresStaleIterations(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 3)
	require.NoError(t, err)
	require.Equal(t, iterate.Continue, feed(t, c, 1, 2, 4))

	s, _ := c.Evaluate(2, nil, nil, nanVec())
	assert.Equal(t, iterate.Continue, s, "stale NaN ignored")

	s, _ = c.Evaluate(3, nil, nil, vec(8))
	assert.Equal(t, iterate.Diverged, s, "history was not shifted by the stale call")
}

func TestDivergence_Validation(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 3)
	require.NoError(t, err)

	_, err = c.Evaluate(-1, nil, nil, vec(1))
	assert.ErrorIs(t, err, iterate.ErrNegativeIteration)

	_, err = c.Evaluate(0, nil, nil, nil)
	assert.ErrorIs(t, err, iterate.ErrNilVector)
}

func TestDivergence_Setters(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, c.SetMaximumRelativeIncrease(0), iterate.ErrInvalidRelativeIncrease)
	assert.Equal(t, 0.08, c.MaximumRelativeIncrease())
	require.NoError(t, c.SetMaximumRelativeIncrease(0.5))
	assert.Equal(t, iterate.Continue, feed(t, c, 1.0, 1.1, 1.2, 1.3), "10% growth is now tolerated")

	assert.ErrorIs(t, c.SetMinimumIterations(2), iterate.ErrWindowTooSmall)
	assert.Equal(t, 3, c.MinimumIterations())
	require.NoError(t, c.SetMinimumIterations(4))
	assert.Equal(t, iterate.Continue, feed(t, c, 1, 2, 4, 8), "window of 4 needs 5 points")
	s, _ := c.Evaluate(4, nil, nil, vec(16))
	assert.Equal(t, iterate.Diverged, s)
}

// TestDivergence_ResetClone clears history; the clone starts fresh.
func TestDivergence_ResetClone(t *testing.T) {
	c, err := iterate.NewDivergence[float64](0.08, 3)
	require.NoError(t, err)
	require.Equal(t, iterate.Diverged, feed(t, c, 1, 2, 4, 8))

	clone := c.Clone()
	assert.Equal(t, iterate.Continue, clone.Status())

	c.Reset()
	assert.Equal(t, clone.Status(), c.Status())
	s, _ := c.Evaluate(0, nil, nil, vec(16))
	assert.Equal(t, iterate.Continue, s, "single point after Reset cannot diverge")
}
