package iterate_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/itersolve/iterate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelegate_Nil(t *testing.T) {
	d, err := iterate.NewDelegate[float64](nil)
	assert.ErrorIs(t, err, iterate.ErrNilCallback)
	assert.Nil(t, d)
}

// TestDelegate_Verbatim forwards every argument and memoizes the verdict.
func TestDelegate_Verbatim(t *testing.T) {
	var gotIter int
	var gotLen int
	d, err := iterate.NewDelegate[float64](func(it int, x, b, r iterate.Vector[float64]) (iterate.Status, error) {
		gotIter, gotLen = it, b.Len()
		if it >= 2 {
			return iterate.Converged, nil
		}

		return iterate.Indeterminate, nil
	})
	require.NoError(t, err)

	s, err := d.Evaluate(1, vec(1), vec(1, 2), vec(1))
	require.NoError(t, err)
	assert.Equal(t, iterate.Indeterminate, s)
	assert.Equal(t, 1, gotIter)
	assert.Equal(t, 2, gotLen)

	s, _ = d.Evaluate(2, vec(1), vec(1), vec(1))
	assert.Equal(t, iterate.Converged, s)
	assert.Equal(t, iterate.Converged, d.Status())

	// No idempotence guard: the callback decides.
	s, _ = d.Evaluate(0, vec(1), vec(1), vec(1))
	assert.Equal(t, iterate.Indeterminate, s)
}

// TestDelegate_ErrorKeepsStatus leaves the memo untouched on error.
func TestDelegate_ErrorKeepsStatus(t *testing.T) {
	boom := errors.New("boom")
	fail := false
	d, err := iterate.NewDelegate[float64](func(int, iterate.Vector[float64], iterate.Vector[float64], iterate.Vector[float64]) (iterate.Status, error) {
		if fail {
			return iterate.Failure, boom
		}

		return iterate.Diverged, nil
	})
	require.NoError(t, err)

	_, _ = d.Evaluate(0, nil, nil, nil)
	fail = true
	s, err := d.Evaluate(1, nil, nil, nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, iterate.Diverged, s)
	assert.Equal(t, iterate.Diverged, d.Status())
}

// TestDelegate_CloneSharesCallback keeps the function, not the status.
func TestDelegate_CloneSharesCallback(t *testing.T) {
	calls := 0
	d, err := iterate.NewDelegate[float64](func(int, iterate.Vector[float64], iterate.Vector[float64], iterate.Vector[float64]) (iterate.Status, error) {
		calls++

		return iterate.Cancelled, nil
	})
	require.NoError(t, err)
	_, _ = d.Evaluate(0, nil, nil, nil)

	clone := d.Clone()
	assert.Equal(t, iterate.Continue, clone.Status())
	_, _ = clone.Evaluate(0, nil, nil, nil)
	assert.Equal(t, 2, calls)

	d.Reset()
	assert.Equal(t, iterate.Continue, d.Status())
}
