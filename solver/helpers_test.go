package solver_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/iterate"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/vector"
	"github.com/stretchr/testify/require"
)

// newController builds limit → residual → failure over float64.
func newController(t *testing.T, maximum int, tol float64) *iterate.Controller[float64] {
	t.Helper()
	limit, err := iterate.NewIterationLimit[float64](maximum)
	require.NoError(t, err)
	residual, err := iterate.NewResidual[float64](tol, 0)
	require.NoError(t, err)

	return iterate.NewController([]iterate.Criterion[float64]{limit, residual, iterate.NewFailureDetector[float64]()})
}

func mustMatrix(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func zeros(t *testing.T, n int) *vector.Dense[float64] {
	t.Helper()
	v, err := vector.New[float64](n)
	require.NoError(t, err)

	return v
}
