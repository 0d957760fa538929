package solver_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/solver"
	"github.com/katalvlaran/itersolve/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_Approximate(t *testing.T) {
	p := solver.NewIdentity()
	require.NoError(t, p.Initialize(nil))
	dst := zeros(t, 2)
	require.NoError(t, p.Approximate(vector.FromSlice([]float64{3, -1}), dst))
	assert.Equal(t, []float64{3, -1}, dst.Raw())
	assert.Equal(t, "identity", p.Name())
}

func TestDiagonal_Approximate(t *testing.T) {
	p := solver.NewDiagonal()
	dst := zeros(t, 2)
	assert.ErrorIs(t, p.Approximate(dst, dst), solver.ErrNotInitialized)

	require.NoError(t, p.Initialize(mustMatrix(t, [][]float64{{4, 1}, {1, -2}})))
	require.NoError(t, p.Approximate(vector.FromSlice([]float64{2, 3}), dst))
	assert.Equal(t, []float64{0.5, -1.5}, dst.Raw())

	assert.ErrorIs(t, p.Approximate(zeros(t, 3), zeros(t, 3)), solver.ErrDimensionMismatch)
}

// TestDiagonal_InitializeKeepsStateOnError rejects zero pivots.
func TestDiagonal_InitializeKeepsStateOnError(t *testing.T) {
	p := solver.NewDiagonal()
	require.NoError(t, p.Initialize(mustMatrix(t, [][]float64{{2}})))
	assert.ErrorIs(t, p.Initialize(mustMatrix(t, [][]float64{{0}})), solver.ErrZeroDiagonal)

	dst := zeros(t, 1)
	require.NoError(t, p.Approximate(vector.FromSlice([]float64{1}), dst))
	assert.Equal(t, []float64{0.5}, dst.Raw())
}
