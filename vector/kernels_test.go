package vector_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	a := vector.FromSlice([]float64{1, 2, 3})
	b := vector.FromSlice([]float64{4, -5, 6})

	d, err := vector.Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, 12.0, d)

	_, err = vector.Dot(a, vector.FromSlice([]float64{1}))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.Dot(a, nil)
	assert.ErrorIs(t, err, vector.ErrNilVector)
}

func TestNorm2(t *testing.T) {
	n, err := vector.Norm2(vector.FromSlice([]float64{3, 4}))
	require.NoError(t, err)
	assert.Equal(t, 5.0, n)
}

// TestAddScaled_NoWriteOnError ensures a failed kernel leaves y untouched.
func TestAddScaled_NoWriteOnError(t *testing.T) {
	y := vector.FromSlice([]float64{1, 1})
	require.NoError(t, vector.AddScaled(y, 2, vector.FromSlice([]float64{1, 3})))
	assert.Equal(t, []float64{3, 7}, y.Raw())

	err := vector.AddScaled(y, 2, vector.FromSlice([]float64{1}))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	assert.Equal(t, []float64{3, 7}, y.Raw())
}

// TestSub_Aliasing verifies dst may alias an operand.
func TestSub_Aliasing(t *testing.T) {
	a := vector.FromSlice([]float64{5, 5})
	b := vector.FromSlice([]float64{1, 2})
	require.NoError(t, vector.Sub(a, a, b))
	assert.Equal(t, []float64{4, 3}, a.Raw())
}

func TestScaleCopyFill(t *testing.T) {
	v := vector.FromSlice([]float64{1, -2})
	vector.Scale(v, -3)
	assert.Equal(t, []float64{-3, 6}, v.Raw())

	dst, err := vector.New[float64](2)
	require.NoError(t, err)
	require.NoError(t, vector.CopyFrom(dst, v))
	assert.Equal(t, v.Raw(), dst.Raw())

	vector.Fill(dst, 0.5)
	assert.Equal(t, []float64{0.5, 0.5}, dst.Raw())

	assert.ErrorIs(t, vector.CopyFrom(dst, vector.FromSlice([]float64{1})), vector.ErrDimensionMismatch)
}
