package matrix_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGridLaplacian_Conn4 checks the 2×2 five-point stencil.
func TestNewGridLaplacian_Conn4(t *testing.T) {
	m, err := matrix.NewGridLaplacian(2, 2, matrix.Conn4)
	require.NoError(t, err)
	assert.Equal(t, "[4, -1, -1, 0]\n[-1, 4, 0, -1]\n[-1, 0, 4, -1]\n[0, -1, -1, 4]\n", m.String())
	assert.NoError(t, matrix.ValidateSymmetric(m, 0))
}

// TestNewGridLaplacian_Conn8 couples diagonal neighbours too.
func TestNewGridLaplacian_Conn8(t *testing.T) {
	m, err := matrix.NewGridLaplacian(2, 2, matrix.Conn8)
	require.NoError(t, err)
	v, _ := m.At(0, 3)
	assert.Equal(t, -1.0, v)
	v, _ = m.At(0, 0)
	assert.Equal(t, 8.0, v)
	assert.NoError(t, matrix.ValidateSymmetric(m, 0))
}

func TestNewGridLaplacian_BadShape(t *testing.T) {
	_, err := matrix.NewGridLaplacian(0, 3, matrix.Conn4)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestParseConnectivity(t *testing.T) {
	c, err := matrix.ParseConnectivity("8")
	require.NoError(t, err)
	assert.Equal(t, matrix.Conn8, c)
	assert.Equal(t, "8", c.String())

	_, err = matrix.ParseConnectivity("6")
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}
