package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/itersolve/config"
	"github.com/katalvlaran/itersolve/matrix"
)

func TestLoadProblem(t *testing.T) {
	path := writeFile(t, "p.yaml", `
name: small
matrix:
  - [4, 1]
  - [1, 3]
rhs: [1, 2]
`)
	p, err := config.LoadProblem(path)
	require.NoError(t, err)
	assert.Equal(t, "small", p.Name)

	a, b, x, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, []float64{1, 2}, b.Raw())
	assert.Equal(t, []float64{0, 0}, x.Raw())
}

// TestLoadProblem_InitialAndName keeps the initial guess and names by path.
func TestLoadProblem_InitialAndName(t *testing.T) {
	path := writeFile(t, "p.yaml", "matrix: [[2]]\nrhs: [1]\ninitial: [0.25]\n")
	p, err := config.LoadProblem(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Name)

	_, _, x, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25}, x.Raw())
}

func TestLoadProblem_Invalid(t *testing.T) {
	cases := map[string]string{
		"ragged":        "matrix: [[1, 2], [3]]\nrhs: [1, 2]\n",
		"rectangular":   "matrix: [[1, 2]]\nrhs: [1]\n",
		"short rhs":     "matrix: [[1, 0], [0, 1]]\nrhs: [1]\n",
		"short initial": "matrix: [[1, 0], [0, 1]]\nrhs: [1, 1]\ninitial: [0]\n",
		"empty":         "name: nothing\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadProblem(writeFile(t, "p.yaml", body))
			assert.ErrorIs(t, err, config.ErrInvalidProblem)
		})
	}

	_, err := config.LoadProblem(writeFile(t, "p.yaml", "matrix: [[1\n"))
	assert.Error(t, err)
}

// TestSaveProblem_GridLaplacian writes a generated system and reads it back.
func TestSaveProblem_GridLaplacian(t *testing.T) {
	a, err := matrix.NewGridLaplacian(2, 2, matrix.Conn4)
	require.NoError(t, err)
	p, err := config.FromMatrix("grid", a, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, config.SaveProblem(path, p))

	got, err := config.LoadProblem(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = config.FromMatrix("bad", a, []float64{1})
	assert.ErrorIs(t, err, config.ErrInvalidProblem)
}
