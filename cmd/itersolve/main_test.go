package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestSolvers_ListsRankOrder(t *testing.T) {
	out, _, err := run(t, "solvers")
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[1]), "cg")
	assert.Contains(t, string(lines[2]), "bicgstab")
	assert.Contains(t, string(lines[3]), "jacobi")

	out, _, err = run(t, "solvers", "--exclude", "cg,jacobi")
	require.NoError(t, err)
	assert.NotContains(t, out, "jacobi")
	assert.Contains(t, out, "bicgstab")
}

// TestSolve_Batch solves two problems concurrently and prints both in order.
func TestSolve_Batch(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "spd.yaml", "name: spd\nmatrix: [[4, 1], [1, 3]]\nrhs: [1, 2]\n")
	p2 := writeFile(t, dir, "diag.yaml", "name: diag\nmatrix: [[2, 0], [0, 4]]\nrhs: [2, 2]\n")

	out, _, err := run(t, "solve", "--workers", "2", p1, p2)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ spd: Converged")
	assert.Contains(t, out, "✓ diag: Converged")
	assert.Contains(t, out, "x = [1, 0.5]")
	assert.Less(t, bytes.Index([]byte(out), []byte("spd")), bytes.Index([]byte(out), []byte("diag")))
}

// TestSolve_NotConverged exits with an error and reports the stop status.
func TestSolve_NotConverged(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "itersolve.yaml", `
controller:
  name: tight
  criteria:
    - kind: iteration_limit
      maximum_iterations: 2
    - kind: residual
solver:
  name: jacobi
logging:
  level: error
`)
	p := writeFile(t, dir, "p.yaml", "name: slow\nmatrix: [[4, 1], [2, 5]]\nrhs: [1, 2]\n")

	out, _, err := run(t, "--config", cfg, "solve", p)
	require.ErrorIs(t, err, errNotConverged)
	assert.Contains(t, out, "⚠ slow: StoppedWithoutConvergence after 2 iterations")
}

func TestSolve_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "p.yaml", "matrix: [[1]]\nrhs: [1]\n")

	_, _, err := run(t, "solve")
	assert.Error(t, err, "at least one problem is required")

	_, _, err = run(t, "solve", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, _, err = run(t, "solve", "--solver", "gmres", good)
	assert.Error(t, err)

	_, _, err = run(t, "solve", "--workers", "0", good)
	assert.Error(t, err)
}

// TestGenerate_ThenSolve round-trips a generated grid problem through every setup.
func TestGenerate_ThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	out, _, err := run(t, "generate", "--width", "3", "--height", "3", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(9 unknowns)")

	for _, name := range []string{"cg", "bicgstab", "jacobi"} {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, "solve", "--solver", name, path)
			require.NoError(t, err)
			assert.Contains(t, out, "✓ grid-3x3-conn4: Converged")
		})
	}

	_, _, err = run(t, "generate", "--conn", "6", "-o", path)
	assert.Error(t, err)
}
