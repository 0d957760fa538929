package solver_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(setups []solver.Setup) []string {
	out := make([]string, len(setups))
	for i, s := range setups {
		out[i] = s.Name
	}

	return out
}

// TestSetups_RankOrder checks the built-in ranking and exclusion.
func TestSetups_RankOrder(t *testing.T) {
	assert.Equal(t, []string{"cg", "bicgstab", "jacobi"}, names(solver.Setups()))
	assert.Equal(t, []string{"bicgstab"}, names(solver.Setups("cg", "jacobi")))
}

func TestLookup(t *testing.T) {
	s, err := solver.Lookup(solver.SetupBiCGStab)
	require.NoError(t, err)
	assert.Equal(t, "BiCGStab", s.NewSolver().Name())
	assert.Equal(t, "diagonal", s.NewPreconditioner().Name())

	_, err = solver.Lookup("gmres")
	assert.ErrorIs(t, err, solver.ErrUnknownSolver)
}

// TestRegistry_Register covers validation, duplicates and name tie-breaks.
func TestRegistry_Register(t *testing.T) {
	r := solver.NewRegistry()
	mk := func(name string, speed, rel float64) solver.Setup {
		return solver.Setup{
			Name:              name,
			SolutionSpeed:     speed,
			Reliability:       rel,
			NewSolver:         func(opts ...solver.Option) solver.Solver { return solver.NewJacobi(opts...) },
			NewPreconditioner: func() solver.Preconditioner { return solver.NewIdentity() },
		}
	}

	require.NoError(t, r.Register(mk("b", 1, 1)))
	require.NoError(t, r.Register(mk("a", 2, 2)))
	require.NoError(t, r.Register(mk("c", 1, 2)))
	assert.Equal(t, []string{"c", "a", "b"}, names(r.Setups()))

	assert.ErrorIs(t, r.Register(mk("a", 1, 1)), solver.ErrDuplicateSetup)
	assert.ErrorIs(t, r.Register(mk("", 1, 1)), solver.ErrInvalidSetup)
	assert.ErrorIs(t, r.Register(mk("z", 0, 1)), solver.ErrInvalidSetup)

	bad := mk("y", 1, 1)
	bad.NewSolver = nil
	assert.ErrorIs(t, r.Register(bad), solver.ErrInvalidSetup)
	assert.Len(t, r.Setups(), 3)
}
