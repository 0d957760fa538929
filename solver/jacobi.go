// SPDX-License-Identifier: MIT

package solver

import (
	"context"

	"github.com/katalvlaran/itersolve/iterate"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/vector"
)

// Jacobi is the stationary iteration x ← x + M⁻¹(b - A·x).
// With the default Diagonal preconditioner this is the classical Jacobi
// method, which converges for strictly diagonally dominant A. Any other
// preconditioner turns it into preconditioned Richardson iteration.
type Jacobi struct {
	opts Options
}

// NewJacobi creates a Jacobi solver.
func NewJacobi(opts ...Option) *Jacobi {
	return &Jacobi{opts: gatherOptions(opts...)}
}

// Name returns "Jacobi".
func (*Jacobi) Name() string { return "Jacobi" }

// Solve iterates from the current x. A nil pre means Diagonal; a zero
// diagonal entry is reported as ErrZeroDiagonal before iterating.
// Per iteration: one MatVec, one Approximate.
func (s *Jacobi) Solve(ctx context.Context, a matrix.Matrix, b, x *vector.Dense[float64],
	ctl *iterate.Controller[float64], pre Preconditioner) (iterate.Status, error) {
	if pre == nil {
		pre = NewDiagonal()
	}

	return drive(ctx, s.Name(), s.opts, problem{a: a, b: b, x: x, ctl: ctl, pre: pre}, jacobi)
}

func jacobi(p *problem) (outcome, error) {
	var k kernels
	r, z := p.scratch(), p.scratch()

	for it := 0; ; it++ {
		if it > 0 {
			k.precondition(p.pre, r, z)
			k.axpy(p.x, 1, z)
		}
		k.residual(p, r)
		if k.err != nil {
			return outcome{}, k.err
		}

		status, err := p.check(it, r)
		if err != nil || status.IsTerminal() {
			return outcome{status: status, iteration: it, residual: r}, err
		}
	}
}
