// SPDX-License-Identifier: MIT

package solver

import (
	"context"

	"github.com/katalvlaran/itersolve/iterate"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/vector"
)

// BiCGStab is the preconditioned bi-conjugate gradient stabilized method
// for general non-singular systems.
type BiCGStab struct {
	opts Options
}

// NewBiCGStab creates a BiCGStab solver.
func NewBiCGStab(opts ...Option) *BiCGStab {
	return &BiCGStab{opts: gatherOptions(opts...)}
}

// Name returns "BiCGStab".
func (*BiCGStab) Name() string { return "BiCGStab" }

// Solve runs BiCGStab from the current x. A nil pre means Identity.
// Per iteration: two MatVec, four dot products, two Approximate.
func (s *BiCGStab) Solve(ctx context.Context, a matrix.Matrix, b, x *vector.Dense[float64],
	ctl *iterate.Controller[float64], pre Preconditioner) (iterate.Status, error) {
	if pre == nil {
		pre = NewIdentity()
	}

	return drive(ctx, s.Name(), s.opts, problem{a: a, b: b, x: x, ctl: ctl, pre: pre}, biCGStab)
}

// biCGStab follows van der Vorst's right-preconditioned formulation with
// shadow residual r̂ = r₀. Breakdowns: ρ == 0, r̂·v == 0, and ω == 0 after
// an iteration the controller did not stop.
func biCGStab(p *problem) (outcome, error) {
	var k kernels
	r, shadow := p.scratch(), p.scratch()
	dir, v := p.scratch(), p.scratch()
	dirHat, s, sHat, t := p.scratch(), p.scratch(), p.scratch(), p.scratch()

	k.residual(p, r)
	if k.err != nil {
		return outcome{}, k.err
	}
	status, err := p.check(0, r)
	if err != nil || status.IsTerminal() {
		return outcome{status: status, residual: r}, err
	}
	k.copy(shadow, r)

	rho, alpha, omega := 1.0, 1.0, 1.0
	for it := 1; ; it++ {
		rhoNew := k.dot(shadow, r)
		if k.err != nil {
			return outcome{}, k.err
		}
		if rhoNew == 0 {
			return outcome{status: iterate.Failure, iteration: it - 1, residual: r}, nil
		}

		// dir = r + β(dir - ω·v)
		if it == 1 {
			k.copy(dir, r)
		} else {
			beta := (rhoNew / rho) * (alpha / omega)
			k.axpy(dir, -omega, v)
			vector.Scale(dir, beta)
			k.axpy(dir, 1, r)
		}

		k.precondition(p.pre, dir, dirHat)
		k.matVec(p.a, dirHat, v)
		sv := k.dot(shadow, v)
		if k.err != nil {
			return outcome{}, k.err
		}
		if sv == 0 {
			return outcome{status: iterate.Failure, iteration: it - 1, residual: r}, nil
		}
		alpha = rhoNew / sv

		// s = r - α·v
		k.copy(s, r)
		k.axpy(s, -alpha, v)

		k.precondition(p.pre, s, sHat)
		k.matVec(p.a, sHat, t)
		tt := k.dot(t, t)
		ts := k.dot(t, s)
		if k.err != nil {
			return outcome{}, k.err
		}
		omega = 0
		if tt != 0 {
			omega = ts / tt
		}

		// x += α·dirHat + ω·sHat; r = s - ω·t
		k.axpy(p.x, alpha, dirHat)
		k.axpy(p.x, omega, sHat)
		k.copy(r, s)
		k.axpy(r, -omega, t)
		if k.err != nil {
			return outcome{}, k.err
		}

		status, err = p.check(it, r)
		if err != nil || status.IsTerminal() {
			return outcome{status: status, iteration: it, residual: r}, err
		}
		if omega == 0 {
			return outcome{status: iterate.Failure, iteration: it, residual: r}, nil
		}
		rho = rhoNew
	}
}
