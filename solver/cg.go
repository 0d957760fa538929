// SPDX-License-Identifier: MIT

package solver

import (
	"context"

	"github.com/katalvlaran/itersolve/iterate"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/vector"
)

// ConjugateGradient is the preconditioned conjugate gradient method.
// A must be symmetric positive definite; this is not verified (use
// matrix.ValidateSymmetric beforehand when in doubt).
type ConjugateGradient struct {
	opts Options
}

// NewConjugateGradient creates a CG solver.
func NewConjugateGradient(opts ...Option) *ConjugateGradient {
	return &ConjugateGradient{opts: gatherOptions(opts...)}
}

// Name returns "ConjugateGradient".
func (*ConjugateGradient) Name() string { return "ConjugateGradient" }

// Solve runs CG from the current x. A nil pre means Identity.
// Per iteration: one MatVec, two dot products, one Approximate.
func (s *ConjugateGradient) Solve(ctx context.Context, a matrix.Matrix, b, x *vector.Dense[float64],
	ctl *iterate.Controller[float64], pre Preconditioner) (iterate.Status, error) {
	if pre == nil {
		pre = NewIdentity()
	}

	return drive(ctx, s.Name(), s.opts, problem{a: a, b: b, x: x, ctl: ctl, pre: pre}, conjugateGradient)
}

// conjugateGradient:
//
//	r = b - A·x; z = M⁻¹r; p = z
//	repeat: q = A·p; α = (r·z)/(p·q); x += αp; r -= αq
//	        z = M⁻¹r; β = (r·z)_new/(r·z)_old; p = z + βp
//
// p·q == 0 or (r·z)_old == 0 is a breakdown.
func conjugateGradient(p *problem) (outcome, error) {
	var k kernels
	r, z, dir, q := p.scratch(), p.scratch(), p.scratch(), p.scratch()

	k.residual(p, r)
	if k.err != nil {
		return outcome{}, k.err
	}
	status, err := p.check(0, r)
	if err != nil || status.IsTerminal() {
		return outcome{status: status, residual: r}, err
	}

	k.precondition(p.pre, r, z)
	k.copy(dir, z)
	rz := k.dot(r, z)
	if k.err != nil {
		return outcome{}, k.err
	}

	for it := 1; ; it++ {
		k.matVec(p.a, dir, q)
		pq := k.dot(dir, q)
		if k.err != nil {
			return outcome{}, k.err
		}
		if pq == 0 {
			return outcome{status: iterate.Failure, iteration: it - 1, residual: r}, nil
		}
		alpha := rz / pq
		k.axpy(p.x, alpha, dir)
		k.axpy(r, -alpha, q)
		if k.err != nil {
			return outcome{}, k.err
		}

		status, err = p.check(it, r)
		if err != nil || status.IsTerminal() {
			return outcome{status: status, iteration: it, residual: r}, err
		}

		k.precondition(p.pre, r, z)
		rzNew := k.dot(r, z)
		if k.err != nil {
			return outcome{}, k.err
		}
		if rz == 0 {
			return outcome{status: iterate.Failure, iteration: it, residual: r}, nil
		}
		beta := rzNew / rz
		rz = rzNew
		vector.Scale(dir, beta)
		k.axpy(dir, 1, z)
	}
}
