// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/vector"
)

// Preconditioner approximates M⁻¹ for some M ≈ A.
//
// Initialize is called once per Solve with the coefficient matrix;
// Approximate writes dst = M⁻¹·rhs and must not retain either vector.
type Preconditioner interface {
	Name() string
	Initialize(a matrix.Matrix) error
	Approximate(rhs, dst *vector.Dense[float64]) error
}

// Identity is the no-op preconditioner M = I.
type Identity struct{}

// NewIdentity returns the identity preconditioner.
func NewIdentity() *Identity { return &Identity{} }

// Name returns "identity".
func (*Identity) Name() string { return "identity" }

// Initialize accepts any matrix.
func (*Identity) Initialize(matrix.Matrix) error { return nil }

// Approximate copies rhs into dst.
func (*Identity) Approximate(rhs, dst *vector.Dense[float64]) error {
	if err := vector.CopyFrom(dst, rhs); err != nil {
		return solverErrorf("Identity.Approximate", err)
	}

	return nil
}

// Diagonal is the Jacobi preconditioner M = diag(A).
type Diagonal struct {
	inverse []float64 // 1/a_ii, nil until Initialize succeeds
}

// NewDiagonal returns an uninitialized diagonal preconditioner.
func NewDiagonal() *Diagonal { return &Diagonal{} }

// Name returns "diagonal".
func (*Diagonal) Name() string { return "diagonal" }

// Initialize stores the reciprocal diagonal of a.
// Stage 1: a must be square.
// Stage 2: every a_ii must be finite and non-zero (ErrZeroDiagonal).
// On error the previous state is kept.
// Complexity: O(n).
func (p *Diagonal) Initialize(a matrix.Matrix) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return solverErrorf("Diagonal.Initialize", err)
	}
	d, err := matrix.Diagonal(a)
	if err != nil {
		return solverErrorf("Diagonal.Initialize", err)
	}
	inv := d.Raw()
	for i, v := range inv {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return solverErrorf("Diagonal.Initialize", ErrZeroDiagonal)
		}
		inv[i] = 1 / v
	}
	p.inverse = inv

	return nil
}

// Approximate writes dst_i = rhs_i / a_ii.
// Complexity: O(n).
func (p *Diagonal) Approximate(rhs, dst *vector.Dense[float64]) error {
	if p.inverse == nil {
		return solverErrorf("Diagonal.Approximate", ErrNotInitialized)
	}
	if err := vector.ValidateSameLen(rhs, dst); err != nil {
		return solverErrorf("Diagonal.Approximate", err)
	}
	if rhs.Len() != len(p.inverse) {
		return solverErrorf("Diagonal.Approximate", ErrDimensionMismatch)
	}
	in, out := rhs.Raw(), dst.Raw()
	for i, w := range p.inverse {
		out[i] = w * in[i]
	}

	return nil
}
