// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/itersolve/vector"
)

const (
	opMatVec            = "MatVec"
	opDiagonal          = "Diagonal"
	opValidateSquare    = "ValidateSquare"
	opValidateSymmetric = "ValidateSymmetric"
)

// MatVec computes dst = m·x.
// Stage 1 (Validate): non-nil operands, len(x) == Cols(), len(dst) == Rows().
// Stage 2 (Execute): Dense fast path over the flat slice, otherwise At().
// dst must not alias x. Nothing is written on validation error.
// Complexity: O(r*c) time, no allocation.
func MatVec(m Matrix, x, dst *vector.Dense[float64]) error {
	if m == nil || x == nil || dst == nil {
		return matrixErrorf(opMatVec, ErrNilMatrix)
	}
	r, c := m.Rows(), m.Cols()
	if x.Len() != c || dst.Len() != r {
		return matrixErrorf(opMatVec, ErrDimensionMismatch)
	}

	xs, out := x.Raw(), dst.Raw()
	if d, ok := m.(*Dense); ok {
		var sum float64
		for i := 0; i < r; i++ {
			sum = 0
			for j, a := range d.row(i) {
				sum += a * xs[j]
			}
			out[i] = sum
		}

		return nil
	}

	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < c; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return matrixErrorf(opMatVec, err)
			}
			sum += a * xs[j]
		}
		out[i] = sum
	}

	return nil
}

// Diagonal returns a new vector holding m[i,i] for i < min(Rows, Cols).
// Complexity: O(min(r,c)).
func Diagonal(m Matrix) (*vector.Dense[float64], error) {
	if m == nil {
		return nil, matrixErrorf(opDiagonal, ErrNilMatrix)
	}
	n := min(m.Rows(), m.Cols())
	d, err := vector.New[float64](n)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	raw := d.Raw()
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return nil, matrixErrorf(opDiagonal, err)
		}
		raw[i] = v
	}

	return d, nil
}

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare(m Matrix) error {
	if m == nil {
		return matrixErrorf(opValidateSquare, ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return matrixErrorf(opValidateSquare, ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric ensures m is square and |m[i,j] - m[j,i]| <= tol for all i<j.
// Stage 1: nil and shape checks.
// Stage 2: tolerance must be finite; a negative tol is treated as |tol|.
// Stage 3: scan the strict upper triangle; fail fast on the first violation.
// Complexity: O(n^2).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opValidateSymmetric, err)
	}
	if err := validateFinite(tol); err != nil {
		return matrixErrorf(opValidateSymmetric, err)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	if n <= 1 {
		return nil
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return matrixErrorf(opValidateSymmetric, err)
			}
			b, err := m.At(j, i)
			if err != nil {
				return matrixErrorf(opValidateSymmetric, err)
			}
			if math.Abs(a-b) > tol {
				return matrixErrorf(opValidateSymmetric, ErrAsymmetry)
			}
		}
	}

	return nil
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNaNInf
	}

	return nil
}
