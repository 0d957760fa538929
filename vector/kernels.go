// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - float64 BLAS-1 style kernels used by the iterative solvers.
//   - Every kernel validates lengths first and writes nothing on error.
//
// Determinism:
//   - Fixed 0..n-1 loop order; no hidden allocations.

package vector

import "math"

// ValidateSameLen ensures all vectors are non-nil and share one length.
// Returns ErrNilVector or ErrDimensionMismatch (unwrapped; callers tag them).
// Complexity: O(k) for k vectors.
func ValidateSameLen[T Scalar](vs ...*Dense[T]) error {
	if len(vs) == 0 {
		return nil
	}
	for _, v := range vs {
		if v == nil {
			return ErrNilVector
		}
	}
	n := vs[0].Len()
	for _, v := range vs[1:] {
		if v.Len() != n {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// Dot returns Σ a_i·b_i.
// Complexity: O(n).
func Dot(a, b *Dense[float64]) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, vectorErrorf("Dot", err)
	}
	sum := 0.0
	for i, x := range a.data {
		sum += x * b.data[i]
	}

	return sum, nil
}

// Norm2 returns the Euclidean norm of v.
// Complexity: O(n).
func Norm2(v *Dense[float64]) (float64, error) {
	d, err := Dot(v, v)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(d), nil
}

// AddScaled performs y += alpha·x in place.
// Complexity: O(n).
func AddScaled(y *Dense[float64], alpha float64, x *Dense[float64]) error {
	if err := ValidateSameLen(y, x); err != nil {
		return vectorErrorf("AddScaled", err)
	}
	for i, xi := range x.data {
		y.data[i] += alpha * xi
	}

	return nil
}

// Sub writes dst = a - b. dst may alias a or b.
// Complexity: O(n).
func Sub(dst, a, b *Dense[float64]) error {
	if err := ValidateSameLen(dst, a, b); err != nil {
		return vectorErrorf("Sub", err)
	}
	for i := range dst.data {
		dst.data[i] = a.data[i] - b.data[i]
	}

	return nil
}

// Scale multiplies v by alpha in place.
// Complexity: O(n).
func Scale(v *Dense[float64], alpha float64) {
	for i := range v.data {
		v.data[i] *= alpha
	}
}

// CopyFrom copies src into dst.
// Complexity: O(n).
func CopyFrom[T Scalar](dst, src *Dense[T]) error {
	if err := ValidateSameLen(dst, src); err != nil {
		return vectorErrorf("CopyFrom", err)
	}
	copy(dst.data, src.data)

	return nil
}

// Fill sets every element of v to x.
// Complexity: O(n).
func Fill[T Scalar](v *Dense[T], x T) {
	for i := range v.data {
		v.data[i] = x
	}
}
