// SPDX-License-Identifier: MIT

// Package vector: Dense is the concrete contiguous vector over a Scalar type.
package vector

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Scalar is the element constraint shared by vectors and the iteration
// controller. Every member is comparable and formats with %v; no arithmetic
// on the element type is required by consumers that only read norms.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Dense is a fixed-length vector backed by a flat slice.
// The length never changes after construction.
type Dense[T Scalar] struct {
	data []T // backing storage, len(data) == Len()
}

// New creates a zero vector of length n.
// Returns ErrBadLength if n < 0. A zero-length vector is legal.
// Complexity: O(n).
func New[T Scalar](n int) (*Dense[T], error) {
	if n < 0 {
		return nil, vectorErrorf("New", ErrBadLength)
	}

	return &Dense[T]{data: make([]T, n)}, nil
}

// FromSlice creates a vector holding a copy of values.
// Later mutation of values does not affect the vector.
// Complexity: O(n).
func FromSlice[T Scalar](values []T) *Dense[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Dense[T]{data: data}
}

// Len returns the number of elements.
// Complexity: O(1).
func (v *Dense[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i or ErrOutOfRange.
// Complexity: O(1).
func (v *Dense[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T

		return zero, vectorErrorf(fmt.Sprintf("At(%d)", i), ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns x at index i or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Dense[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(fmt.Sprintf("Set(%d)", i), ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// InfinityNorm returns max_i |v_i|.
//
// Behavior highlights:
//   - NaN anywhere yields NaN (no silent skipping).
//   - +Inf magnitude yields +Inf unless a NaN is also present.
//   - The empty vector has norm 0.
//
// Complexity: O(n).
func (v *Dense[T]) InfinityNorm() float64 {
	norm := 0.0
	var mag float64
	for _, x := range v.data {
		mag = magnitude(x)
		if math.IsNaN(mag) {
			return math.NaN()
		}
		if mag > norm {
			norm = mag
		}
	}

	return norm
}

// Clone returns an independent deep copy.
// Complexity: O(n).
func (v *Dense[T]) Clone() *Dense[T] {
	return FromSlice(v.data)
}

// Raw exposes the backing slice. Writes through it mutate the vector;
// callers must not append to it.
func (v *Dense[T]) Raw() []T {
	return v.data
}

// String implements fmt.Stringer, e.g. "[1, 2.5, 3]".
func (v *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteByte(']')

	return sb.String()
}

// magnitude returns |x| as float64 for every Scalar member.
// A complex value with a NaN part and no infinite part reports NaN.
func magnitude[T Scalar](x T) float64 {
	switch t := any(x).(type) {
	case float32:
		return math.Abs(float64(t))
	case float64:
		return math.Abs(t)
	case complex64:
		return complexMagnitude(complex128(t))
	case complex128:
		return complexMagnitude(t)
	}

	return math.NaN() // unreachable for the closed Scalar set
}

// complexMagnitude is cmplx.Abs with NaN taking priority over Inf, so the
// norm of a vector containing NaN+Inf·i is NaN like its real counterpart.
func complexMagnitude(z complex128) float64 {
	if math.IsNaN(real(z)) || math.IsNaN(imag(z)) {
		return math.NaN()
	}

	return cmplx.Abs(z)
}
