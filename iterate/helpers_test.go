package iterate_test

import (
	"math"

	"github.com/katalvlaran/itersolve/vector"
)

// vec builds a float64 vector from literal values.
func vec(values ...float64) *vector.Dense[float64] {
	return vector.FromSlice(values)
}

// constant returns an n-vector filled with x.
func constant(n int, x float64) *vector.Dense[float64] {
	v := make([]float64, n)
	for i := range v {
		v[i] = x
	}

	return vector.FromSlice(v)
}

// nanVec returns a 3-vector whose middle element is NaN.
func nanVec() *vector.Dense[float64] {
	return vec(1, math.NaN(), 1)
}

// vectorOf builds a complex128 vector.
func vectorOf(values ...complex128) *vector.Dense[complex128] {
	return vector.FromSlice(values)
}
