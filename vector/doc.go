// Package vector provides the numeric-vector capability consumed by the
// iteration controller and the float64 kernels used by the solvers.
//
// What & Why:
//
//	Dense[T] is a fixed-length, contiguous vector over any Scalar element
//	type (float32, float64, complex64, complex128). The controller only ever
//	reads two facts from it: the element count and the infinity norm. The
//	solvers additionally need a handful of BLAS-1 style kernels (Dot,
//	AddScaled, Sub, Scale) which are provided for float64 only.
//
// Numeric policy:
//
//	InfinityNorm propagates NaN: a single NaN element yields NaN, so callers
//	can detect a blown-up iteration with math.IsNaN on the norm.
//	Kernels never panic on user input; length mismatches return
//	ErrDimensionMismatch and out-of-range indices return ErrOutOfRange.
//
// Complexity:
//
//	Len is O(1); InfinityNorm, Dot, AddScaled, Sub, Scale and Clone are O(n).
package vector
