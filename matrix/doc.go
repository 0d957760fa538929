// Package matrix provides the dense coefficient matrix consumed by the
// iterative solvers.
//
// What & Why:
//
//	The Matrix interface is a uniform abstraction over two-dimensional
//	float64 arrays; Dense is its row-major, flat-slice implementation.
//	Solvers need only three things from a coefficient matrix: its shape,
//	the product y = A·x (MatVec) and its diagonal (for Jacobi-style
//	preconditioning and stationary iteration).
//
// Complexity:
//
//	Rows(), Cols(), At() and Set() run in O(1) with bounds checking.
//	MatVec and ValidateSymmetric are O(r·c); Diagonal is O(min(r,c)).
package matrix
