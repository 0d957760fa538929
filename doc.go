// Package itersolve is a toolkit for running iterative linear solvers under
// an explicit convergence policy.
//
// 🚀 What is in the box?
//
//	iterate/  outcome vocabulary, stop criteria and the Controller that
//	          composes them into one verdict per iteration
//	vector/   generic dense vectors (infinity norm) and float64 kernels
//	matrix/   dense coefficient matrices, MatVec, grid Laplacians
//	solver/   CG, BiCGStab and Jacobi drivers, preconditioners, registry
//	config/   viper-backed configuration and YAML problem files
//	cmd/itersolve  the command-line front end
//
// ✨ Quick start:
//
//	ctl := iterate.DefaultController[float64]()
//	status, err := solver.NewConjugateGradient().Solve(ctx, a, b, x, ctl, nil)
//
// The controller decides when to stop; solvers only iterate. Criteria are
// consulted in registration order and the first terminal verdict wins.
package itersolve
