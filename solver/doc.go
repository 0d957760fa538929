// Package solver drives iterative linear solvers under an iterate.Controller.
//
// What & Why:
//
//	Each Solver performs one update of the approximate solution x of A·x = b
//	per iteration and hands (x, b, r = b - A·x) to the controller, stopping
//	as soon as the controller reports a terminal status. Stopping policy
//	lives entirely in the controller; solvers only report numeric breakdown
//	(a vanishing denominator) as iterate.Failure.
//
// Implementations:
//
//	ConjugateGradient  symmetric positive definite systems
//	BiCGStab           general non-singular systems
//	Jacobi             preconditioned Richardson iteration; with the
//	                   Diagonal preconditioner this is the Jacobi method
//
// Preconditioners: Identity and Diagonal. A nil preconditioner is Identity
// for the Krylov solvers and Diagonal for Jacobi.
//
// Registry: setups are registered statically by name and ranked by
// SolutionSpeed/Reliability (lower is preferred).
//
// Observability: every Solve opens an OpenTelemetry span
// "solver.<Name>.Solve", observes iteration counts in Prometheus and logs
// start/complete at Debug with a per-run UUID.
package solver
