// Package iterate decides, once per iteration of an iterative numeric
// solver, whether to keep going and, if not, why.
//
// What & Why:
//
//	A solver producing a new (solution, residual) pair asks a Controller for
//	a Status. The Controller fans the call out to an ordered list of stop
//	criteria and adopts the first terminal verdict. Criteria are small,
//	independently configured policies:
//
//	  IterationLimit    StoppedWithoutConvergence once the budget is spent
//	  Residual          Converged once ‖r‖∞ ≤ max·‖b‖∞ held long enough
//	  Divergence        Diverged when ‖r‖∞ grows steadily over a window
//	  FailureDetector   Failure when solution or residual holds NaN
//	  Cancellation      Cancelled when a context-backed signal fires
//	  Delegate          any caller-supplied decision function
//
// Numeric policy:
//
//	NaN is a verdict, not an error: Residual and Divergence report Diverged,
//	FailureDetector reports Failure. Errors are reserved for invalid
//	arguments (negative iteration, mismatched lengths, bad configuration)
//	and always match ErrInvalidArgument.
//
// State:
//
//	Criteria keep progress state (run counters, residual history) apart from
//	configuration. Reset clears progress only; Clone copies configuration
//	with fresh progress, so a cloned controller can drive a child
//	computation without disturbing its parent.
//
// Usage:
//
//	ctl := iterate.DefaultController[float64](iterate.WithName("cg"))
//	for k := 0; ; k++ {
//	    // ... update x and r ...
//	    status, err := ctl.DetermineStatus(k, x, b, r)
//	    if err != nil || status.IsTerminal() {
//	        break
//	    }
//	}
//
// Concurrency:
//
//	Only Cancel (on Controller and Cancellation) and Status are safe from
//	another goroutine; everything else assumes a single driving goroutine.
package iterate
