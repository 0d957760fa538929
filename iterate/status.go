// SPDX-License-Identifier: MIT

package iterate

import "fmt"

// Status is the closed outcome vocabulary shared by criteria and the controller.
//
// Only Indeterminate and Continue (alias Running) are non-terminal; every
// other value stops controller composition and tells the solver to stop.
type Status int

const (
	// Indeterminate means no decision has been made yet.
	Indeterminate Status = iota
	// Continue means keep iterating.
	Continue
	// Converged means the stop condition for success was met.
	Converged
	// Diverged means the residual is growing or is NaN.
	Diverged
	// Failure means non-finite values were encountered in the iterates.
	Failure
	// StoppedWithoutConvergence means the iteration budget is exhausted.
	StoppedWithoutConvergence
	// Cancelled means an external cancel request was observed.
	Cancelled
)

// Running is the controller-level name for Continue.
const Running = Continue

var statusNames = [...]string{
	Indeterminate:             "Indeterminate",
	Continue:                  "Continue",
	Converged:                 "Converged",
	Diverged:                  "Diverged",
	Failure:                   "Failure",
	StoppedWithoutConvergence: "StoppedWithoutConvergence",
	Cancelled:                 "Cancelled",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// IsTerminal reports whether s ends controller composition.
func (s Status) IsTerminal() bool {
	return s != Indeterminate && s != Continue
}

// ParseStatus is the inverse of String. "Running" is accepted for Continue.
func ParseStatus(name string) (Status, error) {
	if name == "Running" {
		return Running, nil
	}
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}

	return Indeterminate, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, name)
}
