// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
// Every message is prefixed with "solver: ..."; call sites add context with
// solverErrorf and callers match with errors.Is.

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument indicates a nil matrix, vector or controller.
	ErrNilArgument = errors.New("solver: nil argument")

	// ErrDimensionMismatch indicates len(b), len(x) and the matrix order disagree.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrZeroDiagonal indicates a zero (or non-finite) diagonal entry where
	// the diagonal must be inverted.
	ErrZeroDiagonal = errors.New("solver: zero or non-finite diagonal entry")

	// ErrNotInitialized indicates Approximate was called before Initialize.
	ErrNotInitialized = errors.New("solver: preconditioner not initialized")

	// ErrUnknownSolver indicates a registry lookup for an unregistered name.
	ErrUnknownSolver = errors.New("solver: unknown solver")

	// ErrInvalidSetup indicates a Setup with an empty name, missing
	// constructors or non-positive ranking values.
	ErrInvalidSetup = errors.New("solver: invalid setup")

	// ErrDuplicateSetup indicates a second registration under one name.
	ErrDuplicateSetup = errors.New("solver: duplicate setup")
)

// solverErrorf wraps an underlying error with an operation tag.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
