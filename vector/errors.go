// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Kernels return these sentinels (optionally wrapped with a "vector.Op: "
// tag); callers match with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength is returned when a requested length is negative.
	ErrBadLength = errors.New("vector: invalid length")

	// ErrOutOfRange indicates that an index is outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates that a nil *Dense was passed where a vector is required.
	ErrNilVector = errors.New("vector: nil vector")
)

// vectorErrorf wraps an underlying sentinel with the operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("vector.%s: %w", tag, err)
}
