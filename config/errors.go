// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidConfig wraps every struct-validation failure of Config.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownKind indicates a criterion kind with no registered factory.
	ErrUnknownKind = errors.New("config: unknown criterion kind")

	// ErrInvalidProblem indicates a problem file whose matrix, rhs and
	// initial guess do not describe a square system.
	ErrInvalidProblem = errors.New("config: invalid problem")
)
