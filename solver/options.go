// SPDX-License-Identifier: MIT

package solver

import (
	"log/slog"
	"time"
)

const (
	panicLoggerNil   = "solver: WithLogger: logger must be non-nil"
	panicReporterNil = "solver: WithReporter: reporter must be non-nil"
)

// Report summarizes one finished Solve call.
type Report struct {
	RunID      string        // UUID shared by the span and log lines
	Solver     string        // Solver.Name()
	Status     string        // final iterate.Status rendered with String()
	Iterations int           // last iteration handed to the controller
	Residual   float64       // ‖b - A·x‖∞ at the last iteration
	Duration   time.Duration // wall time of the iteration loop
}

// Option mutates solver options.
type Option func(*Options)

// Options stores the effective solver configuration.
type Options struct {
	logger   *slog.Logger
	reporter func(Report)
}

// WithLogger routes start/complete records to logger.
// Panics if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithReporter installs a callback invoked once per successful Solve.
// Panics if fn is nil.
func WithReporter(fn func(Report)) Option {
	if fn == nil {
		panic(panicReporterNil)
	}

	return func(o *Options) { o.reporter = fn }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:   slog.New(slog.DiscardHandler),
		reporter: func(Report) {},
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
