// SPDX-License-Identifier: MIT

// Package iterate: functional configuration for Controller.
//
// Design goals:
//   - No global state beyond the package metrics; each controller carries
//     its own resolved Options, copied verbatim into clones.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error), never on runtime data.
package iterate

import "log/slog"

// DefaultControllerName labels metrics and log lines of unnamed controllers.
const DefaultControllerName = "default"

const (
	panicNameEmpty = "iterate: WithName: name must be non-empty"
	panicLoggerNil = "iterate: WithLogger: logger must be non-nil"
)

// Option mutates controller options.
type Option func(*Options)

// Options stores the effective controller configuration.
type Options struct {
	name   string       // metrics/log label; DefaultControllerName
	logger *slog.Logger // terminal-verdict logging; discard by default
}

// WithName sets the label used in metrics and log lines.
// Panics if name is empty.
func WithName(name string) Option {
	if name == "" {
		panic(panicNameEmpty)
	}

	return func(o *Options) { o.name = name }
}

// WithLogger routes terminal verdicts and cancellations to logger.
// Panics if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

func defaultOptions() Options {
	return Options{
		name:   DefaultControllerName,
		logger: slog.New(slog.DiscardHandler),
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
