// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/itersolve/iterate"
)

// factory builds one criterion from its configuration.
type factory func(c CriterionConfig, parent context.Context) (iterate.Criterion[float64], error)

// factories maps each configuration kind to its constructor.
var factories = map[string]factory{
	iterate.KindIterationLimit: func(c CriterionConfig, _ context.Context) (iterate.Criterion[float64], error) {
		limit, err := iterate.NewIterationLimit[float64](orDefault(c.MaximumIterations, iterate.DefaultMaximumIterations))
		if err != nil {
			return nil, err
		}

		return limit, nil
	},
	iterate.KindResidual: func(c CriterionConfig, _ context.Context) (iterate.Criterion[float64], error) {
		maximum := iterate.DefaultMaximumResidual
		if c.MaximumResidual != nil {
			maximum = *c.MaximumResidual
		}
		residual, err := iterate.NewResidual[float64](maximum, c.MinimumIterationsBelowMaximum)
		if err != nil {
			return nil, err
		}

		return residual, nil
	},
	iterate.KindDivergence: func(c CriterionConfig, _ context.Context) (iterate.Criterion[float64], error) {
		divergence, err := iterate.NewDivergence[float64](
			orDefault(c.MaximumRelativeIncrease, iterate.DefaultMaximumRelativeIncrease),
			orDefault(c.MinimumIterations, iterate.DefaultMinimumDivergenceIterations),
		)
		if err != nil {
			return nil, err
		}

		return divergence, nil
	},
	iterate.KindFailure: func(CriterionConfig, context.Context) (iterate.Criterion[float64], error) {
		return iterate.NewFailureDetector[float64](), nil
	},
	iterate.KindCancellation: func(_ CriterionConfig, parent context.Context) (iterate.Criterion[float64], error) {
		return iterate.NewCancellation[float64](parent), nil
	},
}

// orDefault returns def when v is the zero value. Only for fields whose
// zero is never a legal setting.
func orDefault[N int | float64](v, def N) N {
	if v == 0 {
		return def
	}

	return v
}

// BuildController builds a float64 controller from cfg, preserving the
// criteria order. Cancellation criteria derive their signal from parent;
// logger may be nil for the discard default.
//
// Errors: ErrInvalidConfig on tag validation, ErrUnknownKind, or the
// constructor error of the offending criterion (matching iterate.ErrInvalidArgument).
func BuildController(cfg ControllerConfig, parent context.Context, logger *slog.Logger) (*iterate.Controller[float64], error) {
	if err := validateStruct(cfg); err != nil {
		return nil, err
	}

	criteria := make([]iterate.Criterion[float64], 0, len(cfg.Criteria))
	for i, c := range cfg.Criteria {
		build, ok := factories[c.Kind]
		if !ok {
			return nil, fmt.Errorf("BuildController: criterion %d: %w %q", i, ErrUnknownKind, c.Kind)
		}
		crit, err := build(c, parent)
		if err != nil {
			return nil, fmt.Errorf("BuildController: criterion %d (%s): %w", i, c.Kind, err)
		}
		criteria = append(criteria, crit)
	}

	opts := []iterate.Option{iterate.WithName(cfg.Name)}
	if logger != nil {
		opts = append(opts, iterate.WithLogger(logger))
	}

	return iterate.NewController(criteria, opts...), nil
}
