// SPDX-License-Identifier: MIT

// Package config loads itersolve configuration and turns it into controllers.
// Values come from built-in defaults, an optional YAML file and ITERSOLVE_*
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/itersolve/iterate"
	"github.com/katalvlaran/itersolve/solver"
)

// EnvPrefix prefixes every environment override, e.g. ITERSOLVE_SOLVER_NAME.
const EnvPrefix = "ITERSOLVE"

// validate is shared; validator caches struct metadata and is goroutine safe.
var validate = validator.New()

// Config holds all configuration for itersolve.
type Config struct {
	Controller ControllerConfig `mapstructure:"controller"`
	Solver     SolverConfig     `mapstructure:"solver"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ControllerConfig describes one iteration controller: its label and its
// criteria in evaluation order.
type ControllerConfig struct {
	Name     string            `mapstructure:"name" validate:"required"`
	Criteria []CriterionConfig `mapstructure:"criteria" validate:"required,min=1,dive"`
}

// CriterionConfig configures a single stop criterion.
// Fields not used by Kind are ignored. Zero values select the iterate package
// defaults for that kind, except MaximumResidual, where only an absent value
// does: a bound of 0 is legal and demands an exactly zero residual.
type CriterionConfig struct {
	Kind string `mapstructure:"kind" validate:"required,oneof=iteration_limit residual divergence failure cancellation"`

	// iteration_limit
	MaximumIterations int `mapstructure:"maximum_iterations" validate:"gte=0"`

	// residual
	MaximumResidual               *float64 `mapstructure:"maximum_residual" validate:"omitempty,gte=0"`
	MinimumIterationsBelowMaximum int      `mapstructure:"minimum_iterations_below_maximum" validate:"gte=0"`

	// divergence
	MaximumRelativeIncrease float64 `mapstructure:"maximum_relative_increase" validate:"gte=0"`
	MinimumIterations       int     `mapstructure:"minimum_iterations" validate:"omitempty,gte=3"`
}

// SolverConfig selects the registry setup and the CLI run limits.
type SolverConfig struct {
	Name    string        `mapstructure:"name" validate:"required"`
	Workers int           `mapstructure:"workers" validate:"gte=1,lte=64"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Load reads configuration.
// Precedence (highest to lowest):
// 1. Environment variables (ITERSOLVE_SOLVER_NAME, ITERSOLVE_LOGGING_LEVEL, ...)
// 2. The YAML file at path, when path is non-empty
// 3. Built-in defaults
//
// The result is validated; failures wrap ErrInvalidConfig.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in configuration without consulting files or
// the environment.
func Default() *Config {
	return &Config{
		Controller: ControllerConfig{
			Name:     iterate.DefaultControllerName,
			Criteria: defaultCriteria(),
		},
		Solver:  SolverConfig{Name: solver.SetupConjugateGradient, Workers: 4},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// defaultCriteria mirrors iterate.DefaultController.
func defaultCriteria() []CriterionConfig {
	return []CriterionConfig{
		{Kind: iterate.KindIterationLimit, MaximumIterations: iterate.DefaultMaximumIterations},
		{Kind: iterate.KindResidual, MaximumResidual: ptr(iterate.DefaultMaximumResidual)},
		{
			Kind:                    iterate.KindDivergence,
			MaximumRelativeIncrease: iterate.DefaultMaximumRelativeIncrease,
			MinimumIterations:       iterate.DefaultMinimumDivergenceIterations,
		},
		{Kind: iterate.KindFailure},
	}
}

func ptr[V any](v V) *V { return &v }

// setDefaults registers Default() with viper so env overrides apply to
// every known key.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("controller.name", d.Controller.Name)

	criteria := make([]map[string]any, 0, len(d.Controller.Criteria))
	for _, c := range d.Controller.Criteria {
		m := map[string]any{
			"kind":                             c.Kind,
			"maximum_iterations":               c.MaximumIterations,
			"minimum_iterations_below_maximum": c.MinimumIterationsBelowMaximum,
			"maximum_relative_increase":        c.MaximumRelativeIncrease,
			"minimum_iterations":               c.MinimumIterations,
		}
		if c.MaximumResidual != nil {
			m["maximum_residual"] = *c.MaximumResidual
		}
		criteria = append(criteria, m)
	}
	v.SetDefault("controller.criteria", criteria)

	v.SetDefault("solver.name", d.Solver.Name)
	v.SetDefault("solver.workers", d.Solver.Workers)
	v.SetDefault("solver.timeout", d.Solver.Timeout)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Validate checks struct tags and that Solver.Name is registered.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if _, err := solver.Lookup(c.Solver.Name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// validateStruct runs the tag validator and folds field errors into one
// ErrInvalidConfig-wrapped message.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
