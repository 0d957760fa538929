// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Built-in setup names.
const (
	SetupConjugateGradient = "cg"
	SetupBiCGStab          = "bicgstab"
	SetupJacobi            = "jacobi"
)

// Setup describes a registered solver configuration.
//
// SolutionSpeed and Reliability are relative, positive figures; setups are
// ranked by SolutionSpeed/Reliability ascending, so a faster (smaller speed)
// or more reliable (larger reliability) setup ranks first.
type Setup struct {
	Name              string
	Description       string
	SolutionSpeed     float64
	Reliability       float64
	NewSolver         func(opts ...Option) Solver
	NewPreconditioner func() Preconditioner
}

// Rank returns SolutionSpeed/Reliability.
func (s Setup) Rank() float64 { return s.SolutionSpeed / s.Reliability }

func (s Setup) validate() error {
	if s.Name == "" || s.NewSolver == nil || s.NewPreconditioner == nil {
		return ErrInvalidSetup
	}
	if !(s.SolutionSpeed > 0) || !(s.Reliability > 0) {
		return ErrInvalidSetup
	}

	return nil
}

// Registry is a name-indexed set of setups, safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	setups map[string]Setup
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{setups: make(map[string]Setup)}
}

// Register adds s under s.Name.
// Returns ErrInvalidSetup or ErrDuplicateSetup; the registry is unchanged on error.
func (r *Registry) Register(s Setup) error {
	if err := s.validate(); err != nil {
		return solverErrorf(fmt.Sprintf("Registry.Register(%q)", s.Name), err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.setups[s.Name]; ok {
		return solverErrorf(fmt.Sprintf("Registry.Register(%q)", s.Name), ErrDuplicateSetup)
	}
	r.setups[s.Name] = s

	return nil
}

// Lookup returns the setup registered under name.
func (r *Registry) Lookup(name string) (Setup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.setups[name]
	if !ok {
		return Setup{}, solverErrorf(fmt.Sprintf("Registry.Lookup(%q)", name), ErrUnknownSolver)
	}

	return s, nil
}

// Setups returns every setup not named in exclude, ordered by Rank
// ascending with Name as tie-breaker.
// Complexity: O(k log k).
func (r *Registry) Setups(exclude ...string) []Setup {
	r.mu.RLock()
	out := make([]Setup, 0, len(r.setups))
	for name, s := range r.setups {
		if !slices.Contains(exclude, name) {
			out = append(out, s)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Setup) int {
		switch ra, rb := a.Rank(), b.Rank(); {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		default:
			return strings.Compare(a.Name, b.Name)
		}
	})

	return out
}

// builtin holds the setups shipped with the package.
var builtin = []Setup{
	{
		Name:              SetupConjugateGradient,
		Description:       "conjugate gradient, diagonal preconditioner; symmetric positive definite A",
		SolutionSpeed:     1,
		Reliability:       0.7,
		NewSolver:         func(opts ...Option) Solver { return NewConjugateGradient(opts...) },
		NewPreconditioner: func() Preconditioner { return NewDiagonal() },
	},
	{
		Name:              SetupBiCGStab,
		Description:       "BiCGStab, diagonal preconditioner; general non-singular A",
		SolutionSpeed:     1.5,
		Reliability:       0.9,
		NewSolver:         func(opts ...Option) Solver { return NewBiCGStab(opts...) },
		NewPreconditioner: func() Preconditioner { return NewDiagonal() },
	},
	{
		Name:              SetupJacobi,
		Description:       "Jacobi stationary iteration; strictly diagonally dominant A",
		SolutionSpeed:     3,
		Reliability:       0.5,
		NewSolver:         func(opts ...Option) Solver { return NewJacobi(opts...) },
		NewPreconditioner: func() Preconditioner { return NewDiagonal() },
	},
}

// defaultRegistry is pre-populated with builtin.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	for _, s := range builtin {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}

	return r
}()

// Register adds s to the package registry.
func Register(s Setup) error { return defaultRegistry.Register(s) }

// Lookup finds a setup in the package registry.
func Lookup(name string) (Setup, error) { return defaultRegistry.Lookup(name) }

// Setups lists the package registry in rank order.
func Setups(exclude ...string) []Setup { return defaultRegistry.Setups(exclude...) }
