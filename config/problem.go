// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/vector"
)

// Problem is a linear system A·x = b as stored in a YAML problem file:
//
//	name: poisson-3
//	matrix:
//	  - [2, -1, 0]
//	  - [-1, 2, -1]
//	  - [0, -1, 2]
//	rhs: [1, 0, 1]
//	initial: [0, 0, 0]   # optional, zeros when omitted
type Problem struct {
	Name    string      `yaml:"name"`
	Matrix  [][]float64 `yaml:"matrix" validate:"required,min=1"`
	RHS     []float64   `yaml:"rhs" validate:"required,min=1"`
	Initial []float64   `yaml:"initial,omitempty"`
}

// LoadProblem reads and validates a problem file. An empty name defaults
// to path.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem %s: %w", path, err)
	}

	p := &Problem{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing problem %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("problem %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = path
	}

	return p, nil
}

// SaveProblem writes p to path as YAML after validating it.
func SaveProblem(path string, p *Problem) error {
	if err := p.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding problem %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing problem %s: %w", path, err)
	}

	return nil
}

// FromMatrix builds a Problem from a matrix and right-hand side.
func FromMatrix(name string, a matrix.Matrix, rhs []float64) (*Problem, error) {
	rows := make([][]float64, a.Rows())
	for i := range rows {
		rows[i] = make([]float64, a.Cols())
		for j := range rows[i] {
			v, err := a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
			}
			rows[i][j] = v
		}
	}
	p := &Problem{Name: name, Matrix: rows, RHS: append([]float64(nil), rhs...)}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the problem describes a square system.
func (p *Problem) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	n := len(p.Matrix)
	for i, row := range p.Matrix {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidProblem, i, len(row), n)
		}
	}
	if len(p.RHS) != n {
		return fmt.Errorf("%w: rhs has %d entries, want %d", ErrInvalidProblem, len(p.RHS), n)
	}
	if len(p.Initial) != 0 && len(p.Initial) != n {
		return fmt.Errorf("%w: initial has %d entries, want %d", ErrInvalidProblem, len(p.Initial), n)
	}

	return nil
}

// Build converts the problem into solver operands. x holds a copy of the
// initial guess, or zeros.
func (p *Problem) Build() (a *matrix.Dense, b, x *vector.Dense[float64], err error) {
	if err = p.Validate(); err != nil {
		return nil, nil, nil, err
	}
	a, err = matrix.NewFromRows(p.Matrix)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	b = vector.FromSlice(p.RHS)
	if len(p.Initial) > 0 {
		x = vector.FromSlice(p.Initial)
	} else if x, err = vector.New[float64](len(p.RHS)); err != nil {
		return nil, nil, nil, err
	}

	return a, b, x, nil
}
