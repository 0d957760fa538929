// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Dense stores a system matrix row after row in one slice.
type Dense struct {
	rows, cols int
	vals       []float64 // len(vals) == rows*cols
}

// NewDense returns a zero rows×cols matrix, or ErrBadShape.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}

	return &Dense{rows: rows, cols: cols, vals: make([]float64, rows*cols)}, nil
}

// NewFromRows copies a rectangular, finite table of coefficients.
func NewFromRows(table [][]float64) (*Dense, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrBadShape)
	}
	m, err := NewDense(len(table), len(table[0]))
	if err != nil {
		return nil, matrixErrorf("NewFromRows", err)
	}
	for i, src := range table {
		if len(src) != m.cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d entries, want %d: %w", i, len(src), m.cols, ErrBadShape)
		}
		for j, v := range src {
			if err := validateFinite(v); err != nil {
				return nil, fmt.Errorf("NewFromRows: entry (%d,%d): %w", i, j, err)
			}
		}
		copy(m.row(i), src)
	}

	return m, nil
}

// NewIdentity returns I of order n.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := range n {
		m.row(i)[i] = 1
	}

	return m, nil
}

func (m *Dense) Rows() int { return m.rows }

func (m *Dense) Cols() int { return m.cols }

// row aliases the backing storage of row i.
func (m *Dense) row(i int) []float64 { return m.vals[i*m.cols : (i+1)*m.cols] }

func (m *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns entry (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	if !m.inBounds(i, j) {
		return 0, fmt.Errorf("Dense.At(%d,%d) on %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return m.vals[i*m.cols+j], nil
}

// Set stores v at (i, j). NaN and ±Inf are refused with ErrNaNInf so a
// system never carries a coefficient no solver could use.
func (m *Dense) Set(i, j int, v float64) error {
	if !m.inBounds(i, j) {
		return fmt.Errorf("Dense.Set(%d,%d) on %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	if err := validateFinite(v); err != nil {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, err)
	}
	m.vals[i*m.cols+j] = v

	return nil
}

func (m *Dense) Clone() Matrix {
	return &Dense{rows: m.rows, cols: m.cols, vals: append([]float64(nil), m.vals...)}
}

// String prints one bracketed row per line using %g.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := range m.rows {
		for j, v := range m.row(i) {
			if j == 0 {
				sb.WriteByte('[')
			} else {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
