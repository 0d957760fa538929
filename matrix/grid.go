// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Connectivity selects the grid stencil: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 couples each cell to N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 couples each cell to N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// ParseConnectivity accepts "4" and "8".
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4":
		return Conn4, nil
	case "8":
		return Conn8, nil
	default:
		return Conn4, fmt.Errorf("ParseConnectivity(%q): %w", s, ErrBadShape)
	}
}

// offsets returns the neighbour (dx, dy) pairs of the stencil.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// NewGridLaplacian returns the Dirichlet graph Laplacian of a width×height
// grid: cell (x, y) is row y*width + x, the diagonal is the stencil size and
// every in-bounds neighbour contributes -1. Cells outside the grid act as
// fixed zero boundary values, so the matrix is symmetric positive definite
// and irreducibly diagonally dominant.
// Stage 1: validate width, height > 0.
// Stage 2: fill the diagonal and the neighbour couplings.
// Complexity: O(W×H×d) fill, O((W×H)^2) memory.
func NewGridLaplacian(width, height int, conn Connectivity) (*Dense, error) {
	if width <= 0 || height <= 0 {
		return nil, matrixErrorf("NewGridLaplacian", ErrBadShape)
	}
	n := width * height
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewGridLaplacian", err)
	}

	offsets := conn.offsets()
	degree := float64(len(offsets))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := y*width + x
			row := m.row(u)
			row[u] = degree
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				row[ny*width+nx] = -1
			}
		}
	}

	return m, nil
}
