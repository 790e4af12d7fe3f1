// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opNewSystem = "NewSystem"

// System pairs a coefficient matrix with its right-hand side.
// RHS may have any length; Solve reports a mismatch as NoSolution.
type System struct {
	Matrix *Square
	RHS    []float64
}

// NewSystem splits raw, as produced by row parsers, into an n×n matrix
// (the first n² values, row-major) and a right-hand side (the rest).
// Returns ErrNotSquareLength (wrapped) when raw holds fewer than n² values.
// Complexity: O(len(raw)).
func NewSystem(raw []float64, n int) (System, error) {
	if n < 0 || len(raw) < n*n {
		return System{}, matrixErrorf(opNewSystem, fmt.Errorf("%d values for dimension %d: %w", len(raw), n, ErrNotSquareLength))
	}
	m, err := NewSquare(raw[:n*n])
	if err != nil {
		return System{}, matrixErrorf(opNewSystem, err)
	}
	rhs := make([]float64, len(raw)-n*n)
	copy(rhs, raw[n*n:])

	return System{Matrix: m, RHS: rhs}, nil
}

// Solve is shorthand for Solve(s.Matrix, s.RHS).
func (s System) Solve() Solution {
	return Solve(s.Matrix, s.RHS)
}
