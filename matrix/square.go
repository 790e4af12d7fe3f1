// SPDX-License-Identifier: MIT

// Package matrix: Square is a row-major n×n matrix of float64 values,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Operation name constants for unified error wrapping.
const (
	opNewSquare = "NewSquare"
	opAt        = "At"
	opSet       = "Set"
	opResidual  = "Residual"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Square is an n×n row-major matrix. n is fixed at construction.
type Square struct {
	n    int       // dimension
	data []float64 // flat backing storage, len == n*n
}

// NewSquare builds a Square from vals, interpreted row-major.
// Stage 1 (Validate): len(vals) must be a perfect square n².
// Stage 2 (Prepare): copy vals so the caller keeps ownership of its slice.
// Stage 3 (Finalize): return the matrix or ErrNotSquareLength.
// An empty slice yields a 0×0 matrix.
// Complexity: O(n²) time and memory.
func NewSquare(vals []float64) (*Square, error) {
	n, ok := squareRoot(len(vals))
	if !ok {
		return nil, matrixErrorf(opNewSquare, fmt.Errorf("%d values: %w", len(vals), ErrNotSquareLength))
	}

	data := make([]float64, len(vals))
	copy(data, vals)

	return &Square{n: n, data: data}, nil
}

// squareRoot returns n with n*n == length, or false when length is not a
// perfect square. The float estimate is corrected in integer arithmetic.
func squareRoot(length int) (int, bool) {
	if length < 0 {
		return 0, false
	}
	n := int(math.Sqrt(float64(length)))
	for n*n > length {
		n--
	}
	for (n+1)*(n+1) <= length {
		n++
	}

	return n, n*n == length
}

// Dim returns the matrix dimension n.
// Complexity: O(1).
func (m *Square) Dim() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Square) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, matrixErrorf(op, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Square) At(row, col int) (float64, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Square) Set(row, col int, v float64) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Values returns a row-major copy of the matrix elements.
func (m *Square) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *Square) Clone() *Square {
	return &Square{n: m.n, data: m.Values()}
}

// String renders the matrix one bracketed row per line, e.g.
//
//	[1, 2]
//	[3, 4]
func (m *Square) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString("[")
		for j = 0; j < m.n; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
			if j < m.n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
