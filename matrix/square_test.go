// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Square matrix type.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewSquarePerfectSquares checks that every perfect-square length builds
// and every other length fails with ErrNotSquareLength.
func TestNewSquarePerfectSquares(t *testing.T) {
	for length := 0; length <= 50; length++ {
		m, err := matrix.NewSquare(make([]float64, length))
		switch length {
		case 0, 1, 4, 9, 16, 25, 36, 49:
			require.NoError(t, err, "length %d", length)
			require.Equal(t, length, m.Dim()*m.Dim(), "length %d", length)
		default:
			require.ErrorIs(t, err, matrix.ErrNotSquareLength, "length %d", length)
			require.Nil(t, m)
		}
	}
}

// TestNewSquareThreeValues mirrors the canonical failing construction.
func TestNewSquareThreeValues(t *testing.T) {
	_, err := matrix.NewSquare([]float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrNotSquareLength)
}

// TestNewSquareDimension verifies the derived dimension and row-major layout.
func TestNewSquareDimension(t *testing.T) {
	m, err := matrix.NewSquare([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, m.Dim())

	v, err := m.At(1, 0) // row 1, col 0 -> index 2
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestNewSquareCopiesInput ensures the caller's slice is not aliased.
func TestNewSquareCopiesInput(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	m, err := matrix.NewSquare(vals)
	require.NoError(t, err)

	vals[0] = 99
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewSquare(make([]float64, 4))
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 1, 7.89))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewSquare([]float64{1, 0, 0, 2})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	orig, _ := m.At(0, 0)
	require.Equal(t, 1.0, orig)
	require.Equal(t, []float64{3, 0, 0, 2}, clone.Values())
}

// TestStringOutput checks the bracketed row rendering.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewSquare([]float64{1, 2, 3, 4.5})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

func TestNewSystem(t *testing.T) {
	sys, err := matrix.NewSystem([]float64{1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, sys.Matrix.Values())
	require.Equal(t, []float64{5, 6}, sys.RHS)

	_, err = matrix.NewSystem([]float64{1, 2, 3}, 2)
	require.ErrorIs(t, err, matrix.ErrNotSquareLength)
}

func TestValidators(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen(nil, 0))

	m, err := matrix.NewSquare([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSystem(m, []float64{1, 2}))
	require.ErrorIs(t, matrix.ValidateSystem(m, []float64{1, 2, 3}), matrix.ErrDimensionMismatch)
}
