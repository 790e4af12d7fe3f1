// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for nil/shape checks used by error-returning APIs.
//  - Return plain sentinels wrapped with the validator tag; facades add the op tag.
//
// Note:
//  - Solve does NOT use these: a shape mismatch there is a Solution, not an error.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Square) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length equals n.
// A nil vector is accepted only when n == 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSystem runs ValidateNotNil then ValidateVecLen on rhs.
func ValidateSystem(m *Square, rhs []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateVecLen(rhs, m.n)
}
