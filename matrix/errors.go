// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. Numeric degeneracy is
// never an error: Solve reports it through Solution.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Facades wrap with matrixErrorf(op, err); callers match with errors.Is.

var (
	// ErrNotSquareLength is returned by NewSquare when the number of values
	// is not a perfect square.
	ErrNotSquareLength = errors.New("matrix: value count is not a perfect square")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a vector length disagrees with the
	// matrix dimension where an error (not a Solution) is the contract.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Square was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNoSolution is returned by accessors that require a solved result.
	ErrNoSolution = errors.New("matrix: system has no unique solution")
)
