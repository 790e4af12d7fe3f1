// SPDX-License-Identifier: MIT

// Package matrix solves dense square linear systems M·x = b.
//
// What & Why:
//
//	Square stores an n×n matrix of float64 values in a flat row-major slice
//	(element (i, j) lives at index i*n+j). Solve runs Gauss–Jordan elimination
//	with a one-column-ahead row pivot and reports either the unique solution
//	or an explicit "no solution" result. A Solution never encodes failure as
//	NaN; callers ask Solved() instead.
//
// Pivot rule:
//
//	While row i is normalized, the rows below are reordered so that the
//	numerically SMALLEST entry of column i+1 becomes the next pivot. This is
//	not textbook partial pivoting (largest magnitude) and it rejects some
//	well-posed systems, e.g. the 3×3 identity. The rule is kept as is.
//
// Failure detection:
//
//	Zero pivots are not special-cased. They produce ±Inf/NaN that is caught
//	by a finiteness check in back-substitution, and the elimination result
//	must be the identity matrix with exact float equality.
//
// Batches:
//
//	SolveAll solves independent systems on a bounded worker pool; every
//	solve owns a private working copy, so no coordination is required.
//
// Complexity:
//
//	Solve is O(n³) time and O(n²) extra memory for the working copy.
package matrix
