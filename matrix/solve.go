// SPDX-License-Identifier: MIT

package matrix

import "math"

// eliminator owns the working copies mutated during one Solve call.
type eliminator struct {
	n int
	a []float64 // n×n row-major working matrix
	b []float64 // working right-hand side
}

// Solve computes x with M·x = rhs by Gauss–Jordan elimination.
// Implementation:
//   - Stage 1: a nil matrix or len(rhs) != m.Dim() yields NoSolution.
//   - Stage 2: copy m and rhs into a private eliminator (inputs are never mutated).
//   - Stage 3: forward pass. For each row i: normalize by the pivot a[i][i],
//     eliminate column i from the rows below, then pivotRows(i+1).
//   - Stage 4: back pass from the last row up. A non-finite b[i] means a zero
//     pivot was hit and yields NoSolution; otherwise b[i] is x[i] and column i
//     is eliminated from the rows above.
//   - Stage 5: the working matrix must be exactly the identity.
//
// Behavior highlights:
//   - Zero pivots are not special-cased; they surface as ±Inf/NaN caught in
//     Stage 4 or Stage 5.
//   - The identity check uses exact equality with no tolerance.
//   - Never panics and never returns an error for numeric input.
//
// Complexity: O(n³) time, O(n²) memory.
func Solve(m *Square, rhs []float64) Solution {
	if m == nil || len(rhs) != m.n {
		return NoSolution()
	}

	e := &eliminator{n: m.n, a: m.Values(), b: make([]float64, len(rhs))}
	copy(e.b, rhs)

	e.forward()
	x, ok := e.backSubstitute()
	if !ok || !e.isIdentity() {
		return NoSolution()
	}

	return solvedWith(x)
}

// forward reduces the working matrix to unit upper-triangular form.
// Products are converted explicitly to float64 so the compiler cannot fuse
// them into FMA instructions; results stay identical across architectures.
func (e *eliminator) forward() {
	n, a, b := e.n, e.a, e.b
	var i, j, k int
	var pivot, factor float64
	for i = 0; i < n; i++ {
		// normalize row i so that a[i][i] == 1
		pivot = a[i*n+i]
		for k = i; k < n; k++ {
			a[i*n+k] /= pivot
		}
		b[i] /= pivot

		// subtract multiples of row i from every row below it
		for j = i + 1; j < n; j++ {
			factor = a[j*n+i]
			for k = i; k < n; k++ {
				a[j*n+k] -= float64(a[i*n+k] * factor)
			}
			b[j] -= float64(b[i] * factor)
		}

		if i < n-1 {
			e.pivotRows(i + 1)
		}
	}
}

// backSubstitute resolves the unknowns bottom-up and clears the entries above
// the diagonal. It returns false as soon as a non-finite value is found.
func (e *eliminator) backSubstitute() ([]float64, bool) {
	n, a, b := e.n, e.a, e.b
	x := make([]float64, n)
	var i, j int
	var factor float64
	for i = n - 1; i >= 0; i-- {
		if math.IsNaN(b[i]) || math.IsInf(b[i], 0) {
			return nil, false
		}
		x[i] = b[i]

		for j = i - 1; j >= 0; j-- {
			factor = a[j*n+i]
			a[j*n+i] -= float64(a[i*n+i] * factor)
			b[j] -= float64(b[i] * factor)
		}
	}

	return x, true
}

// pivotRows moves the row holding the smallest value of column start (among
// rows start..n-1) into row start. Ties keep the earliest row. Only columns
// start..n-1 are swapped; the entries to their left are already zero. The
// right-hand side is swapped in lock-step. No-op if row start already holds
// the minimum.
func (e *eliminator) pivotRows(start int) {
	n, a := e.n, e.a
	minVal := a[start*n+start]
	minRow := start
	var i int
	for i = start + 1; i < n; i++ {
		if v := a[i*n+start]; v < minVal {
			minVal = v
			minRow = i
		}
	}
	if minRow == start {
		return
	}

	for i = start; i < n; i++ {
		a[start*n+i], a[minRow*n+i] = a[minRow*n+i], a[start*n+i]
	}
	e.b[start], e.b[minRow] = e.b[minRow], e.b[start]
}

// isIdentity reports whether the working matrix is exactly the identity.
func (e *eliminator) isIdentity() bool {
	n := e.n
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = e.a[i*n+j]
			if i == j && v != 1 {
				return false
			}
			if i != j && v != 0 {
				return false
			}
		}
	}

	return true
}
