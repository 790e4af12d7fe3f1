// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Residual returns the Euclidean norm ‖M·x − rhs‖₂, a quality measure for a
// solution x of M·x = rhs.
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrDimensionMismatch if len(rhs) or len(x) differ from m.Dim().
//
// A 0×0 system has residual 0.
// Complexity: O(n²).
func Residual(m *Square, rhs, x []float64) (float64, error) {
	if err := ValidateSystem(m, rhs); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(x, m.n); err != nil {
		return 0, matrixErrorf(opResidual, fmt.Errorf("solution: %w", err))
	}
	if m.n == 0 {
		return 0, nil
	}

	// gonum views share backing storage; copies keep m, rhs and x untouched.
	a := mat.NewDense(m.n, m.n, m.Values())
	xv := mat.NewVecDense(m.n, append([]float64(nil), x...))
	bv := mat.NewVecDense(m.n, append([]float64(nil), rhs...))

	var r mat.VecDense
	r.MulVec(a, xv)
	r.SubVec(&r, bv)

	return mat.Norm(&r, 2), nil
}
