// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Solution is the outcome of Solve: either n values or "no unique solution".
// The zero value is a no-solution result.
type Solution struct {
	values []float64 // nil unless solved
	solved bool
}

// NoSolution returns the explicit no-solution result.
func NoSolution() Solution {
	return Solution{}
}

// solvedWith wraps values (ownership is transferred) as a solved result.
func solvedWith(values []float64) Solution {
	return Solution{values: values, solved: true}
}

// Solved reports whether the system had a unique solution.
func (s Solution) Solved() bool {
	return s.solved
}

// Values returns a copy of the solution vector and true, or nil and false
// when the system had no unique solution.
func (s Solution) Values() ([]float64, bool) {
	if !s.solved {
		return nil, false
	}
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out, true
}

// Vector is Values in error form: it returns ErrNoSolution for an unsolved result.
func (s Solution) Vector() ([]float64, error) {
	v, ok := s.Values()
	if !ok {
		return nil, ErrNoSolution
	}

	return v, nil
}

// Dim returns the number of unknowns, or 0 for a no-solution result.
func (s Solution) Dim() int {
	return len(s.values)
}

// String renders "[x0 x1 ...]" or "no solution".
func (s Solution) String() string {
	if !s.solved {
		return "no solution"
	}
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
