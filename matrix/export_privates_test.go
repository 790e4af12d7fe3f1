// SPDX-License-Identifier: MIT

package matrix

// Test bridge for private kernels and options.
// Lives in a _test.go file so it is compiled only with the package tests.

// PanicWorkersInvalid_TestOnly exposes the WithWorkers panic message.
const PanicWorkersInvalid_TestOnly = panicWorkersInvalid

// PivotRows_TestOnly runs the private row pivot directly on m and b (in place).
func PivotRows_TestOnly(m *Square, start int, b []float64) {
	e := eliminator{n: m.n, a: m.data, b: b}
	e.pivotRows(start)
}

// IsIdentity_TestOnly runs the private exact identity check on m.
func IsIdentity_TestOnly(m *Square) bool {
	e := eliminator{n: m.n, a: m.data}

	return e.isIdentity()
}

// Workers_TestOnly resolves opts and returns the effective worker bound.
func Workers_TestOnly(opts ...Option) int {
	return gatherOptions(opts...).workers
}
