// SPDX-License-Identifier: MIT

package parse

import (
	"bufio"
	"io"
	"math"
)

// initialLineBuffer is the starting scan buffer; it grows as rows demand.
const initialLineBuffer = 64 * 1024

// newLineScanner returns a line scanner without a row length cap, so a
// single row of a large system (n values of full precision) is never rejected.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)

	return sc
}
