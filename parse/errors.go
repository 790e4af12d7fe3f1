// SPDX-License-Identifier: MIT

package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadNumber indicates a token that is not a number or a '/'-separated quotient of numbers.
	ErrBadNumber = errors.New("parse: invalid number")

	// ErrWrongDimension indicates a row whose token count differs from the block dimension.
	ErrWrongDimension = errors.New("parse: wrong dimension")

	// ErrIncompleteBlock indicates that input ended before a block had all of its rows.
	ErrIncompleteBlock = errors.New("parse: incomplete block")

	// ErrEmptyInput indicates input without a single row.
	ErrEmptyInput = errors.New("parse: no rows in input")
)

// lineErrorf tags err with its 1-based input line.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
