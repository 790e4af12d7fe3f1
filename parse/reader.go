// SPDX-License-Identifier: MIT

package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gauss/matrix"
)

// blockReader accumulates the rows of the block currently being read.
type blockReader struct {
	raw       []float64 // n² matrix values followed by n rhs values
	dim       int       // dimension of the current block, 0 before its first row
	remaining int       // rows still expected after the first row
	systems   []matrix.System
}

// ReadSystems reads every block from r.
// Implementation:
//   - Stage 1: scan lines, skipping blank ones.
//   - Stage 2: a row read while no rows are pending starts a new block; its
//     token count n is the block dimension and n more rows are expected.
//   - Stage 3: the remaining rows must have exactly n tokens each.
//   - Stage 4: at EOF, a block with pending rows is ErrIncompleteBlock.
//
// Errors carry the 1-based line number and wrap ErrWrongDimension,
// ErrBadNumber, ErrIncompleteBlock or ErrEmptyInput.
func ReadSystems(r io.Reader) ([]matrix.System, error) {
	var br blockReader
	sc := newLineScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := br.feed(text); err != nil {
			return nil, lineErrorf(line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read input: %w", err)
	}

	if br.remaining > 0 {
		return nil, lineErrorf(line, fmt.Errorf("%d of %d rows missing: %w", br.remaining, br.dim+1, ErrIncompleteBlock))
	}
	if err := br.flush(); err != nil {
		return nil, err
	}
	if len(br.systems) == 0 {
		return nil, ErrEmptyInput
	}

	return br.systems, nil
}

// feed consumes one non-blank row.
func (br *blockReader) feed(text string) error {
	if br.remaining > 0 {
		raw, _, err := Row(br.raw, text, br.dim)
		if err != nil {
			return err
		}
		br.raw = raw
		br.remaining--

		return nil
	}

	if err := br.flush(); err != nil {
		return err
	}
	raw, n, err := Row(nil, text, 0)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("row without values: %w", ErrWrongDimension)
	}
	br.raw, br.dim, br.remaining = raw, n, n

	return nil
}

// flush turns the completed block, if any, into a System.
func (br *blockReader) flush() error {
	if len(br.raw) == 0 {
		return nil
	}
	sys, err := matrix.NewSystem(br.raw, br.dim)
	if err != nil {
		return err
	}
	br.systems = append(br.systems, sys)
	br.raw, br.dim = nil, 0

	return nil
}
