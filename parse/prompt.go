// SPDX-License-Identifier: MIT

package parse

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gauss/matrix"
)

// PromptIntro is printed once before the first row is requested.
const PromptIntro = `Enter matrix by rows. inputs must be comma separated and numeric.
Dimensions must be n by n.
It is allowed to write numbers like 1, 1.23 or 2/5.
`

// Prompter reads one system interactively, row by row.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads rows from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{sc: newLineScanner(in), out: out}
}

// ReadSystem prompts for the matrix rows and then the right-hand side.
// The first row fixes the dimension n. A malformed row is reported and
// requested again. Input ending early yields io.ErrUnexpectedEOF (wrapped).
func (p *Prompter) ReadSystem(ctx context.Context) (matrix.System, error) {
	fmt.Fprint(p.out, PromptIntro+"\n")

	var raw []float64
	dim := 0
	row := 1
	for {
		if dim > 0 && row > dim+1 {
			return matrix.NewSystem(raw, dim)
		}
		if err := ctx.Err(); err != nil {
			return matrix.System{}, err
		}

		if dim > 0 && row == dim+1 {
			fmt.Fprintln(p.out, "Enter vector to solve for")
		} else {
			fmt.Fprintf(p.out, "Enter row %d:\n", row)
		}

		line, err := p.readLine()
		if err != nil {
			return matrix.System{}, err
		}

		next, n, err := Row(raw, line, dim)
		switch {
		case errors.Is(err, ErrWrongDimension):
			fmt.Fprintf(p.out, "Wrong dimension, must be %d\n", dim)
			continue
		case err != nil:
			fmt.Fprintln(p.out, err)
			continue
		case n == 0:
			continue
		}
		if dim == 0 {
			dim = n
		}
		raw = next
		row++
	}
}

func (p *Prompter) readLine() (string, error) {
	if p.sc.Scan() {
		return p.sc.Text(), nil
	}
	if err := p.sc.Err(); err != nil {
		return "", fmt.Errorf("parse: read row: %w", err)
	}

	return "", fmt.Errorf("parse: read row: %w", io.ErrUnexpectedEOF)
}
