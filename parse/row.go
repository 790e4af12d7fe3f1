// SPDX-License-Identifier: MIT

package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Number parses a single token. A token containing '/' is a left-to-right
// quotient of its trimmed parts ("a/b/c" == (a/b)/c).
// Errors wrap ErrBadNumber.
func Number(token string) (float64, error) {
	token = strings.TrimSpace(token)
	if !strings.Contains(token, "/") {
		return parseFloat(token)
	}

	parts := strings.Split(token, "/")
	acc, err := parseFloat(parts[0])
	if err != nil {
		return 0, err
	}
	for _, p := range parts[1:] {
		d, err := parseFloat(p)
		if err != nil {
			return 0, err
		}
		acc /= d
	}

	return acc, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadNumber)
	}

	return v, nil
}

// tokens splits line on ',' and returns the trimmed, non-empty tokens.
func tokens(line string) []string {
	fields := strings.Split(line, ",")
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}

// Row parses one comma-separated row and appends its values to dst.
// dim == 0 disables the length check; otherwise a token count other than dim
// fails with ErrWrongDimension. It returns the extended slice and the token
// count. On error dst is returned unchanged.
func Row(dst []float64, line string, dim int) ([]float64, int, error) {
	toks := tokens(line)
	if dim != 0 && len(toks) != dim {
		return dst, 0, fmt.Errorf("got %d values, must be %d: %w", len(toks), dim, ErrWrongDimension)
	}

	vals := make([]float64, len(toks))
	for i, tok := range toks {
		v, err := Number(tok)
		if err != nil {
			return dst, 0, err
		}
		vals[i] = v
	}

	return append(dst, vals...), len(toks), nil
}
