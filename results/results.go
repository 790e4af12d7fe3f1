// SPDX-License-Identifier: MIT

// Package results writes solutions as comma-terminated text lines to an
// append-only destination.
//
// Layout (one call):
//
//	<blank line>
//	2,3,-1,
//	NaN,
//
// Each solved vector is one line of values, each followed by ','. A system
// without a unique solution is the single marker "NaN,". Values use the
// shortest decimal form that round-trips (2, 0.6, -1.25).
package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/gauss/matrix"
)

// NoSolutionMarker is the text written for a system without a unique solution.
const NoSolutionMarker = "NaN"

// FileMode is the permission used when AppendFile creates the destination.
const FileMode os.FileMode = 0o644

// FormatValue renders v in shortest round-trip form without exponent.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Format writes a leading blank line and one line per solution to w.
func Format(w io.Writer, sols []matrix.Solution) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("\n")
	for _, s := range sols {
		vals, ok := s.Values()
		if !ok {
			bw.WriteString(NoSolutionMarker + ",")
		}
		for _, v := range vals {
			bw.WriteString(FormatValue(v))
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("results: write: %w", err)
	}

	return nil
}

// AppendFile appends the formatted solutions to the file at path, creating
// it if needed. Existing content is never truncated.
func AppendFile(path string, sols []matrix.Solution) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, FileMode)
	if err != nil {
		return fmt.Errorf("results: open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("results: close %s: %w", path, cerr)
		}
	}()

	return Format(f, sols)
}
