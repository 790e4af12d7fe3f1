// SPDX-License-Identifier: MIT

package results_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/katalvlaran/gauss/results"
	"github.com/stretchr/testify/require"
)

func solved(t *testing.T, vals []float64, rhs []float64) matrix.Solution {
	t.Helper()
	m, err := matrix.NewSquare(vals)
	require.NoError(t, err)
	sol := matrix.Solve(m, rhs)
	require.True(t, sol.Solved())

	return sol
}

func TestFormat(t *testing.T) {
	sols := []matrix.Solution{
		solved(t, []float64{1, 1, -2, 3, -1, 1, 2, 3, 5}, []float64{7, 2, 8}),
		matrix.NoSolution(),
		solved(t, []float64{2, 1, 1, 3}, []float64{3, 5}),
	}
	var buf bytes.Buffer
	require.NoError(t, results.Format(&buf, sols))
	require.Equal(t, "\n2,3,-1,\nNaN,\n0.8,1.4,\n", buf.String())
}

func TestFormatEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, results.Format(&buf, nil))
	require.Equal(t, "\n", buf.String())
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "2", results.FormatValue(2))
	require.Equal(t, "0.6", results.FormatValue(0.6))
	require.Equal(t, "-1.25", results.FormatValue(-1.25))
	require.Equal(t, "1000000000000000000000", results.FormatValue(1e21))
}

// TestAppendFileNeverTruncates runs two appends against a file with prior content.
func TestAppendFileNeverTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results")
	require.NoError(t, os.WriteFile(path, []byte("4,0\n0,1\n8,3\n"), 0o600))

	sol := solved(t, []float64{4, 0, 0, 1}, []float64{8, 3})
	require.NoError(t, results.AppendFile(path, []matrix.Solution{sol}))
	require.NoError(t, results.AppendFile(path, []matrix.Solution{matrix.NoSolution()}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "4,0\n0,1\n8,3\n\n2,3,\n\nNaN,\n", string(got))
}

func TestAppendFileCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new")
	require.NoError(t, results.AppendFile(path, nil))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "\n", string(got))
}

func TestAppendFileBadPath(t *testing.T) {
	err := results.AppendFile(filepath.Join(t.TempDir(), "missing", "dir", "x"), nil)
	require.Error(t, err)
}
