// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gauss/internal/cli"
	"github.com/katalvlaran/gauss/parse"
	"github.com/stretchr/testify/require"
)

const input = `1, 1, -2
3, -1, 1
2, 3, 5
7, 2, 8

1, 2, 3
4, 5, 6
7, 8, 9
2, 2, 2
`

// TestRunFileMode solves a file and appends the results to the same file.
func TestRunFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "systems")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))

	cfg := cli.Config{InputPath: path, ResultsPath: path, Workers: 2, LogLevel: slog.LevelDebug, LogFormat: cli.LogFormatText}
	var out, errOut bytes.Buffer
	require.NoError(t, cli.Run(context.Background(), cfg, nil, &out, &errOut))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, input+"\n2,3,-1,\nNaN,\n", string(got))

	require.Equal(t, "system 1: [2 3 -1]\nsystem 2: no solution\n", out.String())
	logs := errOut.String()
	require.Contains(t, logs, "system solved")
	require.Contains(t, logs, "no unique solution")
	require.Contains(t, logs, "residual")
	require.Contains(t, logs, "results appended")
}

func TestRunInteractive(t *testing.T) {
	resultsPath := filepath.Join(t.TempDir(), "results")
	cfg := cli.Config{Interactive: true, ResultsPath: resultsPath, Workers: 1, LogFormat: cli.LogFormatJSON}

	var out bytes.Buffer
	in := strings.NewReader("4, 0\n0, 1\n8, 3/1\n")
	require.NoError(t, cli.Run(context.Background(), cfg, in, &out, nil))

	got, err := os.ReadFile(resultsPath)
	require.NoError(t, err)
	require.Equal(t, "\n2,3,\n", string(got))
	require.Contains(t, out.String(), "Enter vector to solve for")
	require.Contains(t, out.String(), "system 1: [2 3]")
}

func TestRunMissingInput(t *testing.T) {
	cfg := cli.Config{InputPath: filepath.Join(t.TempDir(), "nope"), Workers: 1}
	err := cli.Run(context.Background(), cfg, nil, nil, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunMalformedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "systems")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3\n"), 0o600))

	cfg := cli.Config{InputPath: path, ResultsPath: path, Workers: 1}
	err := cli.Run(context.Background(), cfg, nil, nil, nil)
	require.ErrorIs(t, err, parse.ErrWrongDimension)

	got, _ := os.ReadFile(path)
	require.Equal(t, "1,2\n3\n", string(got)) // nothing appended
}
