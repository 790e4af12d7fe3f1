// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/katalvlaran/gauss/parse"
	"github.com/katalvlaran/gauss/results"
)

// Run reads the configured input, solves every system and appends the
// results. Solutions are also printed to out; logs go to errOut.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	log := NewLogger(errOut, cfg.LogLevel, cfg.LogFormat)

	systems, err := readSystems(ctx, cfg, in, out)
	if err != nil {
		return err
	}
	log.Debug("systems read", "count", len(systems))

	sols, err := matrix.SolveAll(ctx, systems, matrix.WithWorkers(cfg.Workers))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	for i, sol := range sols {
		logSolution(ctx, log, i+1, systems[i], sol)
		fmt.Fprintf(out, "system %d: %s\n", i+1, sol)
	}

	if err := results.AppendFile(cfg.ResultsPath, sols); err != nil {
		return err
	}
	log.Info("results appended", "path", cfg.ResultsPath, "count", len(sols))

	return nil
}

func readSystems(ctx context.Context, cfg Config, in io.Reader, out io.Writer) ([]matrix.System, error) {
	if cfg.Interactive {
		sys, err := parse.NewPrompter(in, out).ReadSystem(ctx)
		if err != nil {
			return nil, err
		}
		return []matrix.System{sys}, nil
	}

	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open input: %w", err)
	}
	defer f.Close()

	systems, err := parse.ReadSystems(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.InputPath, err)
	}
	return systems, nil
}

func logSolution(ctx context.Context, log *slog.Logger, idx int, sys matrix.System, sol matrix.Solution) {
	attrs := []any{"system", idx, "dim", sys.Matrix.Dim(), "solved", sol.Solved()}
	x, ok := sol.Values()
	if !ok {
		if len(sys.RHS) != sys.Matrix.Dim() {
			attrs = append(attrs, "rhs_len", len(sys.RHS))
		}
		log.InfoContext(ctx, "no unique solution", attrs...)
		return
	}
	log.InfoContext(ctx, "system solved", attrs...)

	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	r, err := matrix.Residual(sys.Matrix, sys.RHS, x)
	if err != nil {
		log.WarnContext(ctx, "residual failed", "system", idx, "error", err)
		return
	}
	log.DebugContext(ctx, "residual", "system", idx, "norm", r)
}
