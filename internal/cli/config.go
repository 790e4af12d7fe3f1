// SPDX-License-Identifier: MIT

// Package cli implements the gauss command: configuration, input
// dispatch, solving and result output.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gauss/internal/config"
)

// DefaultResultsPath is the results destination in interactive mode.
const DefaultResultsPath = "results"

// Log formats accepted by -log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ErrUsage marks invalid flag combinations or values.
var ErrUsage = errors.New("usage")

// Config holds gauss command configuration.
type Config struct {
	Interactive bool
	InputPath   string
	ResultsPath string
	Workers     int
	LogLevel    slog.Level
	LogFormat   string
}

// envConfig fields are read with the GAUSS_ prefix (config.EnvPrefix).
type envConfig struct {
	ResultsPath string `env:"RESULTS_PATH"`
	Workers     int    `env:"WORKERS" envDefault:"4"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment then flags into a Config. Flags win.
// Exactly one of -i and -f is required. Without -o or GAUSS_RESULTS_PATH,
// results are appended to the input file (-f) or to DefaultResultsPath (-i).
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		ResultsPath: envCfg.ResultsPath,
		Workers:     envCfg.Workers,
		LogFormat:   envCfg.LogFormat,
	}
	level := envCfg.LogLevel

	fs.BoolVar(&cfg.Interactive, "i", false, "enter the matrix and vector row by row")
	fs.StringVar(&cfg.InputPath, "f", "", "parse systems from this file")
	fs.StringVar(&cfg.ResultsPath, "o", cfg.ResultsPath, "append results to this file (default: GAUSS_RESULTS_PATH, the -f file, or \"results\")")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "systems solved concurrently")
	fs.StringVar(&level, "log-level", level, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text|json)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Interactive == (cfg.InputPath != "") {
		return Config{}, fmt.Errorf("%w: '-i' to enter rows, '-f filename' to parse file", ErrUsage)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("%w: -workers must be >= 1", ErrUsage)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, fmt.Errorf("%w: -log-level: %v", ErrUsage, err)
	}
	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return Config{}, fmt.Errorf("%w: -log-format must be %s or %s", ErrUsage, LogFormatText, LogFormatJSON)
	}

	if cfg.ResultsPath == "" {
		if cfg.Interactive {
			cfg.ResultsPath = DefaultResultsPath
		} else {
			cfg.ResultsPath = cfg.InputPath
		}
	}

	return cfg, nil
}
