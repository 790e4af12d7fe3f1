// SPDX-License-Identifier: MIT

// Package main is the gauss command: solve linear systems read from a file
// (-f) or typed row by row (-i) and append the results to a file.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gauss/internal/cli"
	"github.com/katalvlaran/gauss/internal/config"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("%v", err)
	}
}
