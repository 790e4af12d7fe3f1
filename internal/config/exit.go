// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
)

// ExitFailure is the process status for configuration, input or I/O errors.
// A system without a unique solution is a result, not a failure.
const ExitFailure = 1

// Exitf writes "gauss: <message>" to stderr and exits with ExitFailure.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "gauss: "+format+"\n", args...)
	os.Exit(ExitFailure)
}
