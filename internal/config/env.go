// SPDX-License-Identifier: MIT

// Package config holds the gauss command's environment and exit helpers.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every gauss environment variable, so a struct tag
// `env:"WORKERS"` reads GAUSS_WORKERS.
const EnvPrefix = "GAUSS_"

// ParseEnv fills target from GAUSS_-prefixed environment variables,
// applying envDefault tags for unset ones.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
