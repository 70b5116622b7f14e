// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the values read from the process environment. The environment
// only gates diagnostics: PROTECT_DEBUG turns on verbose output without
// changing any behavior of the run itself.
type Env struct {
	Debug bool `env:"DEBUG"`
}

// ParseEnv reads the PROTECT_-prefixed environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Prefix: "PROTECT_"}); err != nil {
		return Env{}, fmt.Errorf("error reading environment: %w", err)
	}
	return e, nil
}
