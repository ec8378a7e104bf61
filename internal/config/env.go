// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 exprun contributors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every override variable name, so the seed
// override is EXP_SEED and the optimizer type is EXP_OPTIMIZER_TYPE.
const envPrefix = "EXP_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseEnvOverrides populates overrides from EXP_-prefixed environment
// variables. Variables that are not set leave the corresponding field nil,
// so unset variables never shadow prototype defaults.
func parseEnvOverrides(overrides *Overrides) error {
	err := env.ParseWithOptions(overrides, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env overrides: %w", err)
	}

	return nil
}
