// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags
// defined on [StructuredConfig] and its nested types.
//
// fallback holds values read from the .env file; a variable present in the
// process environment always takes precedence over it.
func parseEnv(cfg any, fallback map[string]string) error {
	environment := make(map[string]string, len(fallback))
	maps.Copy(environment, fallback)
	maps.Copy(environment, env.ToMap(os.Environ()))

	err := env.ParseWithOptions(cfg, env.Options{Environment: environment})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
