// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills the config from prefixed process variables such as
// APP_TOKEN_SIGN_KEY or STORAGE_DB_DATABASE_URI. They take precedence over
// command-line flags and the JSON file.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading auth keeper env configs: %w", err)
	}

	return nil
}
