// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// readEnv overrides cfg with any SITE_* environment variables that are set.
//
// Unset variables leave the current value (default or YAML) untouched.
// Slices are comma separated and durations use time.ParseDuration syntax.
func (cfg *SiteConfig) readEnv() error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}
