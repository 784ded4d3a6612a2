// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

func (cfg *SiteConfig) print() {
	log.Info().
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Str("cacheid", cfg.Instance.AssetCacheID).
		Msg("Starting site")

	configYAML, err := cfg.YAML()
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Info().
		Msg("Site configuration:")
	fmt.Fprintln(os.Stderr, string(configYAML))
}

// YAML renders cfg as YAML with human-readable durations.
//
// Nothing in the site configuration is secret, so no fields are redacted.
func (cfg *SiteConfig) YAML() ([]byte, error) {
	return yaml.MarshalWithOptions(*cfg, GetDurationEncoderOption())
}
