// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

var errInvalidConfigFile = errors.New("invalid config file")

// readYAML merges the file at path into cfg.
//
// A missing file is not an error, since every setting has a default and an
// environment variable. Unknown keys are rejected: a misspelt setting would
// otherwise keep its default without notice.
func (cfg *SiteConfig) readYAML(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info().
			Str("path", path).
			Msg("Config file not found, using defaults and environment")

		return nil
	case err != nil:
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("%w %s:\n%s", errInvalidConfigFile, path, yaml.FormatError(err, false, true))
	}

	log.Info().
		Str("path", path).
		Int("bytes", len(data)).
		Msg("Loaded site config")

	return nil
}
