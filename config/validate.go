// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// validation errors.
var (
	errUnixSocketWithHostPort       = errors.New("unix socket configured - cannot specify Host and Port simultaneously")
	errUnixSocketInvalidPermissions = errors.New("invalid Basic.UnixSocketPermissions value")
	errEmptySiteTitle               = errors.New("site.title cannot be empty")
	errInvalidBasePath              = errors.New("site.basePath must start and end with '/'")
	errInvalidRepoURL               = errors.New("site.repoUrl must be an absolute http(s) URL")
	errInvalidCacheSize             = errors.New("cache.cacheSize must be positive when the cache is enabled")
	errEmptyOutputDir               = errors.New("output.dir cannot be empty")
	errInvalidLogLevel              = errors.New("invalid log.logLevel")
	errInvalidLogFormat             = errors.New("invalid log.logFormat")
)

var (
	fileModeOctalRegexp  = regexp.MustCompile(`^0?[0-7]{3}$`)
	fileModeStringRegexp = regexp.MustCompile(`^(?:[r-][w-][x-]){3}$`)

	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validateAndSet validates the site configuration and populates derived fields.
func (cfg *SiteConfig) validateAndSet() error {
	if cfg.Basic.UnixSocket != "" {
		if cfg.Basic.Host != "" || cfg.Basic.Port != "" {
			return errUnixSocketWithHostPort
		}

		mode, err := parseFileMode(cfg.Basic.RawUnixSocketPermissions)
		if err != nil {
			return err
		}

		cfg.Basic.UnixSocketPermissions = mode
	} else {
		if cfg.Basic.Host == "" {
			cfg.Basic.Host = DefaultHost
			log.Info().
				Str("host", cfg.Basic.Host).
				Msg("Binding to default host")
		}

		if cfg.Basic.Port == "" {
			cfg.Basic.Port = DefaultPort
			log.Info().
				Str("port", cfg.Basic.Port).
				Msg("Using default port")
		}
	}

	if strings.TrimSpace(cfg.Site.Title) == "" {
		return errEmptySiteTitle
	}

	if !strings.HasPrefix(cfg.Site.BasePath, "/") || !strings.HasSuffix(cfg.Site.BasePath, "/") {
		return fmt.Errorf("%w: %q", errInvalidBasePath, cfg.Site.BasePath)
	}

	repo, err := url.ParseRequestURI(cfg.Site.RawRepo)
	if err != nil || (repo.Scheme != "http" && repo.Scheme != "https") || repo.Host == "" {
		return fmt.Errorf("%w: %q", errInvalidRepoURL, cfg.Site.RawRepo)
	}

	cfg.Site.Repo = *repo

	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return errInvalidCacheSize
	}

	if cfg.Output.Dir == "" {
		return errEmptyOutputDir
	}

	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}

// parseFileMode accepts an octal ("660", "0660") or symbolic ("rw-rw----")
// permission string. An empty string yields 0666.
func parseFileMode(raw string) (os.FileMode, error) {
	switch {
	case raw == "":
		return 0o666, nil
	case fileModeOctalRegexp.MatchString(raw):
		mode, _ := strconv.ParseUint(raw, 8, 32)

		return os.FileMode(mode), nil
	case fileModeStringRegexp.MatchString(raw):
		mode := os.FileMode(0)

		for i, c := range raw {
			if c != '-' {
				const highestBit = 8

				mode |= 1 << (highestBit - i)
			}
		}

		return mode, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnixSocketInvalidPermissions, raw)
	}
}
