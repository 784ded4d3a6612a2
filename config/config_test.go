// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestLoadDefaults verifies that a missing config file falls back to defaults.
func TestLoadDefaults(t *testing.T) {
	cfg := &SiteConfig{}

	require.NoError(t, cfg.load(filepath.Join(t.TempDir(), "missing.yaml")))

	assert.Equal(t, "localhost", cfg.Basic.Host)
	assert.Equal(t, "8080", cfg.Basic.Port)
	assert.Equal(t, "Embedded Rust 101", cfg.Site.Title)
	assert.Equal(t, "codeberg.org", cfg.Site.Repo.Host)
	assert.Equal(t, "/docs/intro", cfg.DocsURL())
	assert.NotEmpty(t, cfg.Instance.AssetCacheID)
}

// TestLoadUnixSocketOnly verifies that a socket path alone is a complete listener config.
func TestLoadUnixSocketOnly(t *testing.T) {
	path := writeConfigFile(t, `
basic:
  unixSocket: /run/site/site.sock
  unixSocketPermissions: "660"
`)

	cfg := &SiteConfig{}
	require.NoError(t, cfg.load(path))

	assert.Empty(t, cfg.Basic.Host, "no TCP fallback on the socket path")
	assert.Empty(t, cfg.Basic.Port)
	assert.Equal(t, os.FileMode(0o660), cfg.Basic.UnixSocketPermissions)
}

// TestLoadPrecedence verifies that environment variables override the YAML file.
func TestLoadPrecedence(t *testing.T) {
	path := writeConfigFile(t, `
basic:
  port: "9000"
site:
  title: "Pico Lab"
  basePath: "/course/"
httpCache:
  cacheControlMaxAge: 1m
log:
  logLevel: warn
`)

	t.Setenv("SITE_PORT", "9100")
	t.Setenv("SITE_LOG_OUTPUTS", "/dev/stdout,/dev/stderr")

	cfg := &SiteConfig{}
	require.NoError(t, cfg.load(path))

	assert.Equal(t, "9100", cfg.Basic.Port, "env must win over YAML")
	assert.Equal(t, "Pico Lab", cfg.Site.Title)
	assert.Equal(t, "/course/docs/intro", cfg.DocsURL())
	assert.Equal(t, time.Minute, cfg.HTTPCache.MaxAge)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Len(t, cfg.Log.Outputs, 2)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "basic: [unterminated")

	cfg := &SiteConfig{}
	assert.ErrorIs(t, cfg.load(path), errInvalidConfigFile)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfigFile(t, `
site:
  titel: "Pico Lab"
`)

	cfg := &SiteConfig{}
	err := cfg.load(path)
	require.ErrorIs(t, err, errInvalidConfigFile)
	assert.Contains(t, err.Error(), "titel", "the error points at the misspelt key")
}

func TestValidateAndSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *SiteConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*SiteConfig) {},
		},
		{
			name: "unix socket alone",
			mutate: func(cfg *SiteConfig) {
				cfg.Basic.UnixSocket = "/run/site.sock"
			},
		},
		{
			name: "unix socket with host",
			mutate: func(cfg *SiteConfig) {
				cfg.Basic.UnixSocket = "/run/site.sock"
				cfg.Basic.Host = "localhost"
			},
			wantErr: errUnixSocketWithHostPort,
		},
		{
			name: "unix socket with port",
			mutate: func(cfg *SiteConfig) {
				cfg.Basic.UnixSocket = "/run/site.sock"
				cfg.Basic.Port = "8080"
			},
			wantErr: errUnixSocketWithHostPort,
		},
		{
			name: "empty title",
			mutate: func(cfg *SiteConfig) {
				cfg.Site.Title = "  "
			},
			wantErr: errEmptySiteTitle,
		},
		{
			name: "base path without trailing slash",
			mutate: func(cfg *SiteConfig) {
				cfg.Site.BasePath = "/course"
			},
			wantErr: errInvalidBasePath,
		},
		{
			name: "relative repo url",
			mutate: func(cfg *SiteConfig) {
				cfg.Site.RawRepo = "codeberg.org/embedded-rust-101"
			},
			wantErr: errInvalidRepoURL,
		},
		{
			name: "enabled cache without size",
			mutate: func(cfg *SiteConfig) {
				cfg.Cache.Size = 0
			},
			wantErr: errInvalidCacheSize,
		},
		{
			name: "disabled cache ignores size",
			mutate: func(cfg *SiteConfig) {
				cfg.Cache.Enabled = false
				cfg.Cache.Size = 0
			},
		},
		{
			name: "empty output dir",
			mutate: func(cfg *SiteConfig) {
				cfg.Output.Dir = ""
			},
			wantErr: errEmptyOutputDir,
		},
		{
			name: "unknown log level",
			mutate: func(cfg *SiteConfig) {
				cfg.Log.Level = "verbose"
			},
			wantErr: errInvalidLogLevel,
		},
		{
			name: "unknown log format",
			mutate: func(cfg *SiteConfig) {
				cfg.Log.Format = "xml"
			},
			wantErr: errInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &SiteConfig{}
			cfg.SetDefaults()
			tt.mutate(cfg)

			err := cfg.validateAndSet()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseFileMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    os.FileMode
		wantErr bool
	}{
		{raw: "", want: 0o666},
		{raw: "660", want: 0o660},
		{raw: "0600", want: 0o600},
		{raw: "rw-rw----", want: 0o660},
		{raw: "rwxr-xr-x", want: 0o755},
		{raw: "999", wantErr: true},
		{raw: "rw-", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseFileMode(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, errUnixSocketInvalidPermissions, "parseFileMode(%q)", tt.raw)

			continue
		}

		require.NoError(t, err, "parseFileMode(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "parseFileMode(%q)", tt.raw)
	}
}

func TestYAMLUsesReadableDurations(t *testing.T) {
	t.Parallel()

	cfg := &SiteConfig{}
	cfg.SetDefaults()

	out, err := cfg.YAML()
	require.NoError(t, err)

	assert.Contains(t, string(out), "cacheControlMaxAge: 5m0s")
	assert.NotContains(t, string(out), "instance:")
}

func TestShouldSkipServerLogging(t *testing.T) {
	t.Parallel()

	cfg := &SiteConfig{}

	assert.True(t, cfg.ShouldSkipServerLogging("/img/rust_logo.svg"))
	assert.True(t, cfg.ShouldSkipServerLogging("/css/styles.css"))
	assert.False(t, cfg.ShouldSkipServerLogging("/"))
}
