// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// Default HTTP cache max age in seconds.
	defaultHTTPCacheMaxAgeSeconds = 300
	// Default HTTP cache stale while revalidate in seconds.
	defaultHTTPCacheStaleWhileRevalidateSeconds = 600

	// Default number of rendered pages kept in memory (one per locale).
	defaultPageCacheSize = 16
)

// TCP listener fallbacks, applied only when no unix socket is configured.
const (
	DefaultHost = "localhost"
	DefaultPort = "8080"
)

// SetDefaults populates the configuration with default values.
//
// Host and Port stay empty so that a unix socket alone is a valid listener;
// validateAndSet falls back to DefaultHost and DefaultPort for TCP.
func (cfg *SiteConfig) SetDefaults() {
	cfg.Site.Title = "Embedded Rust 101"
	cfg.Site.Tagline = "Learn embedded programming with Rust on the Raspberry Pi Pico W"
	cfg.Site.BasePath = "/"
	cfg.Site.DocsPath = "docs/intro"
	cfg.Site.RawRepo = "https://codeberg.org/embedded-rust-101/site"

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeSeconds * time.Second
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateSeconds * time.Second

	cfg.Cache.Enabled = true
	cfg.Cache.Size = defaultPageCacheSize
	cfg.Cache.Compress = false

	cfg.Output.Dir = "./build"
	cfg.Output.Precompress = true

	cfg.Development.InDevelopment = false

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Internationalization.StrictMissingKeys = false
}
