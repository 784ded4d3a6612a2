// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"codeberg.org/embedded-rust-101/site/config"
	"codeberg.org/embedded-rust-101/site/server/pagecache"
)

// pages caches rendered homepages per locale and origin. nil when the cache is disabled.
var pages *pagecache.Cache

// Setup initializes the rendered page cache from config.Global.
//
// If caching is disabled in the configuration, it skips initialization and
// every request renders its page.
func Setup() error {
	if !config.Global.Cache.Enabled {
		pages = nil

		log.Info().
			Msg("Page cache is disabled, skipping cache initialization")

		return nil
	}

	cache, err := pagecache.New(config.Global.Cache.Size, config.Global.Cache.Compress)
	if err != nil {
		return fmt.Errorf("failed to create page cache: %w", err)
	}

	pages = cache

	log.Info().
		Int("size", config.Global.Cache.Size).
		Bool("compress", config.Global.Cache.Compress).
		Msg("Initialized page cache")

	return nil
}
