// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/embedded-rust-101/site/assets/views"
	"codeberg.org/embedded-rust-101/site/config"
	"codeberg.org/embedded-rust-101/site/server/pagecache"
)

// SiteData returns the page chrome values from config.Global.
func SiteData() views.SiteData {
	cfg := &config.Global

	return views.SiteData{
		Title:    cfg.Site.Title,
		Tagline:  cfg.Site.Tagline,
		BasePath: cfg.Site.BasePath,
		DocsURL:  cfg.DocsURL(),
		RepoURL:  cfg.Site.Repo.String(),
	}
}

// setPublicCacheControl marks a response as cacheable by shared caches for
// the configured durations.
func setPublicCacheControl(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(config.Global.HTTPCache.MaxAge.Seconds()),
		int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds())))
}

// writePage writes page with its validator, answering a matching
// If-None-Match with 304 Not Modified.
func writePage(w http.ResponseWriter, r *http.Request, contentType string, page pagecache.Page) error {
	w.Header().Set("ETag", page.ETag)

	if etagMatches(r.Header.Get("If-None-Match"), page.ETag) {
		w.WriteHeader(http.StatusNotModified)

		return nil
	}

	w.Header().Set("Content-Type", contentType)

	_, err := w.Write(page.Body)

	return err
}

// etagMatches reports whether an If-None-Match header value matches etag,
// using the weak comparison RFC 9110 prescribes for If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}

	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}

	return false
}
