// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"strings"
	"sync/atomic"

	"codeberg.org/embedded-rust-101/site/config"
)

var (
	// baseHeaders defines the default headers to be set in responses.
	//
	// Site-Version and Site-Revision are added dynamically in SetResponseHeaders.
	baseHeaders = http.Header{
		"Referrer-Policy":         {"strict-origin-when-cross-origin"},
		"X-Frame-Options":         {"DENY"},
		"X-Content-Type-Options":  {"nosniff"},
		"Permissions-Policy":      {strings.Join(defaultPermissionsPolicy, ", ")},
		"Content-Security-Policy": {strings.Join(contentSecurityPolicy, "; ") + ";"},
	}

	// contentSecurityPolicy allows nothing but our own stylesheet and images.
	// The pages carry no scripts.
	contentSecurityPolicy = []string{
		"base-uri 'self'",
		"default-src 'none'",
		"style-src 'self'",
		"img-src 'self' data:",
		"font-src 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}

	defaultPermissionsPolicy = []string{
		"accelerometer=()",
		"camera=()",
		"display-capture=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"midi=()",
		"payment=()",
		"usb=()",
		"serial=()",
		"xr-spatial-tracking=()",
	}
)

// SetResponseHeaders adds default headers to HTTP responses.
//
// Handlers may override Cache-Control; the value set here is the default for the path.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	if config.Global.Development.InDevelopment {
		invalidateCacheInDevelopment(headers)
	}

	setCacheControl(headers, r.URL.Path)

	headers.Set("Site-Version", config.BuildVersion)
	headers.Set("Site-Revision", config.Global.Build.Revision())

	next.ServeHTTP(w, r)
}

// devCacheCleared is set after the first response in development.
var devCacheCleared atomic.Bool

// invalidateCacheInDevelopment asks the browser to drop its cache once per process.
func invalidateCacheInDevelopment(headers http.Header) {
	if !devCacheCleared.Swap(true) {
		headers.Set("Clear-Site-Data", `"cache"`)
	}
}

// setCacheControl sets the default Cache-Control header for path.
func setCacheControl(headers http.Header, path string) {
	// Default to only storing in the browser cache and forcing revalidation.
	cacheDuration := "private, no-cache"

	switch {
	case config.Global.Development.InDevelopment:
		cacheDuration = "no-store"
	case strings.HasPrefix(path, "/css/"):
		// The stylesheet URL carries the asset cache id, so it can be kept for a week.
		cacheDuration = "public, max-age=604800"
	case strings.HasPrefix(path, "/img/"):
		cacheDuration = "public, max-age=1209600"
	case path == "/healthz":
		cacheDuration = "no-store"
	}

	headers.Set("Cache-Control", cacheDuration)
}
