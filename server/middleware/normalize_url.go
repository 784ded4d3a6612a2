// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"
)

// keepTrailingSlash lists prefixes of routes whose trailing slash is meaningful.
var keepTrailingSlash = []string{"/img/"}

// NormalizeURL redirects URLs with a trailing slash (except the root and
// directory routes) to the same URL without it.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if hasTrailingSlash(r) {
		removeTrailingSlash(w, r)

		return
	}

	next.ServeHTTP(w, r)
}

// hasTrailingSlash checks if a request path has a removable trailing slash.
func hasTrailingSlash(r *http.Request) bool {
	path := r.URL.Path

	if path == "/" || !strings.HasSuffix(path, "/") {
		return false
	}

	for _, prefix := range keepTrailingSlash {
		if path == prefix {
			return false
		}
	}

	return true
}

// removeTrailingSlash removes the trailing slashes and redirects.
//
// Leading slashes are collapsed too, so "//host/" can never become a
// protocol-relative redirect to another site.
func removeTrailingSlash(w http.ResponseWriter, r *http.Request) {
	target := *r.URL

	target.Path = "/" + strings.Trim(target.Path, "/")
	target.RawPath = ""

	http.Redirect(w, r, target.String(), http.StatusPermanentRedirect)
}
