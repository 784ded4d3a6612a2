// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"io"
	"net/http"
	"sync"

	"codeberg.org/embedded-rust-101/site/assets/styles"
	"codeberg.org/embedded-rust-101/site/server/pagecache"
)

var stylesheetPage = sync.OnceValue(func() pagecache.Page {
	return pagecache.NewPage([]byte(styles.Stylesheet()))
})

// Stylesheet serves the global stylesheet and the scoped CSS module.
func Stylesheet(w http.ResponseWriter, r *http.Request) error {
	return writePage(w, r, "text/css; charset=utf-8", stylesheetPage())
}

// Healthz reports that the server is up.
func Healthz(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	_, err := io.WriteString(w, "ok\n")

	return err
}
