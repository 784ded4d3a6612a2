// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"bytes"
	"net/http"

	"codeberg.org/embedded-rust-101/site/assets/views"
	"codeberg.org/embedded-rust-101/site/core/features"
	"codeberg.org/embedded-rust-101/site/server/request_context"
)

// IndexPage is the handler for the homepage.
//
// The rendered page only depends on the locale and the origin, so it is
// served from the page cache keyed by both.
func IndexPage(w http.ResponseWriter, r *http.Request) error {
	rc := request_context.FromRequest(r)
	key := rc.T.String() + " " + rc.CommonData.BaseURL

	page, cached, err := pages.GetOrRender(key, func() ([]byte, error) {
		var buf bytes.Buffer

		err := views.Index(views.IndexData{
			Common:   rc.CommonData,
			Site:     SiteData(),
			Features: features.List(),
		}).Render(r.Context(), &buf)

		return buf.Bytes(), err
	})
	if err != nil {
		return err
	}

	if cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}

	w.Header().Set("Vary", "Accept-Language, Cookie")
	w.Header().Set("Content-Language", rc.T.String())
	setPublicCacheControl(w)

	return writePage(w, r, "text/html; charset=utf-8", page)
}
