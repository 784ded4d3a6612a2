// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/embedded-rust-101/site/assets/views"
	"codeberg.org/embedded-rust-101/site/config"
	"codeberg.org/embedded-rust-101/site/server/request_context"
)

// ErrorPage writes the request's StatusCode and renders the error page for
// its RequestError.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	rc := request_context.FromRequest(r)

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(rc.StatusCode)

	pageData := views.ErrorData{
		Common:      rc.CommonData,
		Site:        SiteData(),
		StatusCode:  rc.StatusCode,
		Error:       rc.RequestError,
		ShowDetails: config.Global.Development.InDevelopment,
	}

	if err := views.Error(pageData).Render(r.Context(), w); err != nil {
		log.Err(err).
			Str("request_id", rc.RequestID).
			Msg("Failed to render the error page")
	}
}

// NotFound answers 404; CatchError replaces the body with the error page.
func NotFound(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusNotFound)

	return nil
}
