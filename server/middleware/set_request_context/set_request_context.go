// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package set_request_context

import (
	"net/http"
	"strings"

	"codeberg.org/embedded-rust-101/site/i18n"
	"codeberg.org/embedded-rust-101/site/server/request_context"
	"codeberg.org/embedded-rust-101/site/server/utils"
)

// langCookieMaxAge keeps an explicit language choice for a year.
const langCookieMaxAge = 365 * 24 * 60 * 60

// WithRequestContext is a middleware that attaches a RequestContext to each HTTP request.
//
// An explicit ?lang= choice is remembered in a cookie; ?lang=auto, in any case, forgets it.
func WithRequestContext(w http.ResponseWriter, r *http.Request, next http.Handler) {
	r = r.WithContext(request_context.WithRequestContext(r.Context(), r))

	lang := utils.GetQueryParam(r, i18n.LangParam)

	switch {
	case lang == "":
	case strings.EqualFold(lang, "auto"):
		http.SetCookie(w, &http.Cookie{
			Name:     i18n.LangCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   utils.IsConnectionSecure(r),
			SameSite: http.SameSiteLaxMode,
		})
	default:
		http.SetCookie(w, &http.Cookie{
			Name:     i18n.LangCookie,
			Value:    request_context.FromRequest(r).T.String(),
			Path:     "/",
			MaxAge:   langCookieMaxAge,
			HttpOnly: true,
			Secure:   utils.IsConnectionSecure(r),
			SameSite: http.SameSiteLaxMode,
		})
	}

	next.ServeHTTP(w, r)
}
