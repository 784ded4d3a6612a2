// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"net/url"

	"golang.org/x/text/language"

	"codeberg.org/embedded-rust-101/site/config"
	"codeberg.org/embedded-rust-101/site/i18n"
)

// LanguageRedirect maps the static build's /<locale>/ layout onto the live
// server: /ro redirects to the homepage with ?lang=ro.
//
// Paths that are not a supported locale are 404s.
func LanguageRedirect(w http.ResponseWriter, r *http.Request) error {
	tag, err := language.Parse(r.PathValue("lang"))
	if err != nil || !i18n.IsSupported(tag) {
		return NotFound(w, r)
	}

	target := config.Global.Site.BasePath + "?" + url.Values{i18n.LangParam: {tag.String()}}.Encode()

	http.Redirect(w, r, target, http.StatusFound)

	return nil
}
