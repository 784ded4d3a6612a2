// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"

	"codeberg.org/embedded-rust-101/site/i18n"
	"codeberg.org/embedded-rust-101/site/server/utils"
)

// redirectPermanent redirects to targetPath, preserving the language choice.
//
// Example:   /index.html?lang=ro   ->   /?lang=ro
func redirectPermanent(targetPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := targetPath
		if lang := utils.GetQueryParam(r, i18n.LangParam); lang != "" {
			target = utils.WithQueryParam(targetPath, nil, i18n.LangParam, lang)
		}

		http.Redirect(w, r, target, http.StatusPermanentRedirect)
	}
}
