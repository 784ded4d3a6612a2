// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package views holds the full-page components.
*/
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/embedded-rust-101/site/i18n"
	"codeberg.org/embedded-rust-101/site/server/template"
	"codeberg.org/embedded-rust-101/site/server/template/commondata"
)

// SiteData holds the site-wide values shown in the page chrome.
type SiteData struct {
	Title    string
	Tagline  string
	BasePath string
	DocsURL  string
	RepoURL  string
}

// layoutData is what layout needs to wrap a page body.
type layoutData struct {
	Common commondata.PageCommonData
	Site   SiteData

	// PageTitle is prepended to the site title in <title>. Empty for the homepage.
	PageTitle string
}

// stylesheetURL returns the stylesheet link with a cache-busting query.
func stylesheetURL(data layoutData) string {
	u := data.Site.BasePath + "css/styles.css"
	if data.Common.AssetCacheID != "" {
		u += "?v=" + data.Common.AssetCacheID
	}

	return u
}

// layout renders the document shell around body: head, navbar and footer.
func layout(data layoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := data.Site.Title
		if data.PageTitle != "" {
			title = data.PageTitle + " | " + data.Site.Title
		}

		hw := template.NewHTMLWriter(ctx, w).
			Raw(`<!DOCTYPE html>`).
			Raw(`<html`).Attr("lang", data.Common.Lang.String()).Raw(`>`).
			Raw(`<head>`).
			Raw(`<meta charset="utf-8">`).
			Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`).
			Raw(`<title>`).Text(title).Raw(`</title>`).
			Raw(`<link rel="stylesheet"`).Attr("href", stylesheetURL(data)).Raw(`>`)

		if data.Site.Tagline != "" {
			hw.Raw(`<meta name="description"`).Attr("content", i18n.Tr(ctx, data.Site.Tagline)).Raw(`>`)
		}

		if data.Common.BaseURL != "" {
			hw.Raw(`<link rel="canonical"`).Attr("href", data.Common.BaseURL+data.Common.CurrentPath).Raw(`>`)
		}

		hw.Raw(`</head>`).
			Raw(`<body>`).
			Raw(`<nav class="navbar">`).
			Raw(`<a class="navbar__brand"`).Attr("href", data.Site.BasePath).Raw(`>`).Text(data.Site.Title).Raw(`</a>`).
			Component(languageList(data.Common.Languages)).
			Raw(`</nav>`).
			Raw(`<main>`).
			Component(body).
			Raw(`</main>`).
			Raw(`<footer class="footer">`).
			Raw(`<a`).Attr("href", data.Site.RepoURL).Raw(`>`).Text(i18n.Tr(ctx, "Source code")).Raw(`</a>`).
			Raw(`</footer>`).
			Raw(`</body>`).
			Raw(`</html>`)

		return hw.Err()
	})
}

// languageList renders the language switcher. Nothing is rendered for a
// single language.
func languageList(langs []commondata.LanguageLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(langs) <= 1 {
			return nil
		}

		hw := template.NewHTMLWriter(ctx, w).Raw(`<ul class="language-list">`)

		for _, l := range langs {
			hw.Raw(`<li>`)

			if l.Current {
				hw.Raw(`<span aria-current="true"`).Attr("lang", l.Tag.String()).Raw(`>`).Text(l.Name).Raw(`</span>`)
			} else {
				hw.Raw(`<a`).Attr("href", l.URL).Attr("lang", l.Tag.String()).Attr("hreflang", l.Tag.String()).Raw(`>`).
					Text(l.Name).
					Raw(`</a>`)
			}

			hw.Raw(`</li>`)
		}

		return hw.Raw(`</ul>`).Err()
	})
}
