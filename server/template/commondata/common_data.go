// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package commondata

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"codeberg.org/embedded-rust-101/site/config"
	"codeberg.org/embedded-rust-101/site/i18n"
	"codeberg.org/embedded-rust-101/site/server/utils"
)

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	Tag language.Tag

	// Name is the language's name in that language, for example "română".
	Name string

	URL     string
	Current bool
}

// PageCommonData holds values every page view needs.
//
// The live server fills it from the request with [PopulatePageCommonData];
// the static build uses [ForStaticPage] since there is no request.
type PageCommonData struct {
	// BaseURL is the origin URL (scheme + host) of the current request.
	// Empty for statically built pages.
	BaseURL string

	// CurrentPath is the URL path of the page.
	CurrentPath string

	// Lang is the locale the page is rendered in.
	Lang language.Tag

	// Languages lists every supported locale, for the language switcher.
	Languages []LanguageLink

	// AssetCacheID is appended to asset URLs to bust browser caches between deployments.
	AssetCacheID string
}

// LinkBuilder returns the URL of the current page in the given locale.
type LinkBuilder func(language.Tag) string

// PopulatePageCommonData fills data from the request.
//
// Language links point at the current path with only the lang query
// parameter set, so the data depends on nothing but the path, origin and locale.
func PopulatePageCommonData(r *http.Request, data *PageCommonData) {
	data.BaseURL = utils.GetOriginFromRequest(r)
	data.CurrentPath = r.URL.Path
	data.AssetCacheID = config.Global.Instance.AssetCacheID

	fill(data, i18n.TagFrom(r.Context()), func(t language.Tag) string {
		return utils.WithQueryParam(r.URL.Path, nil, i18n.LangParam, t.String())
	})
}

// ForStaticPage returns the common data for a page written by the static build.
func ForStaticPage(currentPath string, lang language.Tag, assetCacheID string, link LinkBuilder) PageCommonData {
	data := PageCommonData{
		CurrentPath:  currentPath,
		AssetCacheID: assetCacheID,
	}

	fill(&data, lang, link)

	return data
}

func fill(data *PageCommonData, lang language.Tag, link LinkBuilder) {
	data.Lang = lang

	langs := i18n.Languages()
	data.Languages = make([]LanguageLink, 0, len(langs))

	for _, t := range langs {
		data.Languages = append(data.Languages, LanguageLink{
			Tag:     t,
			Name:    LanguageName(t),
			URL:     link(t),
			Current: t == lang,
		})
	}
}

// LanguageName returns the name of t in its own language, falling back to
// the tag string when x/text has no name for it.
func LanguageName(t language.Tag) string {
	name := display.Self.Name(t)
	if name == "" {
		return t.String()
	}

	return name
}
