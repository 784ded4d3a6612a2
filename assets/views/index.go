// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/embedded-rust-101/site/assets/components/fragments"
	"codeberg.org/embedded-rust-101/site/assets/styles"
	"codeberg.org/embedded-rust-101/site/core/features"
	"codeberg.org/embedded-rust-101/site/i18n"
	"codeberg.org/embedded-rust-101/site/server/template"
	"codeberg.org/embedded-rust-101/site/server/template/commondata"
)

// IndexData holds the data for the homepage.
type IndexData struct {
	Common   commondata.PageCommonData
	Site     SiteData
	Features []features.Descriptor
}

// Index renders the homepage: a hero banner followed by the feature grid.
func Index(data IndexData) templ.Component {
	hero := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return template.NewHTMLWriter(ctx, w).
			Raw(`<header`).Attr("class", template.Clsx("hero hero--primary", styles.Class("heroBanner"))).Raw(`>`).
			Raw(`<div class="container">`).
			Raw(`<h1 class="hero__title">`).Text(data.Site.Title).Raw(`</h1>`).
			Raw(`<p class="hero__subtitle">`).Text(i18n.Tr(ctx, data.Site.Tagline)).Raw(`</p>`).
			Raw(`<div`).Attr("class", styles.Class("buttons")).Raw(`>`).
			Raw(`<a class="button button--primary"`).Attr("href", data.Site.DocsURL).Raw(`>`).
			Text(i18n.Tr(ctx, "Get started")).
			Raw(`</a>`).
			Raw(`</div>`).
			Raw(`</div>`).
			Raw(`</header>`).
			Err()
	})

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return template.NewHTMLWriter(ctx, w).
			Component(hero).
			Component(fragments.HomepageFeatures(data.Features)).
			Err()
	})

	return layout(layoutData{Common: data.Common, Site: data.Site}, body)
}
