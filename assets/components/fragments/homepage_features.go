// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/embedded-rust-101/site/assets/components/partials"
	"codeberg.org/embedded-rust-101/site/assets/styles"
	"codeberg.org/embedded-rust-101/site/core/features"
	"codeberg.org/embedded-rust-101/site/server/template"
)

// featureHeadingLevel places card titles below the page's section heading.
const featureHeadingLevel = 3

// Feature renders one feature card: the icon centred above the title and
// description.
//
// An icon that was not loaded renders as a visible placeholder.
func Feature(d features.Descriptor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return template.NewHTMLWriter(ctx, w).
			Raw(`<div`).Attr("class", template.Clsx("col col--4")).Raw(`>`).
			Raw(`<div class="text--center">`).
			Raw(template.RenderIcon(d.Icon, styles.Class("featureSvg"), "role", "img")).
			Raw(`</div>`).
			Raw(`<div class="text--center padding-horiz--md">`).
			Component(partials.Heading(featureHeadingLevel, d.Title)).
			Raw(`<p>`).Component(d.Description).Raw(`</p>`).
			Raw(`</div>`).
			Raw(`</div>`).
			Err()
	})
}

// HomepageFeatures renders list as a wrapping grid of feature cards,
// in list order.
//
// An empty list still renders the section and grid wrappers.
func HomepageFeatures(list []features.Descriptor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := template.NewHTMLWriter(ctx, w).
			Raw(`<section`).Attr("class", styles.Class("features")).Raw(`>`).
			Raw(`<div class="container">`).
			Raw(`<div class="row">`)

		for _, d := range list {
			hw.Component(Feature(d))
		}

		return hw.
			Raw(`</div>`).
			Raw(`</div>`).
			Raw(`</section>`).
			Err()
	})
}
