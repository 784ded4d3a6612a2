// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/embedded-rust-101/site/i18n"
	"codeberg.org/embedded-rust-101/site/server/template"
	"codeberg.org/embedded-rust-101/site/server/template/commondata"
)

// ErrorData holds the data for the error page.
type ErrorData struct {
	Common     commondata.PageCommonData
	Site       SiteData
	StatusCode int
	Error      error

	// ShowDetails renders Error's message. Only set in development.
	ShowDetails bool
}

// Error renders the themed error page.
func Error(data ErrorData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := template.NewHTMLWriter(ctx, w).
			Raw(`<div class="container text--center">`).
			Raw(`<h1>`).Text(errorTitle(ctx, data.StatusCode)).Raw(`</h1>`).
			Raw(`<p class="error-status">`).Text(strconv.Itoa(data.StatusCode)).Raw(`</p>`)

		if data.ShowDetails && data.Error != nil {
			hw.Raw(`<pre class="error-details">`).Text(data.Error.Error()).Raw(`</pre>`)
		}

		return hw.
			Raw(`<a class="button button--secondary"`).Attr("href", data.Site.BasePath).Raw(`>`).
			Text(i18n.Tr(ctx, "Back to the homepage")).
			Raw(`</a>`).
			Raw(`</div>`).
			Err()
	})

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout(layoutData{
			Common:    data.Common,
			Site:      data.Site,
			PageTitle: errorTitle(ctx, data.StatusCode),
		}, body).Render(ctx, w)
	})
}

func errorTitle(ctx context.Context, statusCode int) string {
	if statusCode == http.StatusNotFound {
		return i18n.Tr(ctx, "Page not found")
	}

	return i18n.Tr(ctx, "Something went wrong")
}
