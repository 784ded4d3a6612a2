// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package partials

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"codeberg.org/embedded-rust-101/site/server/template"
)

const (
	minHeadingLevel = 1
	maxHeadingLevel = 6
)

// Heading renders content inside an <hN> element, with level clamped to 1–6.
//
// The element gets an id derived from the text of content so that it can
// be linked to with a fragment, the way documentation pages anchor their headings.
func Heading(level int, content templ.Component) templ.Component {
	level = min(max(level, minHeadingLevel), maxHeadingLevel)
	tag := "h" + strconv.Itoa(level)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var inner bytes.Buffer

		if content != nil {
			if err := content.Render(ctx, &inner); err != nil {
				return err
			}
		}

		hw := template.NewHTMLWriter(ctx, w).Raw("<" + tag)

		if id := template.Slugify(textContent(inner.Bytes())); id != "" {
			hw.Attr("id", id)
		}

		return hw.Raw(">").Raw(inner.String()).Raw("</" + tag + ">").Err()
	})
}

// textContent returns the concatenated text of an HTML fragment, with entities decoded.
func textContent(fragment []byte) string {
	var b strings.Builder

	z := html.NewTokenizer(bytes.NewReader(fragment))

	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		default:
		}
	}
}
