// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"codeberg.org/embedded-rust-101/site/assets/styles"
	"codeberg.org/embedded-rust-101/site/core/features"
	"codeberg.org/embedded-rust-101/site/i18n"
	"codeberg.org/embedded-rust-101/site/server/template"
)

func TestMain(m *testing.M) {
	if err := i18n.Setup(os.DirFS("../../..")); err != nil {
		panic(err)
	}

	if err := template.LoadIcons(os.DirFS("../.."), "img"); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func renderDoc(t *testing.T, ctx context.Context, c templ.Component) (*goquery.Document, string) {
	t.Helper()

	var b strings.Builder
	require.NoError(t, c.Render(ctx, &b))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)

	return doc, b.String()
}

func headingTexts(doc *goquery.Document) []string {
	return doc.Find(".col h3").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func TestHomepageFeatures(t *testing.T) {
	t.Parallel()

	doc, _ := renderDoc(t, context.Background(), HomepageFeatures(features.List()))

	section := doc.Find("section")
	require.Equal(t, 1, section.Length())
	assert.Equal(t, styles.Class("features"), section.AttrOr("class", ""))

	blocks := doc.Find("section > .container > .row > .col.col--4")
	require.Equal(t, 3, blocks.Length())

	blocks.Each(func(_ int, block *goquery.Selection) {
		assert.Equal(t, 1, block.Find("h1, h2, h3, h4, h5, h6").Length(), "one heading per block")
		assert.Equal(t, 1, block.Find("p").Length())

		svg := block.Find(".text--center > svg")
		if assert.Equal(t, 1, svg.Length()) {
			assert.Equal(t, styles.Class("featureSvg"), svg.AttrOr("class", ""))
			assert.Equal(t, "img", svg.AttrOr("role", ""))
		}
	})

	assert.Equal(t, []string{"Raspberry Pi Pico W", "Hardware Device", "Embedded Rust 101"}, headingTexts(doc))
	assert.Equal(t, "hardware-device", doc.Find("h3").Eq(1).AttrOr("id", ""))
	assert.Contains(t, doc.Find("p").Eq(2).Text(), "the most ❤️ language on GitHub?")
}

func TestHomepageFeaturesHeadingsMatchTitles(t *testing.T) {
	t.Parallel()

	list := features.List()

	doc, _ := renderDoc(t, context.Background(), HomepageFeatures(list))

	headings := headingTexts(doc)
	require.Len(t, headings, len(list))

	for i, d := range list {
		assert.Equal(t, string(d.Title), headings[i])
	}
}

func TestHomepageFeaturesPreservesOrder(t *testing.T) {
	t.Parallel()

	list := features.List()
	list[0], list[2] = list[2], list[0]

	doc, _ := renderDoc(t, context.Background(), HomepageFeatures(list))

	assert.Equal(t, []string{"Embedded Rust 101", "Hardware Device", "Raspberry Pi Pico W"}, headingTexts(doc))
}

func TestHomepageFeaturesEmpty(t *testing.T) {
	t.Parallel()

	doc, _ := renderDoc(t, context.Background(), HomepageFeatures(nil))

	assert.Equal(t, 1, doc.Find("section > .container > .row").Length())
	assert.Equal(t, 0, doc.Find(".row").Children().Length())
}

func TestHomepageFeaturesIsIdempotent(t *testing.T) {
	t.Parallel()

	_, first := renderDoc(t, context.Background(), HomepageFeatures(features.List()))
	_, second := renderDoc(t, context.Background(), HomepageFeatures(features.List()))

	assert.Equal(t, first, second)
}

func TestHomepageFeaturesTranslated(t *testing.T) {
	t.Parallel()

	ctx := i18n.WithTag(context.Background(), language.Romanian)

	doc, _ := renderDoc(t, ctx, HomepageFeatures(features.List()))

	assert.Equal(t, []string{"Raspberry Pi Pico W", "Dispozitiv hardware", "Embedded Rust 101"}, headingTexts(doc))
	assert.Equal(t, "dispozitiv-hardware", doc.Find("h3").Eq(1).AttrOr("id", ""))
	assert.Contains(t, doc.Find("p").Eq(1).Text(), "Proiectează")
}

func TestFeatureMissingIcon(t *testing.T) {
	t.Parallel()

	doc, _ := renderDoc(t, context.Background(), Feature(features.Descriptor{
		Title:       "Blinky",
		Icon:        "led",
		Description: "Toggle a GPIO.",
	}))

	assert.Equal(t, 0, doc.Find("svg").Length())
	assert.Equal(t, "[missing icon: led]", strings.TrimSpace(doc.Find(".col > .text--center").First().Text()))
	assert.Equal(t, "Blinky", doc.Find("h3").Text())
	assert.Equal(t, "Toggle a GPIO.", doc.Find("p").Text())
}
