// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><circle cx="5" cy="5" r="4"/></svg>`

func loadTestIcons(t *testing.T) {
	t.Helper()

	fsys := fstest.MapFS{
		"img/dot.svg":       {Data: []byte("<!-- generated -->\n" + testSVG + "\n")},
		"img/readme.txt":    {Data: []byte("not an icon")},
		"img/nested/x.svg":  {Data: []byte(testSVG)},
		"img/other_dot.svg": {Data: []byte(testSVG)},
	}

	require.NoError(t, LoadIcons(fsys, "img"))
}

func TestLoadIcons(t *testing.T) {
	loadTestIcons(t)

	assert.Equal(t, []string{"dot", "other_dot"}, IconNames())
	assert.True(t, HasIcon("dot"))
	assert.False(t, HasIcon("readme"))
	assert.False(t, HasIcon("x"), "subdirectories are not scanned")
}

func TestLoadIconsRejectsInvalidSVG(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "not svg", content: `<div>hi</div>`, wantErr: errNotSVG},
		{name: "stray text", content: `oops ` + testSVG, wantErr: errNotSVG},
		{name: "two roots", content: testSVG + testSVG, wantErr: errMultipleRoots},
		{name: "empty", content: "  \n", wantErr: errEmptyIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadIcons(fstest.MapFS{"img/bad.svg": {Data: []byte(tt.content)}}, "img")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "img/bad.svg")
		})
	}
}

func TestLoadIconsMissingDirectory(t *testing.T) {
	assert.Error(t, LoadIcons(fstest.MapFS{}, "img"))
}

func TestRenderIcon(t *testing.T) {
	loadTestIcons(t)

	out := RenderIcon("dot", "icon_abc", "role", "img", "aria-label", `"Dot" & co`)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	svg := doc.Find("svg")
	require.Equal(t, 1, svg.Length())

	assert.Equal(t, "icon_abc", svg.AttrOr("class", ""))
	assert.Equal(t, "img", svg.AttrOr("role", ""))
	assert.Equal(t, `"Dot" & co`, svg.AttrOr("aria-label", ""))
	assert.Equal(t, 1, svg.Find("circle").Length())
}

func TestRenderIconWithoutExtras(t *testing.T) {
	loadTestIcons(t)

	assert.Equal(t, "<!-- generated -->\n"+testSVG, RenderIcon("dot", ""))
}

func TestRenderIconMissing(t *testing.T) {
	loadTestIcons(t)

	assert.Equal(t, "[missing icon: &lt;nope&gt;]", RenderIcon("<nope>", "cls"))
}
