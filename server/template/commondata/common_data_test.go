// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package commondata

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"codeberg.org/embedded-rust-101/site/i18n"
)

func TestMain(m *testing.M) {
	po := "msgid \"\"\nmsgstr \"\"\n\"Language: ro\\n\"\n"

	if err := i18n.Setup(fstest.MapFS{"po/ro.po": {Data: []byte(po)}}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func TestPopulatePageCommonData(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://rust.example/?utm=x", nil)
	r = r.WithContext(i18n.WithTag(r.Context(), language.Romanian))

	var data PageCommonData

	PopulatePageCommonData(r, &data)

	assert.Equal(t, "http://rust.example", data.BaseURL)
	assert.Equal(t, "/", data.CurrentPath)
	assert.Equal(t, language.Romanian, data.Lang)

	require.Len(t, data.Languages, 2)

	en, ro := data.Languages[0], data.Languages[1]

	assert.Equal(t, "English", en.Name)
	assert.Equal(t, "/?lang=en", en.URL)
	assert.False(t, en.Current)

	assert.NotEmpty(t, ro.Name)
	assert.Equal(t, "/?lang=ro", ro.URL)
	assert.True(t, ro.Current)
}

func TestForStaticPage(t *testing.T) {
	t.Parallel()

	data := ForStaticPage("/ro/", language.Romanian, "abc", func(tag language.Tag) string {
		if tag == language.English {
			return "/"
		}

		return "/" + tag.String() + "/"
	})

	assert.Empty(t, data.BaseURL)
	assert.Equal(t, "abc", data.AssetCacheID)
	assert.Equal(t, "/ro/", data.CurrentPath)

	urls := make([]string, 0, len(data.Languages))
	for _, l := range data.Languages {
		urls = append(urls, l.URL)
	}

	assert.Equal(t, []string{"/", "/ro/"}, urls)
}
