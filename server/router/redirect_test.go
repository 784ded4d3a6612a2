// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirectPermanent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requestURL string
		location   string
	}{
		{requestURL: "/index.html", location: "/"},
		{requestURL: "/index.html?lang=ro", location: "/?lang=ro"},
		{requestURL: "/index.html?utm_source=x", location: "/"},
	}

	for _, tt := range tests {
		rr := httptest.NewRecorder()

		redirectPermanent("/").ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.requestURL, nil))

		assert.Equal(t, http.StatusPermanentRedirect, rr.Code, tt.requestURL)
		assert.Equal(t, tt.location, rr.Header().Get("Location"), tt.requestURL)
	}
}
