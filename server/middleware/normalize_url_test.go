// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		requestURL       string
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:           "Root path should not redirect",
			requestURL:     "/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Path without trailing slash should not redirect",
			requestURL:     "/css/styles.css",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Directory route keeps its slash",
			requestURL:     "/img/",
			expectedStatus: http.StatusOK,
		},
		{
			name:             "Locale directory should redirect",
			requestURL:       "/ro/",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/ro",
		},
		{
			name:             "Query parameters should be preserved",
			requestURL:       "/healthz/?verbose=1",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/healthz?verbose=1",
		},
		{
			name:             "Leading slashes cannot produce an off-site redirect",
			requestURL:       "//evil.example/",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/evil.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := Wrap(NormalizeURL, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.requestURL, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
		})
	}
}
