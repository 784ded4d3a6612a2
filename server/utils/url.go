// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net/http"
	"net/url"
)

// GetQueryParam retrieves the value of a query parameter by name.
//
// If the parameter is not present, it returns the provided default value or an empty string.
func GetQueryParam(r *http.Request, name string, defaultValue ...string) string {
	v := r.URL.Query().Get(name)
	if v != "" {
		return v
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}

// WithQueryParam returns path with the query parameter key set to value,
// replacing any previous value and keeping the other parameters.
func WithQueryParam(path string, query url.Values, key, value string) string {
	q := make(url.Values, len(query)+1)
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}

	q.Set(key, value)

	return path + "?" + q.Encode()
}
