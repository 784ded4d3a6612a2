// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog/log"
)

// compressMinSize is the smallest body worth compressing.
const compressMinSize = 1024

var compressWrapper = mustCompressWrapper()

func mustCompressWrapper() func(http.Handler) http.HandlerFunc {
	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(compressMinSize))
	if err != nil {
		log.Panic().Err(err).Msg("Failed to create compression wrapper")
	}

	return wrapper
}

// Compress gzips responses for clients that accept it.
func Compress(w http.ResponseWriter, r *http.Request, next http.Handler) {
	compressWrapper(next).ServeHTTP(w, r)
}
