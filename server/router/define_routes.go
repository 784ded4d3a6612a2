// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/pprof"
	"runtime/trace"
	"time"

	"codeberg.org/embedded-rust-101/site/config"
	"codeberg.org/embedded-rust-101/site/server/assets"
	"codeberg.org/embedded-rust-101/site/server/middleware"
	"codeberg.org/embedded-rust-101/site/server/routes"
)

// DefineRoutes sets up all the routes for the application.
func (router *Router) DefineRoutes() {
	// Serve files from subdirectories within 'assets'.
	// Patterns ending in "/" are prefix matches.
	router.Handle("GET /img/", fileServer())

	router.HandleFunc("GET /css/styles.css", middleware.CatchError(routes.Stylesheet))
	router.HandleFunc("GET /healthz", middleware.CatchError(routes.Healthz))

	// Paths written by cmd/buildsite, so links into a static build keep working.
	router.HandleFunc("GET /index.html", redirectPermanent(config.Global.Site.BasePath))
	router.HandleFunc("GET /{lang}", middleware.CatchError(routes.LanguageRedirect))

	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", middleware.CatchError(routes.IndexPage))

	// Everything else gets the themed 404 page.
	router.HandleFunc("/", middleware.CatchError(routes.NotFound))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}
}

// Serve static files from embedded assets.
func fileServer() http.HandlerFunc {
	staticContentFS, err := fs.Sub(assets.FS, "assets")
	if err != nil {
		panic(fmt.Errorf("failed to create sub-filesystem for embedded 'assets' directory: %w", err))
	}

	fileServer := http.FileServer(http.FS(staticContentFS))

	return func(w http.ResponseWriter, r *http.Request) {
		// Using a strong ETag for static files embedded via go:embed
		// ref: https://www.rfc-editor.org/rfc/rfc9110#weak.and.strong.validators
		//
		// go:embed requires rebuilding when files change, so a per-instance
		// id makes browsers fetch fresh content after any deployment.
		w.Header().Set("ETag", `"`+config.Global.Instance.AssetCacheID+`"`)
		fileServer.ServeHTTP(w, r)
	}
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	if !flightRecorder.Enabled() {
		if err := flightRecorder.Start(); err != nil {
			panic(err)
		}
	}

	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
