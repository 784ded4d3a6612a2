// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command buildsite renders the homepage for every locale into a static
// directory that any file server can host.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"codeberg.org/embedded-rust-101/site/config"
	"codeberg.org/embedded-rust-101/site/core/audit"
	"codeberg.org/embedded-rust-101/site/core/features"
	"codeberg.org/embedded-rust-101/site/i18n"
	"codeberg.org/embedded-rust-101/site/server/routes"
	"codeberg.org/embedded-rust-101/site/server/template"
)

func main() {
	root := flag.String("root", ".", "directory containing assets/ and po/")
	outDir := flag.String("o", "", "output directory (default: output.dir from the configuration)")

	audit.SetDefaultLogger("build")

	if err := config.Global.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := log.With().Str("sys", "build").Logger()

	srcFS := os.DirFS(*root)

	if err := i18n.Setup(srcFS); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize i18n engine")
	}

	if err := template.LoadIcons(srcFS, "assets/img"); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load icons")
	}

	if err := features.Validate(features.List(), template.HasIcon); err != nil {
		logger.Fatal().Err(err).Msg("Invalid homepage features")
	}

	b := &Builder{
		OutDir:      config.Global.Output.Dir,
		Precompress: config.Global.Output.Precompress,
		Site:        routes.SiteData(),
		Features:    features.List(),
		Assets:      srcFS,
		Revision:    config.Global.Build.Revision(),
		Logger:      logger,
	}

	if *outDir != "" {
		b.OutDir = *outDir
	}

	if err := b.Build(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("Build failed")
	}
}
