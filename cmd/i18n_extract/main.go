// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command i18n_extract scans the module for translatable messages and
// writes a gettext template.
package main

import (
	"flag"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/packages"

	"codeberg.org/embedded-rust-101/site/core/audit"
)

func main() {
	outPath := flag.String("o", "po/site.pot", "output file")
	flag.Parse()

	audit.SetDefaultLogger("i18n_extract")

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get working directory")
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, "./...")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load packages")
	}

	if packages.PrintErrors(pkgs) > 0 {
		log.Fatal().Msg("Failed to load packages due to errors")
	}

	i18nPkgs := findI18nPkgPaths(pkgs)
	if len(i18nPkgs) == 0 {
		log.Fatal().Msg("No i18n package with a MsgKey type found")
	}

	refs := refSet{}
	root := findProjectRoot(wd)

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		e := &extractor{
			refs:        refs,
			projectRoot: root,
			fset:        p.Fset,
			info:        p.TypesInfo,
			i18nPkgs:    i18nPkgs,
		}
		e.inspect(p.Syntax)
	}

	var b strings.Builder
	writePOT(&b, refs, detectVersion(), time.Now())

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}

	if err := os.WriteFile(*outPath, []byte(b.String()), 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("Failed to write output file")
	}

	log.Info().
		Str("path", *outPath).
		Int("messages", len(refs)).
		Msg("Wrote message template")
}

// detectVersion resolves a human-friendly version string using git describe.
// Falls back to "dev" when git is unavailable or this is not a git checkout.
func detectVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "dev"
	}

	return strings.TrimSpace(string(out))
}

// findProjectRoot returns the git toplevel directory, else the nearest
// parent containing go.mod, else wd.
func findProjectRoot(wd string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = wd

	if out, err := cmd.Output(); err == nil {
		if root := strings.TrimSpace(string(out)); root != "" {
			return filepath.Clean(root)
		}
	}

	for dir := filepath.Clean(wd); ; {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return wd
		}

		dir = parent
	}
}
