// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"codeberg.org/embedded-rust-101/site/assets/styles"
	"codeberg.org/embedded-rust-101/site/assets/views"
	"codeberg.org/embedded-rust-101/site/core/features"
	"codeberg.org/embedded-rust-101/site/i18n"
	"codeberg.org/embedded-rust-101/site/server/template/commondata"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	imgDir = "assets/img"
)

// Builder writes the static site.
//
// Layout: index.html for the base locale, <locale>/index.html for the
// others, css/styles.css and img/. With Precompress, every file gets .gz
// and .zst siblings for servers that serve precompressed content.
type Builder struct {
	OutDir      string
	Precompress bool
	Site        views.SiteData
	Features    []features.Descriptor
	// Assets holds assets/img.
	Assets   fs.FS
	Revision string
	Logger   zerolog.Logger

	// zstdLevel overrides zstd.SpeedBestCompression when set.
	zstdLevel zstd.EncoderLevel
	zstdEnc   *zstd.Encoder
}

// AssetCacheID derives the stylesheet cache buster from the stylesheet and
// the build revision, so rebuilding unchanged sources keeps the id.
func (b *Builder) AssetCacheID() string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(b.Revision+"\n"+styles.Stylesheet())).String()
}

// pagePath returns the output path of the homepage for tag.
func pagePath(tag language.Tag) string {
	if tag == i18n.BaseTag() {
		return "index.html"
	}

	return path.Join(tag.String(), "index.html")
}

// pageURL returns the site-relative URL of the homepage for tag.
func (b *Builder) pageURL(tag language.Tag) string {
	if tag == i18n.BaseTag() {
		return b.Site.BasePath
	}

	return b.Site.BasePath + tag.String() + "/"
}

// Build renders every page concurrently and writes the output tree.
func (b *Builder) Build(ctx context.Context) error {
	start := time.Now()
	cacheID := b.AssetCacheID()

	if b.Precompress {
		level := b.zstdLevel
		if level == 0 {
			level = zstd.SpeedBestCompression
		}

		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
		if err != nil {
			return fmt.Errorf("creating zstd encoder: %w", err)
		}

		// EncodeAll is safe for concurrent use by the writers below.
		b.zstdEnc = enc
		defer enc.Close()
	}

	g, ctx := errgroup.WithContext(ctx)

	for _, tag := range i18n.Languages() {
		g.Go(func() error {
			page, err := b.renderIndex(ctx, tag, cacheID)
			if err != nil {
				return fmt.Errorf("render %s: %w", tag, err)
			}

			return b.write(pagePath(tag), page)
		})
	}

	g.Go(func() error {
		return b.write("css/styles.css", []byte(styles.Stylesheet()))
	})

	g.Go(func() error {
		return b.copyImages()
	})

	if err := g.Wait(); err != nil {
		return err
	}

	for locale, msgids := range i18n.Untranslated() {
		b.Logger.Warn().
			Str("lang", locale).
			Strs("msgids", msgids).
			Msg("Locale has untranslated strings")
	}

	b.Logger.Info().
		Str("dir", b.OutDir).
		Str("cacheid", cacheID).
		Dur("took", time.Since(start)).
		Msg("Built static site")

	return nil
}

func (b *Builder) renderIndex(ctx context.Context, tag language.Tag, cacheID string) ([]byte, error) {
	data := views.IndexData{
		Common:   commondata.ForStaticPage(b.pageURL(tag), tag, cacheID, b.pageURL),
		Site:     b.Site,
		Features: b.Features,
	}

	var buf bytes.Buffer
	if err := views.Index(data).Render(i18n.WithTag(ctx, tag), &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (b *Builder) copyImages() error {
	return fs.WalkDir(b.Assets, imgDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		content, err := fs.ReadFile(b.Assets, p)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel("assets", filepath.FromSlash(p))
		if err != nil {
			return err
		}

		return b.write(filepath.ToSlash(rel), content)
	})
}

// write stores content at name under OutDir, plus its compressed siblings.
func (b *Builder) write(name string, content []byte) error {
	dst := filepath.Join(b.OutDir, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return err
	}

	if err := os.WriteFile(dst, content, filePerm); err != nil {
		return err
	}

	b.Logger.Debug().Str("file", name).Int("size", len(content)).Msg("Wrote file")

	if !b.Precompress {
		return nil
	}

	gz, err := gzipBytes(content)
	if err != nil {
		return fmt.Errorf("gzip %s: %w", name, err)
	}

	if err := os.WriteFile(dst+".gz", gz, filePerm); err != nil {
		return err
	}

	return os.WriteFile(dst+".zst", b.zstdEnc.EncodeAll(content, nil), filePerm)
}

func gzipBytes(content []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}

	if _, err := zw.Write(content); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
