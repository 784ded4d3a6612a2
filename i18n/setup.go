// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

var (
	// poDomain is the gettext domain to load under each locale.
	poDomain = "site"

	// poDir is the directory holding the catalogues inside the filesystem given to Setup.
	poDir = "po"

	// localesByTag maps canonical BCP 47 tags, for example
	// "en", "ro", to their loaded gotext.Locale.
	localesByTag map[string]*gotext.Locale

	// supportedTags holds the list of BCP 47 tags for which a locale was successfully loaded.
	supportedTags []language.Tag

	// matcher is a private [language.Matcher] derived from the loaded locales.
	matcher language.Matcher
)

// Setup initialises package i18n by loading gettext catalogues from fsys
// and constructing a language matcher.
//
// The expected layout is:
//
//	po/<locale>.po
//
// The <locale> filename part may use hyphens or underscores, for example "pt-BR.po" or "pt_BR.po",
// and is normalised to a canonical BCP 47 language tag. The template file, "po/site.pot",
// is ignored. The base locale is always included and acts as the default fallback.
//
// Calling Setup again replaces the previously loaded locales and matcher.
func Setup(fsys fs.FS) error {
	Logger = log.With().Str("sys", "i18n").Logger()

	loaded := make(map[string]*gotext.Locale)

	entries, err := fs.ReadDir(fsys, poDir)
	if err != nil {
		return fmt.Errorf("failed to read po directory: %w", err)
	}

	var tagsList []language.Tag

	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(fileName, ".po") {
			continue
		}

		localeName := strings.TrimSuffix(fileName, ".po")

		t, err := language.Parse(strings.ReplaceAll(localeName, "_", "-"))
		if err != nil {
			Logger.Warn().Err(err).Str("file", fileName).Msg("Skipping invalid locale file")

			continue
		}

		canonical := t.String()

		po := gotext.NewPoFS(fsys)
		po.ParseFile(path.Join(poDir, fileName))

		loc := gotext.NewLocale("", canonical) // Base path is unused when manually adding translators.
		loc.AddTranslator(poDomain, po)

		loaded[canonical] = loc

		tagsList = append(tagsList, t)

		Logger.Info().
			Str("locale", canonical).
			Str("domain", poDomain).
			Msg("Loaded locale")
	}

	// baseTag is first to make it the default fallback for matching.
	all := make([]language.Tag, 0, len(tagsList)+1)
	all = append(all, baseTag)

	sort.Slice(tagsList, func(i, j int) bool { return tagsList[i].String() < tagsList[j].String() })

	for _, t := range tagsList {
		if t == baseTag {
			continue
		}

		all = append(all, t)
	}

	localesByTag = loaded
	supportedTags = all
	matcher = language.NewMatcher(all)

	return nil
}
