// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"text/template"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// templateCache caches compiled templates per unique template text.
var templateCache sync.Map // key: text, value: *template.Template

// Vars holds named placeholder values for a translation.
type Vars map[string]any

// Tr returns the translated string for a source message id (msgid), which should
// be the original English UI text. If key-value pairs are provided, the translation
// is formatted using text/template-style named placeholders.
//
// If a translation is not found, Tr returns the msgid unchanged, or visibly wrapped
// if strict mode is enabled.
func Tr(ctx context.Context, msgid string, kv ...any) string {
	return translate(ctx, "", msgid, "", 0, false, v(kv...))
}

// TrC translates a source message id (msgid) with an explicit disambiguating
// context, similar to gettext's pgettext.
func TrC(ctx context.Context, contextKey, msgid string, kv ...any) string {
	return translate(ctx, contextKey, msgid, "", 0, false, v(kv...))
}

// TrN translates a singular or plural message depending on n. If a translation
// is missing, we choose singular when n == 1, otherwise plural.
func TrN(ctx context.Context, singular, plural string, n int, kv ...any) string {
	return translate(ctx, "", singular, plural, n, true, v(kv...))
}

func translate(
	ctx context.Context,
	contextKey, singular, plural string,
	n int,
	pluralMode bool,
	vars Vars,
) string {
	loc, matched := resolveLocale(TagFrom(ctx))

	base := singular
	if pluralMode && n != 1 {
		base = plural
	}

	finalText := base
	found := false

	if loc != nil {
		switch {
		case pluralMode && contextKey != "":
			found = loc.IsTranslatedNDC(poDomain, singular, n, contextKey)
			if found {
				finalText = loc.GetNDC(poDomain, singular, plural, n, contextKey)
			}
		case pluralMode:
			found = loc.IsTranslatedND(poDomain, singular, n)
			if found {
				finalText = loc.GetND(poDomain, singular, plural, n)
			}
		// Singular lookups are checked as n == 1: the Romanian plural rule maps
		// n == 0 to the second form, which a msgstr without plurals never has.
		case contextKey != "":
			found = loc.IsTranslatedNDC(poDomain, singular, 1, contextKey)
			if found {
				finalText = loc.GetDC(poDomain, singular, contextKey)
			}
		default:
			found = loc.IsTranslatedND(poDomain, singular, 1)
			if found {
				finalText = loc.GetD(poDomain, singular)
			}
		}
	}

	// The base locale is the msgid itself, so it is never missing.
	if !found && matched != baseTag && strictMissingKeys() {
		reportMissing(matched, contextKey, singular)

		finalText = "⟦" + base + "⟧"
	}

	return render(matched, finalText, vars)
}

// render formats s as a text/template using the provided data.
func render(locale language.Tag, s string, data Vars) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	var tmpl *template.Template
	if t, ok := templateCache.Load(s); ok {
		tmpl, _ = t.(*template.Template)
	} else {
		var err error

		tmpl, err = template.New("msg").Option("missingkey=error").Parse(s)
		if err != nil {
			Logger.Error().Err(err).Str("locale", locale.String()).Str("text", s).Msg("Template parse error")

			return s
		}

		templateCache.Store(s, tmpl)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		Logger.Error().Err(err).Str("locale", locale.String()).Str("text", s).Msg("Template execute error")

		return s
	}

	return buf.String()
}

// resolveLocale matches t to one of the loaded locales and returns the
// corresponding gotext.Locale and the matched tag.
// If no matcher or no locale is found, it returns nil and baseTag.
func resolveLocale(t language.Tag) (*gotext.Locale, language.Tag) {
	if matcher == nil {
		return nil, baseTag
	}

	_, index, _ := matcher.Match(t)
	matched := supportedTags[index]

	return localesByTag[matched.String()], matched
}

// v builds Vars from alternating key, value pairs.
// Panics on programmer error.
func v(kv ...any) Vars {
	if len(kv)%2 != 0 {
		panic("i18n: odd number of arguments, want key, value pairs")
	}

	m := make(Vars, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("i18n: key must be string")
		}

		m[k] = kv[i+1]
	}

	return m
}
