// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"maps"
	"slices"
	"sync"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"codeberg.org/embedded-rust-101/site/config"
)

// Logger is the logger used by package i18n.
var Logger zerolog.Logger

func strictMissingKeys() bool {
	return config.Global.Internationalization.StrictMissingKeys
}

// untranslated collects, per locale, the messages strict mode found without a
// translation. Each message is logged the first time it is seen.
var untranslated = struct {
	sync.Mutex
	byLocale map[string]map[string]struct{}
}{byLocale: make(map[string]map[string]struct{})}

// reportMissing records that msgid (with optional msgctxt) has no translation
// for tag. Variants are dropped so that ro-RO-x-foo and ro-RO share a report.
func reportMissing(tag language.Tag, msgctxt, msgid string) {
	b, s, r := tag.Raw()
	locale, _ := language.Compose(b, s, r)

	key := msgid
	if msgctxt != "" {
		key = msgctxt + gotext.EotSeparator + msgid
	}

	untranslated.Lock()

	seen, ok := untranslated.byLocale[locale.String()]
	if !ok {
		seen = make(map[string]struct{})
		untranslated.byLocale[locale.String()] = seen
	}

	_, dup := seen[key]
	seen[key] = struct{}{}

	untranslated.Unlock()

	if dup {
		return
	}

	Logger.Warn().
		Str("lang", locale.String()).
		Str("msgctxt", msgctxt).
		Str("msgid", msgid).
		Msg("Untranslated string")
}

// Untranslated returns the messages reported missing so far in strict mode,
// keyed by locale. Each list is sorted; messages with a context are given as
// msgctxt, EOT, msgid as in a gettext catalogue.
func Untranslated() map[string][]string {
	untranslated.Lock()
	defer untranslated.Unlock()

	out := make(map[string][]string, len(untranslated.byLocale))
	for locale, seen := range untranslated.byLocale {
		out[locale] = slices.Sorted(maps.Keys(seen))
	}

	return out
}
