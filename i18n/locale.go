// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"slices"

	"golang.org/x/text/language"
)

// BaseLocale is the locale the msgids are written in.
const BaseLocale = "en"

var baseTag = language.Make(BaseLocale)

// BaseTag returns the tag for [BaseLocale].
func BaseTag() language.Tag {
	return baseTag
}

// Languages returns the locales the site is rendered in: the base locale
// first, then every loaded catalogue ordered by tag. The language switcher
// and the static build both follow this order.
//
// It panics if Setup has not succeeded.
func Languages() []language.Tag {
	mustBeSetUp()

	return slices.Clone(supportedTags)
}

// IsSupported reports whether t is exactly one of [Languages], without
// falling back to a close match.
func IsSupported(t language.Tag) bool {
	mustBeSetUp()

	return slices.Contains(supportedTags, t)
}

func mustBeSetUp() {
	if matcher == nil {
		panic("i18n: Setup must be called first")
	}
}
