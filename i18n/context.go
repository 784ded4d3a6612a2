// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type contextKeyType struct{}

var tagKey = contextKeyType{}

const (
	// LangParam is the URL query parameter holding a preferred UI language as a BCP 47 tag.
	LangParam = "lang"

	// LangCookie is the cookie remembering the preferred UI language.
	LangCookie = "lang"
)

// WithTag stores t in ctx and returns a derived context that carries it.
//
// Passing the zero value of [language.Tag] clears any existing value.
func WithTag(ctx context.Context, t language.Tag) context.Context {
	return context.WithValue(ctx, tagKey, t)
}

// TagFrom returns the language tag stored in ctx, or the tag for [BaseLocale]
// if none is present. It never returns the zero value of [language.Tag].
func TagFrom(ctx context.Context) language.Tag {
	if ctx != nil {
		if t, _ := ctx.Value(tagKey).(language.Tag); t != (language.Tag{}) {
			return t
		}
	}

	return baseTag
}

// FromRequest returns the best supported language tag for r by inspecting
// user preferences in priority order:
// 1) query parameter [LangParam]
// 2) cookie [LangCookie]
// 3) Accept-Language header
//
// If [LangParam] is "auto" (case-insensitive), the cookie is ignored.
//
// If r is nil, or if Setup has not been called, FromRequest returns the tag for [BaseLocale].
func FromRequest(r *http.Request) language.Tag {
	if r == nil || matcher == nil {
		return baseTag
	}

	q := r.URL.Query().Get(LangParam)
	auto := strings.EqualFold(q, "auto")

	var preferred []language.Tag

	if q != "" && !auto {
		preferred = appendParsed(preferred, q)
	}

	if !auto {
		if c, err := r.Cookie(LangCookie); err == nil && c.Value != "" {
			preferred = appendParsed(preferred, c.Value)
		}
	}

	if al := r.Header.Get("Accept-Language"); al != "" {
		if tags, _, err := language.ParseAcceptLanguage(al); err == nil {
			preferred = append(preferred, tags...)
		}
	}

	if len(preferred) == 0 {
		return baseTag
	}

	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return baseTag
	}

	return supportedTags[index]
}

// WithRequest is equivalent to WithTag(ctx, FromRequest(r)).
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return WithTag(ctx, FromRequest(r))
}

// appendParsed appends the tag parsed from s, ignoring malformed input.
func appendParsed(tags []language.Tag, s string) []language.Tag {
	t, err := language.Parse(s)
	if err != nil {
		return tags
	}

	return append(tags, t)
}
