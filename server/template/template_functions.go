// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/a-h/templ"
)

// Clsx merges class names into a single class attribute value.
//
// It accepts everything templ.Classes does: strings, templ.KV pairs and
// map[string]bool. Empty parts are dropped.
func Clsx(parts ...any) string {
	return templ.Classes(parts...).String()
}

// Slugify turns s into a lowercase, hyphen-separated anchor id.
//
// Letters and digits from any script are kept; everything else collapses into a single hyphen.
func Slugify(s string) string {
	var b strings.Builder

	pendingHyphen := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}

			pendingHyphen = false

			b.WriteRune(r)

			continue
		}

		pendingHyphen = true
	}

	return b.String()
}

// RenderToString converts a templ.Component to its string representation.
//
// Handling errors in templates is awkward, so if an error occurs during rendering,
// it is formatted into a string and returned.
func RenderToString(ctx context.Context, c templ.Component) string {
	var buffer bytes.Buffer

	if err := c.Render(ctx, &buffer); err != nil {
		return fmt.Errorf("templ: failed to render component: %w", err).Error()
	}

	return buffer.String()
}
