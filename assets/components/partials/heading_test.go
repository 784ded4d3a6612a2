// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package partials

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))

	return b.String()
}

func TestHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   int
		content templ.Component
		want    string
	}{
		{
			name:    "plain text",
			level:   3,
			content: templ.Raw("Hardware Device"),
			want:    `<h3 id="hardware-device">Hardware Device</h3>`,
		},
		{
			name:    "markup and entities",
			level:   2,
			content: templ.Raw("Rust <em>&amp;</em> C/C++"),
			want:    `<h2 id="rust-c-c">Rust <em>&amp;</em> C/C++</h2>`,
		},
		{
			name:    "level clamped low",
			level:   0,
			content: templ.Raw("Top"),
			want:    `<h1 id="top">Top</h1>`,
		},
		{
			name:    "level clamped high",
			level:   9,
			content: templ.Raw("Deep"),
			want:    `<h6 id="deep">Deep</h6>`,
		},
		{
			name:    "no id without text",
			level:   3,
			content: templ.Raw("❤️"),
			want:    `<h3>❤️</h3>`,
		},
		{
			name:  "nil content",
			level: 4,
			want:  `<h4></h4>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, render(t, Heading(tt.level, tt.content)))
		})
	}
}

func TestHeadingPropagatesContentError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return errBoom })

	err := Heading(3, failing).Render(context.Background(), io.Discard)
	assert.ErrorIs(t, err, errBoom)
}
