// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
)

type failAfter struct {
	n      int
	writes int
}

var errWriteFailed = errors.New("write failed")

func (f *failAfter) Write(p []byte) (int, error) {
	f.writes++
	if f.writes > f.n {
		return 0, errWriteFailed
	}

	return len(p), nil
}

func TestHTMLWriter(t *testing.T) {
	t.Parallel()

	var b strings.Builder

	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<b>child</b>")

		return err
	})

	err := NewHTMLWriter(context.Background(), &b).
		Raw("<p").Attr("title", `a "quote"`).Raw(">").
		Text("1 < 2 & 3").
		Component(child).
		Component(nil).
		Raw("</p>").
		Err()

	assert.NoError(t, err)
	assert.Equal(t, `<p title="a &#34;quote&#34;">1 &lt; 2 &amp; 3<b>child</b></p>`, b.String())
}

func TestHTMLWriterStopsAtFirstError(t *testing.T) {
	t.Parallel()

	w := &failAfter{n: 1}

	err := NewHTMLWriter(context.Background(), w).Raw("a").Raw("b").Raw("c").Err()

	assert.ErrorIs(t, err, errWriteFailed)
	assert.Equal(t, 2, w.writes)
}
