// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTMLWriter writes markup for hand-written components.
//
// The first write error is kept and every later call becomes a no-op,
// so a component can emit its markup and check [HTMLWriter.Err] once.
type HTMLWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

// NewHTMLWriter returns an HTMLWriter that renders child components with ctx.
func NewHTMLWriter(ctx context.Context, w io.Writer) *HTMLWriter {
	return &HTMLWriter{ctx: ctx, w: w}
}

// Raw writes trusted markup as is.
func (hw *HTMLWriter) Raw(s string) *HTMLWriter {
	if hw.err == nil {
		_, hw.err = io.WriteString(hw.w, s)
	}

	return hw
}

// Text writes s with HTML special characters escaped.
func (hw *HTMLWriter) Text(s string) *HTMLWriter {
	return hw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (hw *HTMLWriter) Attr(name, value string) *HTMLWriter {
	return hw.Raw(" " + name + `="`).Text(value).Raw(`"`)
}

// Component renders c in place.
func (hw *HTMLWriter) Component(c templ.Component) *HTMLWriter {
	if hw.err == nil && c != nil {
		hw.err = c.Render(hw.ctx, hw.w)
	}

	return hw
}

// Err returns the first error encountered, if any.
func (hw *HTMLWriter) Err() error {
	return hw.err
}
