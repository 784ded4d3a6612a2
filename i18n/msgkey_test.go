// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMsgKeyAsComponent(t *testing.T) {
	var _ templ.Component = MsgKey("foo")
}

func TestMsgKeyRenderEscapes(t *testing.T) {
	var b strings.Builder

	require.NoError(t, MsgKey("C/C++ <3 & Rust").Render(context.Background(), &b))

	assert.Equal(t, "C/C++ &lt;3 &amp; Rust", b.String())
}
