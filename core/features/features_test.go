// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/embedded-rust-101/site/i18n"
)

func TestListOrder(t *testing.T) {
	t.Parallel()

	list := List()
	require.Len(t, list, 3)

	titles := []i18n.MsgKey{list[0].Title, list[1].Title, list[2].Title}
	assert.Equal(t, []i18n.MsgKey{"Raspberry Pi Pico W", "Hardware Device", "Embedded Rust 101"}, titles)

	icons := []string{list[0].Icon, list[1].Icon, list[2].Icon}
	assert.Equal(t, []string{"pi-pico-w", "device", "rust_logo"}, icons)
}

func TestListReturnsCopy(t *testing.T) {
	t.Parallel()

	list := List()
	list[0].Title = "changed"

	assert.Equal(t, i18n.MsgKey("Raspberry Pi Pico W"), List()[0].Title)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"pi-pico-w": true, "device": true, "rust_logo": true}
	hasIcon := func(name string) bool { return known[name] }

	assert.NoError(t, Validate(List(), hasIcon))
	assert.NoError(t, Validate(nil, hasIcon))

	err := Validate([]Descriptor{
		{Title: " ", Icon: "device", Description: "ok"},
		{Title: "Blinky", Icon: "led", Description: ""},
	}, hasIcon)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.ErrorIs(t, err, ErrEmptyDescription)
	assert.ErrorIs(t, err, ErrUnknownIcon)
	assert.Contains(t, err.Error(), `feature 1 ("Blinky"): feature icon does not resolve to an asset: "led"`)
}
