// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package features holds the cards shown in the homepage feature grid.
*/
package features

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/embedded-rust-101/site/i18n"
)

var (
	ErrEmptyTitle       = errors.New("feature title is empty")
	ErrEmptyDescription = errors.New("feature description is empty")
	ErrUnknownIcon      = errors.New("feature icon does not resolve to an asset")
)

// Descriptor describes one feature card.
//
// Title and Description are source-language message ids, translated at
// render time. Icon is the file name of an SVG under assets/img, without
// the extension.
type Descriptor struct {
	Title       i18n.MsgKey
	Icon        string
	Description i18n.MsgKey
}

// featureList is in display order, left to right, wrapping into rows.
var featureList = [...]Descriptor{
	{
		Title:       "Raspberry Pi Pico W",
		Icon:        "pi-pico-w",
		Description: "Use the RP2040 processor, one of the most affordable and easy to use MCUs, on the Raspberry Pi Pico W.",
	},
	{
		Title:       "Hardware Device",
		Icon:        "device",
		Description: "Design an implement hardware devices using the Raspberry Pi Pico W.",
	},
	{
		Title: "Embedded Rust 101",
		Icon:  "rust_logo",
		Description: "Use Rust, a new modern and safe programming language, that is set to replace C/C++. " +
			"Did you know that Rust is the most ❤️ language on GitHub?",
	},
}

// List returns the homepage features in display order.
//
// The returned slice is a copy and is safe to modify.
func List() []Descriptor {
	list := make([]Descriptor, len(featureList))
	copy(list, featureList[:])

	return list
}

// Validate reports every descriptor in list with an empty title or
// description, or whose icon hasIcon cannot resolve.
//
// All problems are returned at once, joined with errors.Join.
func Validate(list []Descriptor, hasIcon func(name string) bool) error {
	var errs []error

	for i, d := range list {
		if strings.TrimSpace(string(d.Title)) == "" {
			errs = append(errs, fmt.Errorf("feature %d: %w", i, ErrEmptyTitle))
		}

		if strings.TrimSpace(string(d.Description)) == "" {
			errs = append(errs, fmt.Errorf("feature %d (%q): %w", i, d.Title, ErrEmptyDescription))
		}

		if !hasIcon(d.Icon) {
			errs = append(errs, fmt.Errorf("feature %d (%q): %w: %q", i, d.Title, ErrUnknownIcon, d.Icon))
		}
	}

	return errors.Join(errs...)
}
