// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n provides internationalisation utilities backed by GNU gettext
.po catalogues.

Use the original English UI text as the msgid; do not invent keys.

	i18n.Tr(ctx, "Get started")
	i18n.TrC(ctx, "navbar", "Docs")
	i18n.TrN(ctx, "{{.Count}} lab", "{{.Count}} labs", n, "Count", n)

[MsgKey] values are templ components, so static content such as the homepage
feature list can hold them and render them directly:

	@features[0].Title

# Missing translations

Missing translations return the msgid unchanged. When StrictMissingKeys is
enabled, lookups missing from a non-base locale are logged once per
locale+key and the returned text is wrapped as "⟦...⟧".

# Catalogues

Catalogues live in po/<locale>.po and are embedded into the binary. The
template po/site.pot is regenerated with:

	go run ./cmd/i18n_extract
*/
package i18n
