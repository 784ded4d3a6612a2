// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package fragments holds the components that make up sections of a page.
*/
package fragments
