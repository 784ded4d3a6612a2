// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package partials holds small components shared by fragments and views,
such as headings.
*/
package partials
