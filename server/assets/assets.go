// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides access to the site's embedded static assets.
*/
package assets

import (
	"io/fs"
)

// FS provides access to the embedded file system.
//
// It is assigned once by package main before any handler runs.
var FS fs.FS
