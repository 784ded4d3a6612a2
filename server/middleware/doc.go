// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware of the site server.

The chain is assembled in router.RegisterMiddleware; fallible route handlers
are adapted with CatchError.
*/
package middleware
