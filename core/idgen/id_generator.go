// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package idgen makes short identifiers for request tracing and asset cache busting.
package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// entropyBytes is the number of random bytes appended to the time prefix.
const entropyBytes = 3

// Make makes a short ID with a 6 character timestamp and 3 bytes of entropy.
func Make() string {
	return MakeAt(time.Now())
}

// MakeAt is Make with an explicit clock reading.
func MakeAt(t time.Time) string {
	var entropy [entropyBytes]byte

	_, _ = rand.Read(entropy[:])

	return maketime(t) + base64.RawURLEncoding.EncodeToString(entropy[:])
}

func maketime(t time.Time) string {
	return t.Format("150405")
}
