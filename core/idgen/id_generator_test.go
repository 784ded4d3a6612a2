// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaketime(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.Equal(t, strings.ReplaceAll(now.Format("15:04:05"), ":", ""), maketime(now))
}

func TestMakeAt(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	a := MakeAt(at)
	b := MakeAt(at)

	// 6 time characters plus 4 base64 characters for 3 bytes.
	assert.Len(t, a, 10)
	assert.True(t, strings.HasPrefix(a, "092653"))
	assert.True(t, strings.HasPrefix(b, "092653"))
}
