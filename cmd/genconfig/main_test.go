// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEnvFile(t *testing.T) {
	t.Parallel()

	out := renderEnvFile()

	assert.True(t, strings.HasPrefix(out, envFileHeader))
	assert.Contains(t, out, "## Basic\n")
	assert.Contains(t, out, "SITE_HOST=\"localhost\"\n", "TCP fallback is shown even though it is not a default")
	assert.Contains(t, out, "SITE_PORT=\"8080\"\n")
	assert.Contains(t, out, "# SITE_TITLE=Embedded Rust 101\n")
	assert.Contains(t, out, "# SITE_UNIXSOCKET=\n")
	assert.Contains(t, out, "# SITE_LOG_OUTPUTS=/dev/stderr\n")
	assert.NotContains(t, out, "## Build")
	assert.NotContains(t, out, "## Instance")
}

func TestRenderYAMLFile(t *testing.T) {
	t.Parallel()

	out, err := renderYAMLFile()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, yamlFileHeader))
	assert.Contains(t, out, "\nbasic:\n")
	assert.Contains(t, out, "  # host: localhost\n")
	assert.Contains(t, out, "  # port: ")
	assert.Contains(t, out, "  # cacheControlMaxAge: 5m0s\n")
}
