// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"testing"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{1023, "1023"},
		{1024, "1.00K"},
		{1536, "1.50K"},
		{bytesInMB, "1.00M"},
		{3 * bytesInGB, "3.00G"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeSize(tt.in), "humanizeSize(%d)", tt.in)
	}
}

func TestSpanRecordsServerTimingMetric(t *testing.T) {
	t.Parallel()

	var header servertiming.Header

	ctx := servertiming.NewContext(context.Background(), &header)

	span := Span{Method: "GET", URL: "/"}
	span.Begin(ctx)
	span.End()

	// A second End must not reset the measured duration.
	first := span.Duration()
	span.End()

	assert.Equal(t, first, span.Duration())

	if assert.Len(t, header.Metrics, 1) {
		assert.Equal(t, "render", header.Metrics[0].Name)
		assert.Equal(t, "GET /", header.Metrics[0].Desc)
	}
}
