// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))

	logger.With("service", "http").WithGroup("req").Info("served", "status", 200)

	out := buf.String()
	if !strings.Contains(out, `"message":"served"`) {
		t.Errorf("expected message, got: %s", out)
	}
	if !strings.Contains(out, `"service":"http"`) {
		t.Errorf("expected service attr, got: %s", out)
	}
	if !strings.Contains(out, `"req.status":200`) {
		t.Errorf("expected grouped attr, got: %s", out)
	}
}
