// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"net/http"
	"strings"
	"testing"

	_ "github.com/tomtom215/melodia/docs"
	"github.com/tomtom215/melodia/internal/models"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t, defaultModel())
	health := decodeData[models.HealthStatus](t, s.expect(http.MethodGet, "/api/v1/health", nil, "", http.StatusOK))
	if health.Status != "healthy" || !health.DatabaseOK || health.Version != "test" {
		t.Errorf("health = %+v", health)
	}
	if health.LLMBreaker != "unknown" {
		t.Errorf("llm_breaker_state = %q, want unknown for a generator without a breaker", health.LLMBreaker)
	}
}

func TestHealth_DatabaseDown(t *testing.T) {
	s := newTestServer(t, defaultModel())
	_ = s.db.Close()
	env := s.expect(http.MethodGet, "/api/v1/health", nil, "", http.StatusServiceUnavailable)
	health := decodeData[models.HealthStatus](t, env)
	if health.Status != "unhealthy" || health.DatabaseOK {
		t.Errorf("health = %+v", health)
	}
}

func TestOperationalEndpoints(t *testing.T) {
	s := newTestServer(t, defaultModel())

	rec, _ := s.do(http.MethodGet, "/metrics", nil, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Errorf("/metrics = %d", rec.Code)
	}

	rec, _ = s.do(http.MethodGet, "/swagger/doc.json", nil, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"/chat"`) {
		t.Errorf("/swagger/doc.json = %d", rec.Code)
	}
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	s := newTestServer(t, defaultModel())
	s.expectError(http.MethodGet, "/api/v1/nowhere", nil, "", http.StatusNotFound, ErrCodeNotFound, "")
}

func TestResponseHeaders(t *testing.T) {
	s := newTestServer(t, defaultModel())
	rec, _ := s.do(http.MethodGet, "/api/v1/genres", nil, "")
	for header, want := range map[string]string{
		"Cache-Control":          "no-store",
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not set")
	}
}
