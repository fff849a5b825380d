// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/melodia/internal/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitCustom(t *testing.T) {
	mw := NewChiMiddleware(DefaultChiMiddlewareConfig())
	handler := mw.RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d, want 429", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ErrCodeRateLimit) {
		t.Errorf("body = %s, want %s", rec.Body.String(), ErrCodeRateLimit)
	}
}

func TestRateLimitCustom_Disabled(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	handler := NewChiMiddleware(cfg).RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(okHandler())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200", i, rec.Code)
		}
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	cfg := ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{
		RateLimitReqs:   50,
		RateLimitWindow: 30 * time.Second,
		CORSOrigins:     []string{"https://app.example.com"},
	})
	if cfg.RateLimitRequests != 50 || cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("rate limit = %d/%v", cfg.RateLimitRequests, cfg.RateLimitWindow)
	}
	if cfg.ChatRequests != 20 {
		t.Errorf("ChatRequests = %d, want default 20", cfg.ChatRequests)
	}
	if len(cfg.CORSAllowedOrigins) != 1 {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestChatRateLimitThroughRouter(t *testing.T) {
	s := newTestServer(t, defaultModel())
	_, alice := s.signup("alice")

	cfg := testConfig()
	cfg.Security.RateLimitDisabled = false
	cfg.Security.RateLimitReqs = 100
	cfg.Security.RateLimitWindow = time.Minute
	cfg.Security.ChatRateLimitReqs = 1
	s.rebuild(cfg)

	s.expect(http.MethodPost, "/api/v1/chat", map[string]string{"message": "play Imagine"}, alice, http.StatusOK)
	s.expectError(http.MethodPost, "/api/v1/chat", map[string]string{"message": "play Imagine"}, alice,
		http.StatusTooManyRequests, ErrCodeRateLimit, "Too many requests")
}
