// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = testSecret
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults with secret", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, "DUCKDB_PATH"},
		{"short secret", func(c *Config) { c.Security.JWTSecret = "short" }, "at least 32"},
		{"placeholder secret", func(c *Config) {
			c.Security.JWTSecret = "changeme-changeme-changeme-changeme"
		}, "placeholder"},
		{"bcrypt too low", func(c *Config) { c.Security.BcryptCost = 2 }, "BCRYPT_COST"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit zero but disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"explicit cors in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"https://app.example.org"}
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad llm url", func(c *Config) { c.LLM.BaseURL = "localhost:11434" }, "LLM_BASE_URL"},
		{"zero llm timeout", func(c *Config) { c.LLM.Timeout = 0 }, "LLM_TIMEOUT"},
		{"breaker ratio zero", func(c *Config) { c.LLM.BreakerFailureRatio = 0 }, "LLM_BREAKER_FAILURE_RATIO"},
		{"max songs above cap", func(c *Config) { c.Chat.MaxSongs = 6 }, "CHAT_MAX_SONGS"},
		{"max songs zero", func(c *Config) { c.Chat.MaxSongs = 0 }, "CHAT_MAX_SONGS"},
		{"turn shorter than llm", func(c *Config) { c.Chat.TurnTimeout = time.Second }, "CHAT_TURN_TIMEOUT"},
		{"short subscription", func(c *Config) { c.Subscription.Period = time.Hour }, "SUBSCRIPTION_PERIOD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("default environment should be development")
	}
	cfg.Server.Environment = "prod"
	if !cfg.IsProduction() || cfg.IsDevelopment() {
		t.Error("prod should be production")
	}
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard origins should warn")
	}
	cfg.Security.CORSOrigins = []string{"https://app.example.org"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}
