// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef-melodia"

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "/data/melodia.duckdb" {
		t.Errorf("Database.Path = %q, want /data/melodia.duckdb", cfg.Database.Path)
	}
	if cfg.Chat.MaxSongs != 5 {
		t.Errorf("Chat.MaxSongs = %d, want 5", cfg.Chat.MaxSongs)
	}
	if cfg.Chat.Persona != DefaultPersona {
		t.Errorf("Chat.Persona should default to DefaultPersona")
	}
	if cfg.Subscription.Period != 30*24*time.Hour {
		t.Errorf("Subscription.Period = %v, want 720h", cfg.Subscription.Period)
	}
	if cfg.LLM.BreakerFailureRatio != 0.6 {
		t.Errorf("LLM.BreakerFailureRatio = %v, want 0.6", cfg.LLM.BreakerFailureRatio)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

// isolate points CONFIG_PATH at a missing file and moves to an empty directory so
// no config.yaml on the host leaks into the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LLM_MODEL", "llama3")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("CHAT_MAX_SONGS", "3")
	t.Setenv("CORS_ORIGINS", "https://a.example.org, https://b.example.org")
	t.Setenv("DISABLE_RATE_LIMIT", "true")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.LLM.Model != "llama3" {
		t.Errorf("LLM.Model = %q, want llama3", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 5*time.Second {
		t.Errorf("LLM.Timeout = %v, want 5s", cfg.LLM.Timeout)
	}
	if cfg.Chat.MaxSongs != 3 {
		t.Errorf("Chat.MaxSongs = %d, want 3", cfg.Chat.MaxSongs)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("Security.RateLimitDisabled should be true")
	}
	want := []string{"https://a.example.org", "https://b.example.org"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

func TestLoadWithKoanf_YAMLFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "melodia.yaml")
	yaml := `
server:
  port: 7000
database:
  path: /tmp/melodia-test.duckdb
  seed_catalog: true
chat:
  max_songs: 4
  keyword_cache_ttl: 2m
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("JWT_SECRET", testSecret)
	// Environment wins over the file.
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("Server.Port = %d, want 7001", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/melodia-test.duckdb" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if !cfg.Database.SeedCatalog {
		t.Error("Database.SeedCatalog should be true")
	}
	if cfg.Chat.MaxSongs != 4 {
		t.Errorf("Chat.MaxSongs = %d, want 4", cfg.Chat.MaxSongs)
	}
	if cfg.Chat.KeywordCacheTTL != 2*time.Minute {
		t.Errorf("Chat.KeywordCacheTTL = %v, want 2m", cfg.Chat.KeywordCacheTTL)
	}
	// Untouched keys keep their defaults.
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("LLM.Model = %q, want default", cfg.LLM.Model)
	}
}

func TestLoadWithKoanf_MissingSecret(t *testing.T) {
	isolate(t)
	t.Setenv("JWT_SECRET", "")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("error = %v, want mention of JWT_SECRET", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LLM_API_KEY", "llm.api_key"},
		{"subscription_sweep_interval", "subscription.sweep_interval"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := envTransformFunc(tt.in); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
