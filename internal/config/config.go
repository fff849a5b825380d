// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

// Package config loads Melodia configuration from built-in defaults, an optional
// YAML file and environment variables, in that order of precedence (last wins).
//
// Environment variables use flat names mapped to nested keys, for example
// HTTP_PORT -> server.port, DUCKDB_PATH -> database.path, LLM_MODEL -> llm.model.
// Unmapped variables are ignored.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Database     DatabaseConfig     `koanf:"database"`
	API          APIConfig          `koanf:"api"`
	Security     SecurityConfig     `koanf:"security"`
	Logging      LoggingConfig      `koanf:"logging"`
	LLM          LLMConfig          `koanf:"llm"`
	Chat         ChatConfig         `koanf:"chat"`
	Subscription SubscriptionConfig `koanf:"subscription"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path        string `koanf:"path"`
	MaxMemory   string `koanf:"max_memory"`
	Threads     int    `koanf:"threads"`      // 0 = runtime.NumCPU()
	SeedCatalog bool   `koanf:"seed_catalog"` // load the demo catalog on an empty database
	SkipIndexes bool   `koanf:"skip_indexes"` // faster test setup
}

// APIConfig holds pagination settings
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds authentication and request limiting settings
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	BcryptCost        int           `koanf:"bcrypt_cost"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	ChatRateLimitReqs int           `koanf:"chat_rate_limit_reqs"` // per minute, per IP
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig mirrors logging.Config
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// LLMConfig configures the OpenAI-compatible text-generation backend used by
// the chat assistant. An empty APIKey is allowed for local servers.
type LLMConfig struct {
	BaseURL           string        `koanf:"base_url"`
	APIKey            string        `koanf:"api_key"`
	Model             string        `koanf:"model"`
	Timeout           time.Duration `koanf:"timeout"`
	Temperature       float64       `koanf:"temperature"`
	MaxTokens         int           `koanf:"max_tokens"`
	RequestsPerSecond float64       `koanf:"requests_per_second"` // 0 = unlimited
	Burst             int           `koanf:"burst"`

	// Circuit breaker
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
	BreakerInterval     time.Duration `koanf:"breaker_interval"`
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`
}

// ChatConfig configures the recommendation assistant
type ChatConfig struct {
	MaxSongs        int           `koanf:"max_songs"`
	Persona         string        `koanf:"persona"`
	TurnTimeout     time.Duration `koanf:"turn_timeout"`
	KeywordCacheTTL time.Duration `koanf:"keyword_cache_ttl"`
}

// SubscriptionConfig controls plan periods and the expiry sweeper
type SubscriptionConfig struct {
	Period        time.Duration `koanf:"period"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

// Load reads configuration using the layered koanf loader and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
