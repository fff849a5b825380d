// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/melodia/config.yaml",
	"/etc/melodia/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultPersona is the system preamble for free-form conversation turns.
const DefaultPersona = "You are Melodia, a friendly music assistant for a streaming service. " +
	"Help listeners discover songs, artists and albums, answer questions about music, " +
	"and keep replies short and conversational."

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     60 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:      "/data/melodia.duckdb",
			MaxMemory: "1GB",
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: SecurityConfig{
			SessionTimeout:    24 * time.Hour,
			BcryptCost:        12,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			ChatRateLimitReqs: 20,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		LLM: LLMConfig{
			BaseURL:             "https://api.openai.com/v1/chat/completions",
			Model:               "gpt-4o-mini",
			Timeout:             15 * time.Second,
			Temperature:         0.7,
			MaxTokens:           512,
			RequestsPerSecond:   5,
			Burst:               10,
			BreakerMinRequests:  10,
			BreakerFailureRatio: 0.6,
			BreakerInterval:     time.Minute,
			BreakerTimeout:      30 * time.Second,
		},
		Chat: ChatConfig{
			MaxSongs:        5,
			Persona:         DefaultPersona,
			TurnTimeout:     60 * time.Second,
			KeywordCacheTTL: 10 * time.Minute,
		},
		Subscription: SubscriptionConfig{
			Period:        30 * 24 * time.Hour,
			SweepInterval: time.Hour,
		},
	}
}

// LoadWithKoanf layers defaults, the config file and environment variables,
// then unmarshals and validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths accept comma-separated strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

var envMappings = map[string]string{
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",
	"seed_catalog":      "database.seed_catalog",

	"api_default_page_size": "api.default_page_size",
	"api_max_page_size":     "api.max_page_size",

	"jwt_secret":               "security.jwt_secret",
	"session_timeout":          "security.session_timeout",
	"bcrypt_cost":              "security.bcrypt_cost",
	"rate_limit_requests":      "security.rate_limit_reqs",
	"rate_limit_window":        "security.rate_limit_window",
	"disable_rate_limit":       "security.rate_limit_disabled",
	"chat_rate_limit_requests": "security.chat_rate_limit_reqs",
	"cors_origins":             "security.cors_origins",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"llm_base_url":              "llm.base_url",
	"llm_api_key":               "llm.api_key",
	"llm_model":                 "llm.model",
	"llm_timeout":               "llm.timeout",
	"llm_temperature":           "llm.temperature",
	"llm_max_tokens":            "llm.max_tokens",
	"llm_requests_per_second":   "llm.requests_per_second",
	"llm_burst":                 "llm.burst",
	"llm_breaker_min_requests":  "llm.breaker_min_requests",
	"llm_breaker_failure_ratio": "llm.breaker_failure_ratio",
	"llm_breaker_interval":      "llm.breaker_interval",
	"llm_breaker_timeout":       "llm.breaker_timeout",

	"chat_max_songs":         "chat.max_songs",
	"chat_persona":           "chat.persona",
	"chat_turn_timeout":      "chat.turn_timeout",
	"chat_keyword_cache_ttl": "chat.keyword_cache_ttl",

	"subscription_period":         "subscription.period",
	"subscription_sweep_interval": "subscription.sweep_interval",
}

// envTransformFunc maps an environment variable name to a config key.
// Unmapped keys return "" so koanf skips them.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
