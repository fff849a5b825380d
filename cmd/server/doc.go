// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

/*
Package main is the entry point for the Melodia server.

Melodia is a music streaming backend: a catalog of artists, albums, genres and
songs, user playlists and subscriptions, and a chat assistant that recommends
songs from the catalog with help from an OpenAI-compatible language model.

# Application Architecture

Long-running services run under a suture v4 supervisor tree:

	RootSupervisor ("melodia")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Subscription sweeper (expires lapsed plans)
	└── APISupervisor ("api-layer")
	    └── HTTP server (chi router, /api/v1)

Startup order:

 1. Configuration: koanf v2 layering defaults, config.yaml and environment
 2. Logging: zerolog, JSON or console
 3. Database: DuckDB with versioned migrations and the optional demo catalog
 4. Language model: OpenAI-compatible client behind a gobreaker circuit breaker
 5. Chat service: intent classifier, parameter extraction, resolution, composition
 6. HTTP: JWT authentication, per-IP rate limits, Prometheus metrics, Swagger UI
 7. Supervisor tree: blocks until SIGINT or SIGTERM

# Configuration

Environment variables override config.yaml, which overrides the defaults:

	JWT_SECRET=$(openssl rand -base64 32)
	LLM_BASE_URL=http://localhost:11434/v1
	LLM_MODEL=llama3.1
	DUCKDB_PATH=/data/melodia.duckdb
	./melodia

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests, the sweeper stops, and the database
is checkpointed and closed.
*/
package main
