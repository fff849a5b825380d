// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"time"

	"github.com/tomtom215/melodia/internal/auth"
	"github.com/tomtom215/melodia/internal/chat"
	"github.com/tomtom215/melodia/internal/config"
	"github.com/tomtom215/melodia/internal/database"
	"github.com/tomtom215/melodia/internal/logging"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writing, decoding and parameter helpers
//   - handlers_users.go, handlers_catalog.go, handlers_songs.go,
//     handlers_playlists.go, handlers_subscriptions.go, handlers_chat.go
//   - handlers_health.go: health endpoint
type Handler struct {
	db         *database.DB
	chat       *chat.Service
	jwtManager *auth.JWTManager
	config     *config.Config
	security   *logging.SecurityLogger
	version    string
	startTime  time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(db, chatService, jwtManager, cfg, version)
//	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager))
//	http.ListenAndServe(":8000", router.SetupChi())
func NewHandler(db *database.DB, chatService *chat.Service, jwtManager *auth.JWTManager, cfg *config.Config, version string) *Handler {
	return &Handler{
		db:         db,
		chat:       chatService,
		jwtManager: jwtManager,
		config:     cfg,
		security:   logging.NewSecurityLogger(),
		version:    version,
		startTime:  time.Now(),
	}
}
