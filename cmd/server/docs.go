// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

// @title Melodia API
// @version 1.0
// @description Music streaming backend with a catalog, playlists, subscriptions and a chat assistant that recommends songs.
// @description
// @description ## Authentication
// @description
// @description Catalog reads, registration, login and health are public. Everything else needs a JWT,
// @description sent as `Authorization: Bearer <token>` or in the HTTP-only `token` cookie set by `/auth/login`.
// @description
// @description ## Rate Limiting
// @description
// @description Requests are limited per client IP. Login, registration and chat have their own, stricter limits.
// @description Exceeding a limit returns 429 with code `RATE_LIMIT_EXCEEDED`.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {"code": "NOT_FOUND", "message": "Song not found"},
// @description   "metadata": {"timestamp": "2026-03-01T12:34:56Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/melodia/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT as "Bearer <token>". Obtain one from /api/v1/auth/login.
//
// @tag.name Auth
// @tag.description Login and session cookie
//
// @tag.name Users
// @tag.description Accounts, profiles and per-user views
//
// @tag.name Artists
// @tag.name Albums
// @tag.name Genres
// @tag.name Songs
// @tag.description Catalog songs, lookups and search
//
// @tag.name Playlists
// @tag.description User playlists and their songs
//
// @tag.name Subscriptions
// @tag.description FREE and PREMIUM plans
//
// @tag.name Chat
// @tag.description Conversational song recommendations
//
// @tag.name Health
package main
