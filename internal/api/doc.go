// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

/*
Package api provides the HTTP interface of Melodia using the chi router.

Handler methods are split across files by resource:

  - handlers_users.go: registration, login, accounts and per-user views
  - handlers_catalog.go: artists, albums and genres
  - handlers_songs.go: songs and song lookups
  - handlers_playlists.go: playlists and their songs
  - handlers_subscriptions.go: subscription plans
  - handlers_chat.go: the chat assistant and conversation log
  - handlers_health.go: health check

Every JSON response uses the models.APIResponse envelope. Store sentinel
errors are translated to HTTP status codes in respondStoreError.

Routes live under /api/v1. Registration, login, health and catalog reads
are public; everything else requires a JWT (Authorization: Bearer or the
"token" cookie).
*/
package api
