// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"errors"
	"io"
	"strings"

	"github.com/tomtom215/melodia/internal/logging"
)

// Lookup errors. Handlers map these to 404 with errors.Is.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrArtistNotFound       = errors.New("artist not found")
	ErrAlbumNotFound        = errors.New("album not found")
	ErrGenreNotFound        = errors.New("genre not found")
	ErrTrackNotFound        = errors.New("song not found")
	ErrPlaylistNotFound     = errors.New("playlist not found")
	ErrSubscriptionNotFound = errors.New("no subscription found")
	ErrConversationNotFound = errors.New("conversation not found")
)

// Conflict errors. Handlers map these to 409.
var (
	ErrDuplicateUser          = errors.New("username or email already exists")
	ErrDuplicateGenre         = errors.New("genre with this name already exists")
	ErrSubscriptionExists     = errors.New("user already has a subscription")
	ErrTrackAlreadyInPlaylist = errors.New("song already in playlist")
)

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// DuckDB reports "Constraint Error: Duplicate key ..." for UNIQUE and PRIMARY KEY.
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "unique constraint") || strings.Contains(errMsg, "duplicate key")
}

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
