// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// indexQueries cover the join and ownership lookups. Only columns that are
// never updated in place are indexed.
var indexQueries = []string{
	`CREATE INDEX IF NOT EXISTS idx_albums_artist ON albums(artist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tracks_album ON tracks(album_id)`,
	`CREATE INDEX IF NOT EXISTS idx_track_artists_track ON track_artists(track_id)`,
	`CREATE INDEX IF NOT EXISTS idx_track_artists_artist ON track_artists(artist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_track_genres_track ON track_genres(track_id)`,
	`CREATE INDEX IF NOT EXISTS idx_track_genres_genre ON track_genres(genre_id)`,
	`CREATE INDEX IF NOT EXISTS idx_playlists_user ON playlists(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_playlist_tracks_playlist ON playlist_tracks(playlist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_message_tracks_message ON message_tracks(message_id)`,
}

// createIndexes creates secondary indexes
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range indexQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}
