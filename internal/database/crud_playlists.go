// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomtom215/melodia/internal/models"
)

const playlistColumns = `id, user_id, name, created_at`

func scanPlaylist(row rowScanner) (models.Playlist, error) {
	var p models.Playlist
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt)
	p.SongIDs = []int64{}
	return p, err
}

// loadPlaylistSongIDs fills SongIDs in playlist order.
func (db *DB) loadPlaylistSongIDs(ctx context.Context, playlists []models.Playlist) error {
	if len(playlists) == 0 {
		return nil
	}
	index := make(map[int64]int, len(playlists))
	ids := make([]int64, len(playlists))
	for i := range playlists {
		index[playlists[i].ID] = i
		ids[i] = playlists[i].ID
	}
	placeholders, args := buildInClause(ids)

	rows, err := db.conn.QueryContext(ctx,
		`SELECT playlist_id, track_id FROM playlist_tracks WHERE playlist_id IN (`+placeholders+`)
		ORDER BY playlist_id, position`, args...)
	if err != nil {
		return fmt.Errorf("failed to load playlist songs: %w", err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		var playlistID, trackID int64
		if err := rows.Scan(&playlistID, &trackID); err != nil {
			return fmt.Errorf("failed to scan playlist song: %w", err)
		}
		p := &playlists[index[playlistID]]
		p.SongIDs = append(p.SongIDs, trackID)
	}
	return rows.Err()
}

func (db *DB) queryPlaylists(ctx context.Context, query string, args ...interface{}) ([]models.Playlist, error) {
	playlists, err := queryAndScan(ctx, db.conn, query, args, scanPlaylist)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	if err := db.loadPlaylistSongIDs(ctx, playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// CreatePlaylist inserts an empty playlist owned by p.UserID.
func (db *DB) CreatePlaylist(ctx context.Context, p *models.Playlist) (err error) {
	defer timed("insert", "playlists", &err)()

	if _, err = db.GetUser(ctx, p.UserID); err != nil {
		return err
	}
	p.CreatedAt = db.now()
	p.SongIDs = []int64{}
	err = db.conn.QueryRowContext(ctx,
		`INSERT INTO playlists (user_id, name, created_at) VALUES (?, ?, ?) RETURNING id`,
		p.UserID, p.Name, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

// GetPlaylist returns a playlist with its song ids.
func (db *DB) GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error) {
	playlists, err := db.queryPlaylists(ctx, `SELECT `+playlistColumns+` FROM playlists WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, ErrPlaylistNotFound
	}
	return &playlists[0], nil
}

// ListPlaylists returns a page of playlists, optionally for one user, and the total count.
func (db *DB) ListPlaylists(ctx context.Context, userID *int64, limit, offset int) ([]models.Playlist, int, error) {
	qb := newQueryBuilder(`SELECT ` + playlistColumns + ` FROM playlists WHERE 1=1`)
	cqb := newQueryBuilder(`SELECT COUNT(*) FROM playlists WHERE 1=1`)
	if userID != nil {
		qb.addFilter("user_id = ?", *userID)
		cqb.addFilter("user_id = ?", *userID)
	}

	countQuery, countArgs := cqb.build("")
	total, err := db.count(ctx, countQuery, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count playlists: %w", err)
	}

	query, args := qb.addArgs(limit, offset).build("ORDER BY id LIMIT ? OFFSET ?")
	playlists, err := db.queryPlaylists(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

// ListPlaylistsByUser returns all of a user's playlists ordered by id.
func (db *DB) ListPlaylistsByUser(ctx context.Context, userID int64) ([]models.Playlist, error) {
	return db.queryPlaylists(ctx, `SELECT `+playlistColumns+` FROM playlists WHERE user_id = ? ORDER BY id`, userID)
}

// RenamePlaylist changes a playlist's name.
func (db *DB) RenamePlaylist(ctx context.Context, id int64, name string) error {
	result, err := db.conn.ExecContext(ctx, `UPDATE playlists SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename playlist: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

// DeletePlaylist removes the playlist and its track links.
func (db *DB) DeletePlaylist(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_tracks WHERE playlist_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete playlist songs: %w", err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete playlist: %w", err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return ErrPlaylistNotFound
		}
		return nil
	})
}

// AddTrackToPlaylist appends a track. A track appears at most once per playlist.
func (db *DB) AddTrackToPlaylist(ctx context.Context, playlistID, trackID int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "playlists", playlistID)
		if err != nil {
			return fmt.Errorf("failed to check playlist: %w", err)
		}
		if !ok {
			return ErrPlaylistNotFound
		}
		if err := requireTrack(ctx, tx, trackID); err != nil {
			return err
		}

		var one int
		err = tx.QueryRowContext(ctx,
			`SELECT 1 FROM playlist_tracks WHERE playlist_id = ? AND track_id = ?`, playlistID, trackID).Scan(&one)
		switch {
		case err == nil:
			return ErrTrackAlreadyInPlaylist
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("failed to check playlist song: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO playlist_tracks (playlist_id, track_id, position)
			SELECT ?, ?, COALESCE(MAX(position) + 1, 0) FROM playlist_tracks WHERE playlist_id = ?`,
			playlistID, trackID, playlistID); err != nil {
			return fmt.Errorf("failed to add song to playlist: %w", err)
		}
		return nil
	})
}

// RemoveTrackFromPlaylist unlinks a track. Removing a track that is not in the
// playlist returns ErrTrackNotFound.
func (db *DB) RemoveTrackFromPlaylist(ctx context.Context, playlistID, trackID int64) error {
	if _, err := db.GetPlaylist(ctx, playlistID); err != nil {
		return err
	}
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM playlist_tracks WHERE playlist_id = ? AND track_id = ?`, playlistID, trackID)
	if err != nil {
		return fmt.Errorf("failed to remove song from playlist: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrTrackNotFound
	}
	return nil
}
