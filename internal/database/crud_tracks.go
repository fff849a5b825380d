// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/melodia/internal/models"
)

// trackSelect yields one row per track; artists and genres are attached
// afterwards by loadTrackRelations. Queries that join further tables must
// alias tracks as t.
const trackSelect = `SELECT t.id, t.title, t.album_id, COALESCE(al.title, ''), t.duration_seconds,
	t.media_url, t.cover_url, t.created_at
	FROM tracks t LEFT JOIN albums al ON al.id = t.album_id`

// TrackInput is the writable part of a track. ArtistIDs and GenreIDs are
// stored in the given order with duplicates dropped.
type TrackInput struct {
	Title           string
	AlbumID         int64
	ArtistIDs       []int64
	GenreIDs        []int64
	DurationSeconds int
	MediaURL        *string
	CoverURL        *string
}

// TrackFilter narrows ListTracks.
type TrackFilter struct {
	PlaylistID *int64
}

func scanTrack(row rowScanner) (models.Track, error) {
	var t models.Track
	var media, cover sql.NullString
	if err := row.Scan(&t.ID, &t.Title, &t.AlbumID, &t.AlbumTitle, &t.DurationSeconds,
		&media, &cover, &t.CreatedAt); err != nil {
		return t, err
	}
	t.MediaURL = stringPtr(media)
	t.CoverURL = stringPtr(cover)
	t.Artists = []models.ArtistRef{}
	t.Genres = []models.GenreRef{}
	return t, nil
}

// queryTracks runs a track query and hydrates artists and genres.
func (db *DB) queryTracks(ctx context.Context, query string, args ...interface{}) (tracks []models.Track, err error) {
	defer timed("select", "tracks", &err)()

	tracks, err = queryAndScan(ctx, db.conn, query, args, scanTrack)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	if err = db.loadTrackRelations(ctx, tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// loadTrackRelations fills Artists and Genres for every track in place.
func (db *DB) loadTrackRelations(ctx context.Context, tracks []models.Track) error {
	if len(tracks) == 0 {
		return nil
	}

	index := make(map[int64]int, len(tracks))
	ids := make([]int64, len(tracks))
	for i := range tracks {
		index[tracks[i].ID] = i
		ids[i] = tracks[i].ID
	}
	placeholders, args := buildInClause(ids)

	type link struct {
		trackID int64
		id      int64
		name    string
	}
	scanLink := func(row rowScanner) (link, error) {
		var l link
		err := row.Scan(&l.trackID, &l.id, &l.name)
		return l, err
	}

	artists, err := queryAndScan(ctx, db.conn,
		`SELECT ta.track_id, a.id, a.name FROM track_artists ta JOIN artists a ON a.id = ta.artist_id
		WHERE ta.track_id IN (`+placeholders+`) ORDER BY ta.track_id, ta.position`, args, scanLink)
	if err != nil {
		return fmt.Errorf("failed to load track artists: %w", err)
	}
	for _, l := range artists {
		t := &tracks[index[l.trackID]]
		t.Artists = append(t.Artists, models.ArtistRef{ID: l.id, Name: l.name})
	}

	genres, err := queryAndScan(ctx, db.conn,
		`SELECT tg.track_id, g.id, g.name FROM track_genres tg JOIN genres g ON g.id = tg.genre_id
		WHERE tg.track_id IN (`+placeholders+`) ORDER BY tg.track_id, tg.position`, args, scanLink)
	if err != nil {
		return fmt.Errorf("failed to load track genres: %w", err)
	}
	for _, l := range genres {
		t := &tracks[index[l.trackID]]
		t.Genres = append(t.Genres, models.GenreRef{ID: l.id, Name: l.name})
	}
	return nil
}

// uniqueIDs drops duplicates, keeping first occurrence order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// checkTrackRefs verifies the album, artists and genres exist.
func checkTrackRefs(ctx context.Context, tx *sql.Tx, in *TrackInput) error {
	ok, err := exists(ctx, tx, "albums", in.AlbumID)
	if err != nil {
		return fmt.Errorf("failed to check album: %w", err)
	}
	if !ok {
		return ErrAlbumNotFound
	}
	for _, id := range in.ArtistIDs {
		if ok, err = exists(ctx, tx, "artists", id); err != nil {
			return fmt.Errorf("failed to check artist: %w", err)
		} else if !ok {
			return ErrArtistNotFound
		}
	}
	for _, id := range in.GenreIDs {
		if ok, err = exists(ctx, tx, "genres", id); err != nil {
			return fmt.Errorf("failed to check genre: %w", err)
		} else if !ok {
			return ErrGenreNotFound
		}
	}
	return nil
}

func insertTrackLinks(ctx context.Context, tx *sql.Tx, trackID int64, in *TrackInput) error {
	for i, id := range in.ArtistIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO track_artists (track_id, artist_id, position) VALUES (?, ?, ?)`, trackID, id, i); err != nil {
			return fmt.Errorf("failed to link artist: %w", err)
		}
	}
	for i, id := range in.GenreIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO track_genres (track_id, genre_id, position) VALUES (?, ?, ?)`, trackID, id, i); err != nil {
			return fmt.Errorf("failed to link genre: %w", err)
		}
	}
	return nil
}

// CreateTrack inserts a track with its artist and genre links and returns
// the stored track.
func (db *DB) CreateTrack(ctx context.Context, in TrackInput) (*models.Track, error) {
	in.ArtistIDs = uniqueIDs(in.ArtistIDs)
	in.GenreIDs = uniqueIDs(in.GenreIDs)

	var id int64
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkTrackRefs(ctx, tx, &in); err != nil {
			return err
		}
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO tracks (title, album_id, duration_seconds, media_url, cover_url, created_at)
			VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
			in.Title, in.AlbumID, in.DurationSeconds, nullString(in.MediaURL), nullString(in.CoverURL), db.now(),
		).Scan(&id); err != nil {
			return fmt.Errorf("failed to create track: %w", err)
		}
		return insertTrackLinks(ctx, tx, id, &in)
	})
	if err != nil {
		return nil, err
	}
	return db.GetTrack(ctx, id)
}

// GetTrack returns a fully hydrated track.
func (db *DB) GetTrack(ctx context.Context, id int64) (*models.Track, error) {
	tracks, err := db.queryTracks(ctx, trackSelect+` WHERE t.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, ErrTrackNotFound
	}
	return &tracks[0], nil
}

// ListTracks returns a page of tracks ordered by id and the total count.
// With a playlist filter the page follows playlist order instead.
func (db *DB) ListTracks(ctx context.Context, filter TrackFilter, limit, offset int) ([]models.Track, int, error) {
	if filter.PlaylistID != nil {
		total, err := db.count(ctx, `SELECT COUNT(*) FROM playlist_tracks WHERE playlist_id = ?`, *filter.PlaylistID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to count tracks: %w", err)
		}
		tracks, err := db.queryTracks(ctx,
			trackSelect+` JOIN playlist_tracks pt ON pt.track_id = t.id WHERE pt.playlist_id = ?
			ORDER BY pt.position LIMIT ? OFFSET ?`, *filter.PlaylistID, limit, offset)
		if err != nil {
			return nil, 0, err
		}
		return tracks, total, nil
	}

	total, err := db.count(ctx, `SELECT COUNT(*) FROM tracks`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tracks: %w", err)
	}
	tracks, err := db.queryTracks(ctx, trackSelect+` ORDER BY t.id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return tracks, total, nil
}

// UpdateTrack overwrites a track and replaces its artist and genre links.
func (db *DB) UpdateTrack(ctx context.Context, id int64, in TrackInput) (*models.Track, error) {
	in.ArtistIDs = uniqueIDs(in.ArtistIDs)
	in.GenreIDs = uniqueIDs(in.GenreIDs)

	err := db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireTrack(ctx, tx, id); err != nil {
			return err
		}
		if err := checkTrackRefs(ctx, tx, &in); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE tracks SET title = ?, album_id = ?, duration_seconds = ?, media_url = ?, cover_url = ? WHERE id = ?`,
			in.Title, in.AlbumID, in.DurationSeconds, nullString(in.MediaURL), nullString(in.CoverURL), id); err != nil {
			return fmt.Errorf("failed to update track: %w", err)
		}
		for _, stmt := range []string{
			`DELETE FROM track_artists WHERE track_id = ?`,
			`DELETE FROM track_genres WHERE track_id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to reset track links: %w", err)
			}
		}
		return insertTrackLinks(ctx, tx, id, &in)
	})
	if err != nil {
		return nil, err
	}
	return db.GetTrack(ctx, id)
}

// DeleteTrack removes a track from the catalog, playlists and message links.
func (db *DB) DeleteTrack(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireTrack(ctx, tx, id); err != nil {
			return err
		}
		return deleteTrackRefs(ctx, tx, `SELECT id FROM tracks WHERE id = ?`, id)
	})
}

// ListTracksByArtist returns every track crediting the artist.
func (db *DB) ListTracksByArtist(ctx context.Context, artistID int64) ([]models.Track, error) {
	if _, err := db.GetArtist(ctx, artistID); err != nil {
		return nil, err
	}
	return db.queryTracks(ctx,
		trackSelect+` WHERE t.id IN (SELECT track_id FROM track_artists WHERE artist_id = ?) ORDER BY t.id`, artistID)
}

// ListTracksByAlbum returns the album's tracks.
func (db *DB) ListTracksByAlbum(ctx context.Context, albumID int64) ([]models.Track, error) {
	if _, err := db.GetAlbum(ctx, albumID); err != nil {
		return nil, err
	}
	return db.queryTracks(ctx, trackSelect+` WHERE t.album_id = ? ORDER BY t.id`, albumID)
}

// ListTracksByGenre returns every track tagged with the genre.
func (db *DB) ListTracksByGenre(ctx context.Context, genreID int64) ([]models.Track, error) {
	if _, err := db.GetGenre(ctx, genreID); err != nil {
		return nil, err
	}
	return db.queryTracks(ctx,
		trackSelect+` WHERE t.id IN (SELECT track_id FROM track_genres WHERE genre_id = ?) ORDER BY t.id`, genreID)
}

// ListTracksByUsername returns the tracks in any playlist owned by username.
func (db *DB) ListTracksByUsername(ctx context.Context, username string) ([]models.Track, error) {
	return db.queryTracks(ctx, trackSelect+` WHERE t.id IN (
		SELECT pt.track_id FROM playlist_tracks pt
		JOIN playlists p ON p.id = pt.playlist_id
		JOIN users u ON u.id = p.user_id
		WHERE u.username = ?) ORDER BY t.id`, username)
}

// ListTracksByPlaylistName returns the tracks of every playlist with exactly that name.
func (db *DB) ListTracksByPlaylistName(ctx context.Context, name string) ([]models.Track, error) {
	return db.queryTracks(ctx, trackSelect+` WHERE t.id IN (
		SELECT pt.track_id FROM playlist_tracks pt
		JOIN playlists p ON p.id = pt.playlist_id
		WHERE p.name = ?) ORDER BY t.id`, name)
}

// ListTracksByGenreName returns the tracks tagged with a genre, matched ignoring case.
func (db *DB) ListTracksByGenreName(ctx context.Context, genre string) ([]models.Track, error) {
	return db.queryTracks(ctx, trackSelect+` WHERE t.id IN (
		SELECT tg.track_id FROM track_genres tg JOIN genres g ON g.id = tg.genre_id
		WHERE lower(g.name) = lower(?)) ORDER BY t.id`, genre)
}

// SearchTracks matches q as a case-insensitive substring of the title,
// an artist name, the album title or a genre name.
func (db *DB) SearchTracks(ctx context.Context, q string, limit int) ([]models.Track, error) {
	return db.queryTracks(ctx, trackSelect+` WHERE t.id IN (`+keywordMatchIDs+`) ORDER BY t.id LIMIT ?`,
		q, q, q, q, limit)
}

func requireTrack(ctx context.Context, tx *sql.Tx, id int64) error {
	ok, err := exists(ctx, tx, "tracks", id)
	if err != nil {
		return fmt.Errorf("failed to check track: %w", err)
	}
	if !ok {
		return ErrTrackNotFound
	}
	return nil
}
