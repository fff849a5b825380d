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
	"time"

	"github.com/tomtom215/melodia/internal/models"
)

const (
	artistColumns = `id, name, bio, image_url, created_at`
	albumSelect   = `SELECT al.id, al.title, al.artist_id, COALESCE(ar.name, ''), al.release_date, al.cover_image, al.created_at
		FROM albums al LEFT JOIN artists ar ON ar.id = al.artist_id`
	genreColumns = `id, name, description`
)

func scanArtist(row rowScanner) (models.Artist, error) {
	var a models.Artist
	var bio, image sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &bio, &image, &a.CreatedAt); err != nil {
		return a, err
	}
	a.Bio = stringPtr(bio)
	a.ImageURL = stringPtr(image)
	return a, nil
}

func scanAlbum(row rowScanner) (models.Album, error) {
	var a models.Album
	var released sql.NullTime
	var cover sql.NullString
	if err := row.Scan(&a.ID, &a.Title, &a.ArtistID, &a.ArtistName, &released, &cover, &a.CreatedAt); err != nil {
		return a, err
	}
	if released.Valid {
		d := released.Time
		a.ReleaseDate = &d
	}
	a.CoverImage = stringPtr(cover)
	return a, nil
}

func scanGenre(row rowScanner) (models.Genre, error) {
	var g models.Genre
	var desc sql.NullString
	if err := row.Scan(&g.ID, &g.Name, &desc); err != nil {
		return g, err
	}
	g.Description = stringPtr(desc)
	return g, nil
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// count runs a COUNT(*) query.
func (db *DB) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// exists reports whether a row with the given id is present in table.
func exists(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}, table string, id int64) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM `+table+` WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// deleteTrackRefs removes every row that references the tracks matched by
// the selector subquery, then the tracks themselves.
func deleteTrackRefs(ctx context.Context, tx *sql.Tx, selector string, args ...interface{}) error {
	stmts := []string{
		`DELETE FROM track_artists WHERE track_id IN (` + selector + `)`,
		`DELETE FROM track_genres WHERE track_id IN (` + selector + `)`,
		`DELETE FROM playlist_tracks WHERE track_id IN (` + selector + `)`,
		`DELETE FROM message_tracks WHERE track_id IN (` + selector + `)`,
		`DELETE FROM tracks WHERE id IN (` + selector + `)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("failed to delete track references: %w", err)
		}
	}
	return nil
}

// --- Artists ---

// CreateArtist inserts an artist.
func (db *DB) CreateArtist(ctx context.Context, a *models.Artist) (err error) {
	defer timed("insert", "artists", &err)()

	a.CreatedAt = db.now()
	err = db.conn.QueryRowContext(ctx,
		`INSERT INTO artists (name, bio, image_url, created_at) VALUES (?, ?, ?, ?) RETURNING id`,
		a.Name, nullString(a.Bio), nullString(a.ImageURL), a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

// GetArtist returns an artist by id.
func (db *DB) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	a, err := scanArtist(db.conn.QueryRowContext(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return &a, nil
}

// ListArtists returns a page of artists ordered by id and the total count.
func (db *DB) ListArtists(ctx context.Context, limit, offset int) ([]models.Artist, int, error) {
	total, err := db.count(ctx, `SELECT COUNT(*) FROM artists`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}
	artists, err := queryAndScan(ctx, db.conn,
		`SELECT `+artistColumns+` FROM artists ORDER BY id LIMIT ? OFFSET ?`,
		[]interface{}{limit, offset}, scanArtist)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, total, nil
}

// UpdateArtist overwrites name, bio and image of an existing artist.
func (db *DB) UpdateArtist(ctx context.Context, a *models.Artist) error {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE artists SET name = ?, bio = ?, image_url = ? WHERE id = ?`,
		a.Name, nullString(a.Bio), nullString(a.ImageURL), a.ID)
	if err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrArtistNotFound
	}
	return nil
}

// DeleteArtist removes the artist, their albums and the tracks on those
// albums. Tracks on other artists' albums only lose the artist credit.
func (db *DB) DeleteArtist(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "artists", id)
		if err != nil {
			return fmt.Errorf("failed to check artist: %w", err)
		}
		if !ok {
			return ErrArtistNotFound
		}
		if err := deleteTrackRefs(ctx, tx,
			`SELECT t.id FROM tracks t JOIN albums al ON al.id = t.album_id WHERE al.artist_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM track_artists WHERE artist_id = ?`, id); err != nil {
			return fmt.Errorf("failed to unlink artist: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM albums WHERE artist_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete artist albums: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete artist: %w", err)
		}
		return nil
	})
}

// ListAlbumsByArtist returns the artist's albums ordered by id.
func (db *DB) ListAlbumsByArtist(ctx context.Context, artistID int64) ([]models.Album, error) {
	if _, err := db.GetArtist(ctx, artistID); err != nil {
		return nil, err
	}
	albums, err := queryAndScan(ctx, db.conn, albumSelect+` WHERE al.artist_id = ? ORDER BY al.id`,
		[]interface{}{artistID}, scanAlbum)
	if err != nil {
		return nil, fmt.Errorf("failed to list artist albums: %w", err)
	}
	return albums, nil
}

// --- Albums ---

// CreateAlbum inserts an album for an existing artist.
func (db *DB) CreateAlbum(ctx context.Context, a *models.Album) (err error) {
	defer timed("insert", "albums", &err)()

	artist, err := db.GetArtist(ctx, a.ArtistID)
	if err != nil {
		return err
	}
	a.ArtistName = artist.Name
	a.CreatedAt = db.now()
	err = db.conn.QueryRowContext(ctx,
		`INSERT INTO albums (title, artist_id, release_date, cover_image, created_at) VALUES (?, ?, ?, ?, ?) RETURNING id`,
		a.Title, a.ArtistID, nullDate(a.ReleaseDate), nullString(a.CoverImage), a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create album: %w", err)
	}
	return nil
}

// GetAlbum returns an album by id with its artist name.
func (db *DB) GetAlbum(ctx context.Context, id int64) (*models.Album, error) {
	a, err := scanAlbum(db.conn.QueryRowContext(ctx, albumSelect+` WHERE al.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAlbumNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	return &a, nil
}

// ListAlbums returns a page of albums ordered by id and the total count.
func (db *DB) ListAlbums(ctx context.Context, limit, offset int) ([]models.Album, int, error) {
	total, err := db.count(ctx, `SELECT COUNT(*) FROM albums`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}
	albums, err := queryAndScan(ctx, db.conn, albumSelect+` ORDER BY al.id LIMIT ? OFFSET ?`,
		[]interface{}{limit, offset}, scanAlbum)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, total, nil
}

// UpdateAlbum overwrites an album. The new artist must exist.
func (db *DB) UpdateAlbum(ctx context.Context, a *models.Album) error {
	artist, err := db.GetArtist(ctx, a.ArtistID)
	if err != nil {
		return err
	}
	result, err := db.conn.ExecContext(ctx,
		`UPDATE albums SET title = ?, artist_id = ?, release_date = ?, cover_image = ? WHERE id = ?`,
		a.Title, a.ArtistID, nullDate(a.ReleaseDate), nullString(a.CoverImage), a.ID)
	if err != nil {
		return fmt.Errorf("failed to update album: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrAlbumNotFound
	}
	a.ArtistName = artist.Name
	return nil
}

// DeleteAlbum removes the album and its tracks.
func (db *DB) DeleteAlbum(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "albums", id)
		if err != nil {
			return fmt.Errorf("failed to check album: %w", err)
		}
		if !ok {
			return ErrAlbumNotFound
		}
		if err := deleteTrackRefs(ctx, tx, `SELECT id FROM tracks WHERE album_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM albums WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete album: %w", err)
		}
		return nil
	})
}

// --- Genres ---

// CreateGenre inserts a genre. Names are unique ignoring case.
func (db *DB) CreateGenre(ctx context.Context, g *models.Genre) (err error) {
	defer timed("insert", "genres", &err)()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkGenreName(ctx, tx, g.Name, 0); err != nil {
			return err
		}
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO genres (name, description) VALUES (?, ?) RETURNING id`,
			g.Name, nullString(g.Description),
		).Scan(&g.ID); err != nil {
			return fmt.Errorf("failed to create genre: %w", err)
		}
		return nil
	})
}

// checkGenreName returns ErrDuplicateGenre when another genre already uses name.
// Uniqueness lives here rather than in a UNIQUE constraint so that renames
// stay plain UPDATEs.
func checkGenreName(ctx context.Context, tx *sql.Tx, name string, selfID int64) error {
	var one int
	err := tx.QueryRowContext(ctx,
		`SELECT 1 FROM genres WHERE lower(name) = lower(?) AND id <> ? LIMIT 1`, name, selfID).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check genre name: %w", err)
	default:
		return ErrDuplicateGenre
	}
}

// GetGenre returns a genre by id.
func (db *DB) GetGenre(ctx context.Context, id int64) (*models.Genre, error) {
	g, err := scanGenre(db.conn.QueryRowContext(ctx, `SELECT `+genreColumns+` FROM genres WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGenreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return &g, nil
}

// ListGenres returns all genres ordered by name.
func (db *DB) ListGenres(ctx context.Context) ([]models.Genre, error) {
	genres, err := queryAndScan(ctx, db.conn, `SELECT `+genreColumns+` FROM genres ORDER BY name`, nil, scanGenre)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

// UpdateGenre renames or redescribes a genre.
func (db *DB) UpdateGenre(ctx context.Context, g *models.Genre) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "genres", g.ID)
		if err != nil {
			return fmt.Errorf("failed to check genre: %w", err)
		}
		if !ok {
			return ErrGenreNotFound
		}
		if err := checkGenreName(ctx, tx, g.Name, g.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE genres SET name = ?, description = ? WHERE id = ?`,
			g.Name, nullString(g.Description), g.ID); err != nil {
			return fmt.Errorf("failed to update genre: %w", err)
		}
		return nil
	})
}

// DeleteGenre removes the genre and unlinks it from tracks.
func (db *DB) DeleteGenre(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM track_genres WHERE genre_id = ?`, id); err != nil {
			return fmt.Errorf("failed to unlink genre: %w", err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM genres WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete genre: %w", err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return ErrGenreNotFound
		}
		return nil
	})
}
