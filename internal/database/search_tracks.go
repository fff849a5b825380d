// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/melodia/internal/models"
)

// Queries backing the chat recommendation strategies. Every result is ordered
// by track id and capped by the caller's limit.

// keywordMatchIDs selects ids of tracks where one bound term (passed four
// times) is a substring of the title, an artist name, the album title or a
// genre name.
const keywordMatchIDs = `SELECT t.id FROM tracks t
	LEFT JOIN albums al ON al.id = t.album_id
	LEFT JOIN track_artists ta ON ta.track_id = t.id
	LEFT JOIN artists a ON a.id = ta.artist_id
	LEFT JOIN track_genres tg ON tg.track_id = t.id
	LEFT JOIN genres g ON g.id = tg.genre_id
	WHERE contains(lower(t.title), lower(?))
		OR contains(lower(COALESCE(a.name, '')), lower(?))
		OR contains(lower(COALESCE(al.title, '')), lower(?))
		OR contains(lower(COALESCE(g.name, '')), lower(?))`

// FilterTracks applies every present parameter at once as a case-insensitive
// substring match. Parameters with no field set match nothing.
func (db *DB) FilterTracks(ctx context.Context, params models.SearchParameters, limit int) ([]models.Track, error) {
	params = params.Normalize()
	if !params.HasAny() {
		return []models.Track{}, nil
	}

	qb := newQueryBuilder(`SELECT DISTINCT t.id FROM tracks t
		LEFT JOIN albums al ON al.id = t.album_id
		LEFT JOIN track_artists ta ON ta.track_id = t.id
		LEFT JOIN artists a ON a.id = ta.artist_id
		LEFT JOIN track_genres tg ON tg.track_id = t.id
		LEFT JOIN genres g ON g.id = tg.genre_id
		WHERE 1=1`)
	if params.Title != nil {
		qb.addContains("t.title", *params.Title)
	}
	if params.ArtistName != nil {
		qb.addContains("a.name", *params.ArtistName)
	}
	if params.AlbumTitle != nil {
		qb.addContains("al.title", *params.AlbumTitle)
	}
	if params.Genre != nil {
		qb.addContains("g.name", *params.Genre)
	}
	inner, args := qb.build("")

	return db.queryTracks(ctx, trackSelect+` WHERE t.id IN (`+inner+`) ORDER BY t.id LIMIT ?`, append(args, limit)...)
}

// TracksByExactTitle matches the whole title ignoring case.
func (db *DB) TracksByExactTitle(ctx context.Context, title string, limit int) ([]models.Track, error) {
	return db.queryTracks(ctx, trackSelect+` WHERE lower(t.title) = lower(?) ORDER BY t.id LIMIT ?`, title, limit)
}

// TracksByTitleWords returns tracks whose title contains every word,
// ignoring case. No words matches nothing.
func (db *DB) TracksByTitleWords(ctx context.Context, words []string, limit int) ([]models.Track, error) {
	if len(words) == 0 {
		return []models.Track{}, nil
	}
	qb := newQueryBuilder(trackSelect + ` WHERE 1=1`)
	for _, w := range words {
		qb.addContains("t.title", w)
	}
	query, args := qb.addArgs(limit).build("ORDER BY t.id LIMIT ?")
	return db.queryTracks(ctx, query, args...)
}

// TracksByKeyword matches a single term against title, artist, album and genre.
func (db *DB) TracksByKeyword(ctx context.Context, keyword string, limit int) ([]models.Track, error) {
	return db.queryTracks(ctx, trackSelect+` WHERE t.id IN (`+keywordMatchIDs+`) ORDER BY t.id LIMIT ?`,
		keyword, keyword, keyword, keyword, limit)
}

// TrackIDs returns every catalog track id in ascending order.
func (db *DB) TrackIDs(ctx context.Context) (ids []int64, err error) {
	defer timed("select", "tracks", &err)()

	ids, err = queryAndScan(ctx, db.conn, `SELECT id FROM tracks ORDER BY id`, nil,
		func(row rowScanner) (int64, error) {
			var id int64
			err := row.Scan(&id)
			return id, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list track ids: %w", err)
	}
	return ids, nil
}

// TracksByIDs returns the tracks in the order of ids. Unknown ids are skipped.
func (db *DB) TracksByIDs(ctx context.Context, ids []int64) ([]models.Track, error) {
	if len(ids) == 0 {
		return []models.Track{}, nil
	}
	placeholders, args := buildInClause(ids)
	found, err := db.queryTracks(ctx, trackSelect+` WHERE t.id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Track, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	ordered := make([]models.Track, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}
