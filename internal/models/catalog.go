// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package models

import "time"

// Artist is a performer in the catalog.
type Artist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Album belongs to a single primary artist.
type Album struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	ArtistID    int64      `json:"artist_id"`
	ArtistName  string     `json:"artist_name"`
	ReleaseDate *time.Time `json:"release_date"`
	CoverImage  *string    `json:"cover_image"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Genre names are unique, compared case-insensitively by search.
type Genre struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ArtistRef is the id and name of a track's artist.
type ArtistRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GenreRef is the id and name of a track's genre.
type GenreRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Track is a song with its album, artists and genres resolved.
// Artists and Genres keep the order they were attached in.
type Track struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	AlbumID         int64       `json:"album_id"`
	AlbumTitle      string      `json:"album_title"`
	Artists         []ArtistRef `json:"artists"`
	Genres          []GenreRef  `json:"genres"`
	DurationSeconds int         `json:"duration_seconds"`
	MediaURL        *string     `json:"media_url"`
	CoverURL        *string     `json:"cover_url"`
	CreatedAt       time.Time   `json:"created_at"`
}

// ArtistNames returns the artist names in attachment order.
func (t *Track) ArtistNames() []string {
	names := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		names[i] = a.Name
	}
	return names
}

// GenreNames returns the genre names in attachment order.
func (t *Track) GenreNames() []string {
	names := make([]string, len(t.Genres))
	for i, g := range t.Genres {
		names[i] = g.Name
	}
	return names
}

// Summary converts the track to its chat representation.
func (t *Track) Summary() TrackSummary {
	return TrackSummary{
		ID:       t.ID,
		Title:    t.Title,
		Artists:  t.ArtistNames(),
		Album:    t.AlbumTitle,
		Genres:   t.GenreNames(),
		MediaURL: t.MediaURL,
		CoverURL: t.CoverURL,
	}
}

// TrackSummary is the compact track form embedded in chat replies.
type TrackSummary struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Artists  []string `json:"artists"`
	Album    string   `json:"album"`
	Genres   []string `json:"genres"`
	MediaURL *string  `json:"media_url"`
	CoverURL *string  `json:"cover_url"`
}

// Summaries converts a track slice, never returning nil.
func Summaries(tracks []Track) []TrackSummary {
	out := make([]TrackSummary, len(tracks))
	for i := range tracks {
		out[i] = tracks[i].Summary()
	}
	return out
}
