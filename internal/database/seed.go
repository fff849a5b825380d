// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/models"
)

type seedTrack struct {
	title    string
	duration int
	artists  []string
	genres   []string
}

type seedAlbum struct {
	title    string
	artist   string
	released string
	tracks   []seedTrack
}

var seedGenres = []string{"Rock", "Pop", "Jazz", "Soul", "Electronic", "Folk"}

var seedArtists = []string{
	"The Beatles", "John Lennon", "Queen", "Miles Davis", "Aretha Franklin",
	"Daft Punk", "Pharrell Williams", "Bob Dylan", "Adele",
}

var seedAlbums = []seedAlbum{
	{"Abbey Road", "The Beatles", "1969-09-26", []seedTrack{
		{"Come Together", 259, []string{"The Beatles"}, []string{"Rock"}},
		{"Something", 182, []string{"The Beatles"}, []string{"Rock", "Pop"}},
		{"Here Comes the Sun", 185, []string{"The Beatles"}, []string{"Pop"}},
	}},
	{"Help!", "The Beatles", "1965-08-06", []seedTrack{
		{"Yesterday", 125, []string{"The Beatles"}, []string{"Pop", "Folk"}},
		{"Help!", 139, []string{"The Beatles"}, []string{"Rock"}},
	}},
	{"Hey Jude", "The Beatles", "1970-02-26", []seedTrack{
		{"Hey Jude", 431, []string{"The Beatles"}, []string{"Rock", "Pop"}},
	}},
	{"Imagine", "John Lennon", "1971-09-09", []seedTrack{
		{"Imagine", 183, []string{"John Lennon"}, []string{"Pop", "Rock"}},
		{"Jealous Guy", 254, []string{"John Lennon"}, []string{"Rock"}},
	}},
	{"A Night at the Opera", "Queen", "1975-11-21", []seedTrack{
		{"Bohemian Rhapsody", 354, []string{"Queen"}, []string{"Rock"}},
		{"You're My Best Friend", 172, []string{"Queen"}, []string{"Rock", "Pop"}},
	}},
	{"Kind of Blue", "Miles Davis", "1959-08-17", []seedTrack{
		{"So What", 562, []string{"Miles Davis"}, []string{"Jazz"}},
		{"Blue in Green", 337, []string{"Miles Davis"}, []string{"Jazz"}},
	}},
	{"I Never Loved a Man the Way I Love You", "Aretha Franklin", "1967-03-10", []seedTrack{
		{"Respect", 147, []string{"Aretha Franklin"}, []string{"Soul"}},
	}},
	{"Random Access Memories", "Daft Punk", "2013-05-17", []seedTrack{
		{"Get Lucky", 369, []string{"Daft Punk", "Pharrell Williams"}, []string{"Electronic", "Pop"}},
		{"Instant Crush", 337, []string{"Daft Punk"}, []string{"Electronic"}},
	}},
	{"Highway 61 Revisited", "Bob Dylan", "1965-08-30", []seedTrack{
		{"Like a Rolling Stone", 373, []string{"Bob Dylan"}, []string{"Folk", "Rock"}},
	}},
	{"21", "Adele", "2011-01-24", []seedTrack{
		{"Rolling in the Deep", 228, []string{"Adele"}, []string{"Soul", "Pop"}},
		{"Someone Like You", 285, []string{"Adele"}, []string{"Pop"}},
	}},
}

// SeedCatalog loads a small demo catalog when the tracks table is empty.
func (db *DB) SeedCatalog(ctx context.Context) error {
	n, err := db.count(ctx, `SELECT COUNT(*) FROM tracks`)
	if err != nil {
		return fmt.Errorf("failed to count tracks: %w", err)
	}
	if n > 0 {
		return nil
	}

	genreIDs := make(map[string]int64, len(seedGenres))
	for _, name := range seedGenres {
		g := models.Genre{Name: name}
		if err := db.CreateGenre(ctx, &g); err != nil {
			return err
		}
		genreIDs[name] = g.ID
	}

	artistIDs := make(map[string]int64, len(seedArtists))
	for _, name := range seedArtists {
		a := models.Artist{Name: name}
		if err := db.CreateArtist(ctx, &a); err != nil {
			return err
		}
		artistIDs[name] = a.ID
	}

	tracks := 0
	for _, sa := range seedAlbums {
		released, err := time.Parse(time.DateOnly, sa.released)
		if err != nil {
			return fmt.Errorf("invalid release date for %q: %w", sa.title, err)
		}
		album := models.Album{Title: sa.title, ArtistID: artistIDs[sa.artist], ReleaseDate: &released}
		if err := db.CreateAlbum(ctx, &album); err != nil {
			return err
		}
		for _, st := range sa.tracks {
			in := TrackInput{Title: st.title, AlbumID: album.ID, DurationSeconds: st.duration}
			for _, a := range st.artists {
				in.ArtistIDs = append(in.ArtistIDs, artistIDs[a])
			}
			for _, g := range st.genres {
				in.GenreIDs = append(in.GenreIDs, genreIDs[g])
			}
			if _, err := db.CreateTrack(ctx, in); err != nil {
				return err
			}
			tracks++
		}
	}

	logging.Info().Int("tracks", tracks).Int("albums", len(seedAlbums)).Msg("Seeded demo catalog")
	return nil
}
