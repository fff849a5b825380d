// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"context"
	"testing"

	"github.com/tomtom215/melodia/internal/models"
)

func titles(tracks []models.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Title
	}
	return out
}

func TestFilterTracks(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		params models.SearchParameters
		want   []string
	}{
		{
			name:   "no parameters matches nothing",
			params: models.SearchParameters{},
			want:   []string{},
		},
		{
			name:   "title substring ignores case",
			params: models.SearchParameters{Title: models.StringPtr("IMAG")},
			want:   []string{"Imagine"},
		},
		{
			name:   "artist and genre combine",
			params: models.SearchParameters{ArtistName: models.StringPtr("beatles"), Genre: models.StringPtr("folk")},
			want:   []string{"Yesterday"},
		},
		{
			name:   "album title",
			params: models.SearchParameters{AlbumTitle: models.StringPtr("kind of blue")},
			want:   []string{"So What", "Blue in Green"},
		},
		{
			name:   "featured artist",
			params: models.SearchParameters{ArtistName: models.StringPtr("pharrell")},
			want:   []string{"Get Lucky"},
		},
		{
			name:   "no match",
			params: models.SearchParameters{Title: models.StringPtr("Imagine"), Genre: models.StringPtr("Jazz")},
			want:   []string{},
		},
		{
			name:   "blank values are absent",
			params: models.SearchParameters{Title: models.StringPtr("   ")},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.FilterTracks(ctx, tt.params, 5)
			if err != nil {
				t.Fatalf("FilterTracks() error = %v", err)
			}
			if !equalStrings(titles(got), tt.want) {
				t.Errorf("FilterTracks() = %v, want %v", titles(got), tt.want)
			}
		})
	}
}

func TestFilterTracks_DistinctAndLimited(t *testing.T) {
	db := setupSeededDB(t)

	// Pop-tagged tracks with several genres must appear once each.
	got, err := db.FilterTracks(context.Background(), models.SearchParameters{Genre: models.StringPtr("o")}, 5)
	if err != nil {
		t.Fatalf("FilterTracks() error = %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d tracks, want 5", len(got))
	}
	seen := map[int64]bool{}
	for i, tr := range got {
		if seen[tr.ID] {
			t.Errorf("duplicate track %d", tr.ID)
		}
		seen[tr.ID] = true
		if i > 0 && got[i-1].ID >= tr.ID {
			t.Errorf("results not ordered by id: %v", titles(got))
		}
	}
}

func TestTracksByExactTitle(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	got, err := db.TracksByExactTitle(ctx, "hey jude", 5)
	if err != nil {
		t.Fatalf("TracksByExactTitle() error = %v", err)
	}
	if !equalStrings(titles(got), []string{"Hey Jude"}) {
		t.Errorf("TracksByExactTitle() = %v", titles(got))
	}

	got, _ = db.TracksByExactTitle(ctx, "hey", 5)
	if len(got) != 0 {
		t.Errorf("partial title matched: %v", titles(got))
	}
}

func TestTracksByTitleWords(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	got, err := db.TracksByTitleWords(ctx, []string{"rolling", "deep"}, 5)
	if err != nil {
		t.Fatalf("TracksByTitleWords() error = %v", err)
	}
	if !equalStrings(titles(got), []string{"Rolling in the Deep"}) {
		t.Errorf("TracksByTitleWords() = %v", titles(got))
	}

	got, _ = db.TracksByTitleWords(ctx, []string{"rolling"}, 5)
	if !equalStrings(titles(got), []string{"Like a Rolling Stone", "Rolling in the Deep"}) {
		t.Errorf("TracksByTitleWords(rolling) = %v", titles(got))
	}

	got, _ = db.TracksByTitleWords(ctx, nil, 5)
	if len(got) != 0 {
		t.Errorf("no words matched %v", titles(got))
	}
}

func TestTracksByKeyword(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		keyword string
		want    []string
	}{
		{"queen", []string{"Bohemian Rhapsody", "You're My Best Friend"}},
		{"soul", []string{"Respect", "Rolling in the Deep"}},
		{"random access", []string{"Get Lucky", "Instant Crush"}},
		{"respect", []string{"Respect"}},
		{"polka", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, err := db.TracksByKeyword(ctx, tt.keyword, 5)
			if err != nil {
				t.Fatalf("TracksByKeyword() error = %v", err)
			}
			if !equalStrings(titles(got), tt.want) {
				t.Errorf("TracksByKeyword(%q) = %v, want %v", tt.keyword, titles(got), tt.want)
			}
		})
	}
}

func TestTrackIDsAndTracksByIDs(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	ids, err := db.TrackIDs(ctx)
	if err != nil {
		t.Fatalf("TrackIDs() error = %v", err)
	}
	if len(ids) < 5 {
		t.Fatalf("TrackIDs() returned %d ids", len(ids))
	}

	want := []int64{ids[3], ids[0], 99999, ids[2]}
	got, err := db.TracksByIDs(ctx, want)
	if err != nil {
		t.Fatalf("TracksByIDs() error = %v", err)
	}
	if len(got) != 3 || got[0].ID != ids[3] || got[1].ID != ids[0] || got[2].ID != ids[2] {
		t.Errorf("TracksByIDs() order = %v", got)
	}

	empty, err := db.TracksByIDs(ctx, nil)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("TracksByIDs(nil) = %v, %v", empty, err)
	}
}

func TestTrackIDs_EmptyCatalog(t *testing.T) {
	db := setupTestDB(t)

	ids, err := db.TrackIDs(context.Background())
	if err != nil {
		t.Fatalf("TrackIDs() error = %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("TrackIDs() = %v, want empty non-nil", ids)
	}
}

func TestSearchTracks(t *testing.T) {
	db := setupSeededDB(t)

	got, err := db.SearchTracks(context.Background(), "LENNON", 10)
	if err != nil {
		t.Fatalf("SearchTracks() error = %v", err)
	}
	if !equalStrings(titles(got), []string{"Imagine", "Jealous Guy"}) {
		t.Errorf("SearchTracks() = %v", titles(got))
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
