// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/tomtom215/melodia/internal/models"
)

func TestCatalogReadsArePublic(t *testing.T) {
	s := newTestServer(t, defaultModel())

	songs := decodeData[models.Page[models.Track]](t, s.expect(http.MethodGet, "/api/v1/songs", nil, "", http.StatusOK))
	if songs.Pagination.Total == 0 || len(songs.Items) == 0 {
		t.Fatalf("seeded catalog is empty: %+v", songs.Pagination)
	}
	for _, path := range []string{"/api/v1/artists", "/api/v1/albums", "/api/v1/genres"} {
		s.expect(http.MethodGet, path, nil, "", http.StatusOK)
	}

	id := s.songID("Imagine")
	track := decodeData[models.Track](t, s.expect(http.MethodGet, fmt.Sprintf("/api/v1/songs/%d", id), nil, "", http.StatusOK))
	if track.Title != "Imagine" || len(track.Artists) == 0 || track.Artists[0].Name != "John Lennon" {
		t.Errorf("track = %+v", track)
	}

	s.expectError(http.MethodGet, "/api/v1/songs/999999", nil, "", http.StatusNotFound, ErrCodeNotFound, "Song not found")
	s.expectError(http.MethodGet, "/api/v1/artists/999999", nil, "", http.StatusNotFound, ErrCodeNotFound, "Artist not found")
	s.expectError(http.MethodGet, "/api/v1/albums/999999/songs", nil, "", http.StatusNotFound, ErrCodeNotFound, "Album not found")
	s.expectError(http.MethodGet, "/api/v1/genres/999999/songs", nil, "", http.StatusNotFound, ErrCodeNotFound, "Genre not found")
}

func TestPageParamsAreClamped(t *testing.T) {
	s := newTestServer(t, defaultModel())
	page := decodeData[models.Page[models.Track]](t, s.expect(http.MethodGet, "/api/v1/songs?limit=5000&offset=-3", nil, "", http.StatusOK))
	if page.Pagination.Limit != 100 || page.Pagination.Offset != 0 {
		t.Errorf("pagination = %+v", page.Pagination)
	}
	page = decodeData[models.Page[models.Track]](t, s.expect(http.MethodGet, "/api/v1/songs?limit=1", nil, "", http.StatusOK))
	if len(page.Items) != 1 || !page.Pagination.HasMore {
		t.Errorf("pagination = %+v", page.Pagination)
	}
}

func TestCatalogWriteFlow(t *testing.T) {
	s := newTestServer(t, defaultModel())
	_, token := s.signup("curator")

	artist := decodeData[models.Artist](t, s.expect(http.MethodPost, "/api/v1/artists",
		ArtistRequest{Name: "  Nina Simone "}, token, http.StatusCreated))
	if artist.ID == 0 || artist.Name != "Nina Simone" {
		t.Fatalf("artist = %+v", artist)
	}

	date := "1965-06-01"
	album := decodeData[models.Album](t, s.expect(http.MethodPost, "/api/v1/albums",
		AlbumRequest{Title: "I Put a Spell on You", ArtistID: artist.ID, ReleaseDate: &date}, token, http.StatusCreated))
	if album.ArtistName != "Nina Simone" || album.ReleaseDate == nil {
		t.Fatalf("album = %+v", album)
	}
	bad := "June 1965"
	s.expectError(http.MethodPost, "/api/v1/albums", AlbumRequest{Title: "X", ArtistID: artist.ID, ReleaseDate: &bad},
		token, http.StatusBadRequest, ErrCodeValidation, "")
	s.expectError(http.MethodPost, "/api/v1/albums", AlbumRequest{Title: "X", ArtistID: 999999},
		token, http.StatusNotFound, ErrCodeNotFound, "Artist not found")

	genre := decodeData[models.Genre](t, s.expect(http.MethodPost, "/api/v1/genres", GenreRequest{Name: "Blues"}, token, http.StatusCreated))
	s.expectError(http.MethodPost, "/api/v1/genres", GenreRequest{Name: "rock"}, token, http.StatusConflict, ErrCodeConflict, "")

	song := decodeData[models.Track](t, s.expect(http.MethodPost, "/api/v1/songs", SongRequest{
		Title:           "Feeling Good",
		AlbumID:         album.ID,
		ArtistIDs:       []int64{artist.ID},
		GenreIDs:        []int64{genre.ID},
		DurationSeconds: 178,
	}, token, http.StatusCreated))
	if song.AlbumTitle != "I Put a Spell on You" || len(song.Genres) != 1 || song.Genres[0].Name != "Blues" {
		t.Fatalf("song = %+v", song)
	}
	s.expectError(http.MethodPost, "/api/v1/songs", SongRequest{Title: "No artists", AlbumID: album.ID},
		token, http.StatusBadRequest, ErrCodeValidation, "")

	updated := decodeData[models.Track](t, s.expect(http.MethodPut, fmt.Sprintf("/api/v1/songs/%d", song.ID), SongRequest{
		Title:     "Feeling Good (Remastered)",
		AlbumID:   album.ID,
		ArtistIDs: []int64{artist.ID},
	}, token, http.StatusOK))
	if updated.Title != "Feeling Good (Remastered)" || len(updated.Genres) != 0 {
		t.Errorf("updated = %+v", updated)
	}

	bySongs := decodeData[[]models.Track](t, s.expect(http.MethodGet, fmt.Sprintf("/api/v1/artists/%d/songs", artist.ID), nil, "", http.StatusOK))
	if len(bySongs) != 1 {
		t.Errorf("artist songs = %d, want 1", len(bySongs))
	}
	albums := decodeData[[]models.Album](t, s.expect(http.MethodGet, fmt.Sprintf("/api/v1/artists/%d/albums", artist.ID), nil, "", http.StatusOK))
	if len(albums) != 1 {
		t.Errorf("artist albums = %d, want 1", len(albums))
	}

	renamed := decodeData[models.Genre](t, s.expect(http.MethodPut, fmt.Sprintf("/api/v1/genres/%d", genre.ID),
		GenreRequest{Name: "Delta Blues"}, token, http.StatusOK))
	if renamed.Name != "Delta Blues" {
		t.Errorf("genre = %+v", renamed)
	}

	// Deleting the artist removes their albums and those albums' songs.
	s.expect(http.MethodDelete, fmt.Sprintf("/api/v1/artists/%d", artist.ID), nil, token, http.StatusNoContent)
	s.expectError(http.MethodGet, fmt.Sprintf("/api/v1/albums/%d", album.ID), nil, "", http.StatusNotFound, ErrCodeNotFound, "")
	s.expectError(http.MethodGet, fmt.Sprintf("/api/v1/songs/%d", song.ID), nil, "", http.StatusNotFound, ErrCodeNotFound, "")

	s.expect(http.MethodDelete, fmt.Sprintf("/api/v1/genres/%d", genre.ID), nil, token, http.StatusNoContent)
	s.expectError(http.MethodDelete, fmt.Sprintf("/api/v1/genres/%d", genre.ID), nil, token, http.StatusNotFound, ErrCodeNotFound, "")
}

func TestSongLookupsRequireParameter(t *testing.T) {
	s := newTestServer(t, defaultModel())
	for _, path := range []string{
		"/api/v1/songs/by-user",
		"/api/v1/songs/by-playlist",
		"/api/v1/songs/by-genre",
		"/api/v1/songs/search",
		"/api/v1/songs/by-genre?genre=%20%20",
	} {
		s.expectError(http.MethodGet, path, nil, "", http.StatusBadRequest, ErrCodeValidation, "")
	}
}

func TestSongLookups(t *testing.T) {
	s := newTestServer(t, defaultModel())
	_, token := s.signup("alice")
	heyJude := s.songID("Hey Jude")

	playlist := decodeData[models.Playlist](t, s.expect(http.MethodPost, "/api/v1/playlists", PlaylistRequest{Name: "Sing Along"}, token, http.StatusCreated))
	s.expect(http.MethodPost, fmt.Sprintf("/api/v1/playlists/%d/songs", playlist.ID), AddSongRequest{SongID: heyJude}, token, http.StatusOK)

	for _, path := range []string{
		"/api/v1/songs/by-user?username=alice",
		"/api/v1/songs/by-playlist?playlist_name=Sing%20Along",
	} {
		tracks := decodeData[[]models.Track](t, s.expect(http.MethodGet, path, nil, "", http.StatusOK))
		if len(tracks) != 1 || tracks[0].ID != heyJude {
			t.Errorf("%s = %+v", path, tracks)
		}
	}

	rock := decodeData[[]models.Track](t, s.expect(http.MethodGet, "/api/v1/songs/by-genre?genre=ROCK", nil, "", http.StatusOK))
	if len(rock) == 0 {
		t.Error("genre lookup should ignore case")
	}

	search := decodeData[[]models.Track](t, s.expect(http.MethodGet, "/api/v1/songs/search?q=beatles&limit=1", nil, "", http.StatusOK))
	if len(search) != 1 {
		t.Errorf("search with limit=1 returned %d", len(search))
	}

	nobody := decodeData[[]models.Track](t, s.expect(http.MethodGet, "/api/v1/songs/by-user?username=nobody", nil, "", http.StatusOK))
	if nobody == nil || len(nobody) != 0 {
		t.Errorf("unknown user = %#v, want empty list", nobody)
	}
}
