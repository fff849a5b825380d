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

func TestPlaylistFlow(t *testing.T) {
	s := newTestServer(t, defaultModel())
	aliceID, alice := s.signup("alice")
	_, bob := s.signup("bob")
	heyJude := s.songID("Hey Jude")
	imagine := s.songID("Imagine")

	playlist := decodeData[models.Playlist](t, s.expect(http.MethodPost, "/api/v1/playlists", PlaylistRequest{Name: "Road Trip"}, alice, http.StatusCreated))
	if playlist.UserID != aliceID || len(playlist.SongIDs) != 0 {
		t.Fatalf("playlist = %+v", playlist)
	}
	songsPath := fmt.Sprintf("/api/v1/playlists/%d/songs", playlist.ID)

	s.expectError(http.MethodPost, songsPath, map[string]interface{}{}, alice, http.StatusBadRequest, ErrCodeValidation, "Song ID is required")
	s.expectError(http.MethodPost, songsPath, AddSongRequest{SongID: 999999}, alice, http.StatusNotFound, ErrCodeNotFound, "Song not found")
	s.expectError(http.MethodPost, songsPath, AddSongRequest{SongID: heyJude}, bob, http.StatusForbidden, ErrCodeForbidden, "")

	s.expect(http.MethodPost, songsPath, AddSongRequest{SongID: imagine}, alice, http.StatusOK)
	updated := decodeData[models.Playlist](t, s.expect(http.MethodPost, songsPath, AddSongRequest{SongID: heyJude}, alice, http.StatusOK))
	if len(updated.SongIDs) != 2 || updated.SongIDs[0] != imagine || updated.SongIDs[1] != heyJude {
		t.Errorf("song_ids = %v, want [%d %d]", updated.SongIDs, imagine, heyJude)
	}
	s.expectError(http.MethodPost, songsPath, AddSongRequest{SongID: heyJude}, alice, http.StatusConflict, ErrCodeConflict, "")

	page := decodeData[models.Page[models.Track]](t, s.expect(http.MethodGet, songsPath, nil, bob, http.StatusOK))
	if len(page.Items) != 2 || page.Items[0].ID != imagine {
		t.Errorf("playlist songs = %+v", page.Items)
	}
	filtered := decodeData[models.Page[models.Track]](t, s.expect(http.MethodGet,
		fmt.Sprintf("/api/v1/songs?playlist_id=%d", playlist.ID), nil, "", http.StatusOK))
	if filtered.Pagination.Total != 2 {
		t.Errorf("songs?playlist_id total = %d, want 2", filtered.Pagination.Total)
	}
	s.expectError(http.MethodGet, "/api/v1/songs?playlist_id=999999", nil, "", http.StatusNotFound, ErrCodeNotFound, "Playlist not found")
	s.expectError(http.MethodGet, "/api/v1/songs?playlist_id=abc", nil, "", http.StatusBadRequest, ErrCodeValidation, "")

	s.expectError(http.MethodPut, fmt.Sprintf("/api/v1/playlists/%d", playlist.ID), PlaylistRequest{Name: "Mine now"}, bob,
		http.StatusForbidden, ErrCodeForbidden, "")
	renamed := decodeData[models.Playlist](t, s.expect(http.MethodPut, fmt.Sprintf("/api/v1/playlists/%d", playlist.ID),
		PlaylistRequest{Name: "Long Drive"}, alice, http.StatusOK))
	if renamed.Name != "Long Drive" {
		t.Errorf("name = %q", renamed.Name)
	}

	removePath := fmt.Sprintf("%s/%d", songsPath, imagine)
	afterRemove := decodeData[models.Playlist](t, s.expect(http.MethodDelete, removePath, nil, alice, http.StatusOK))
	if len(afterRemove.SongIDs) != 1 || afterRemove.SongIDs[0] != heyJude {
		t.Errorf("song_ids after remove = %v", afterRemove.SongIDs)
	}
	s.expectError(http.MethodDelete, removePath, nil, alice, http.StatusNotFound, ErrCodeNotFound, "Song not found")

	list := decodeData[models.Page[models.Playlist]](t, s.expect(http.MethodGet,
		fmt.Sprintf("/api/v1/playlists?user_id=%d", aliceID), nil, bob, http.StatusOK))
	if list.Pagination.Total != 1 {
		t.Errorf("alice's playlists = %d, want 1", list.Pagination.Total)
	}

	s.expectError(http.MethodDelete, fmt.Sprintf("/api/v1/playlists/%d", playlist.ID), nil, bob, http.StatusForbidden, ErrCodeForbidden, "")
	s.expect(http.MethodDelete, fmt.Sprintf("/api/v1/playlists/%d", playlist.ID), nil, alice, http.StatusNoContent)
	s.expectError(http.MethodGet, fmt.Sprintf("/api/v1/playlists/%d", playlist.ID), nil, alice, http.StatusNotFound, ErrCodeNotFound, "Playlist not found")
}
