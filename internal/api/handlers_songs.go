// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/melodia/internal/database"
	"github.com/tomtom215/melodia/internal/models"
)

// ListSongs returns a page of songs, optionally restricted to a playlist.
//
// @Summary List songs
// @Description Without playlist_id songs are ordered by id; with it they follow playlist order
// @Tags Songs
// @Produce json
// @Param playlist_id query int false "Playlist ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} models.APIResponse{data=models.Page[models.Track]}
// @Failure 404 {object} models.APIResponse "Playlist not found"
// @Router /songs [get]
func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	playlistID, ok := queryID(w, r, "playlist_id")
	if !ok {
		return
	}
	if playlistID != nil {
		if _, err := h.db.GetPlaylist(r.Context(), *playlistID); err != nil {
			respondStoreError(w, r, err)
			return
		}
	}

	limit, offset := h.pageParams(r)
	tracks, total, err := h.db.ListTracks(r.Context(), database.TrackFilter{PlaylistID: playlistID}, limit, offset)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, models.NewPage(tracks, limit, offset, total), start)
}

// CreateSong adds a song to the catalog.
//
// @Summary Create song
// @Tags Songs
// @Accept json
// @Produce json
// @Param song body SongRequest true "Song"
// @Success 201 {object} models.APIResponse{data=models.Track}
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 404 {object} models.APIResponse "Album, artist or genre not found"
// @Security BearerAuth
// @Router /songs [post]
func (h *Handler) CreateSong(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req SongRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	track, err := h.db.CreateTrack(r.Context(), req.input())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, track, start)
}

// GetSong returns one song.
//
// @Summary Get song
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} models.APIResponse{data=models.Track}
// @Failure 404 {object} models.APIResponse "Song not found"
// @Router /songs/{id} [get]
func (h *Handler) GetSong(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	track, err := h.db.GetTrack(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, track, start)
}

// UpdateSong replaces a song and its artist and genre credits.
//
// @Summary Update song
// @Tags Songs
// @Accept json
// @Produce json
// @Param id path int true "Song ID"
// @Param song body SongRequest true "Song"
// @Success 200 {object} models.APIResponse{data=models.Track}
// @Failure 404 {object} models.APIResponse "Song not found"
// @Security BearerAuth
// @Router /songs/{id} [put]
func (h *Handler) UpdateSong(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req SongRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	track, err := h.db.UpdateTrack(r.Context(), id, req.input())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, track, start)
}

// DeleteSong removes a song from the catalog and every playlist.
//
// @Summary Delete song
// @Tags Songs
// @Param id path int true "Song ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.APIResponse "Song not found"
// @Security BearerAuth
// @Router /songs/{id} [delete]
func (h *Handler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteTrack(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondNoContent(w)
}

// songsByQuery serves the lookup endpoints that take one required query parameter.
func (h *Handler) songsByQuery(w http.ResponseWriter, r *http.Request, param string,
	lookup func(ctx context.Context, value string) ([]models.Track, error)) {
	start := time.Now()
	value, ok := requiredQuery(w, r, param)
	if !ok {
		return
	}
	tracks, err := lookup(r.Context(), value)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, tracks, start)
}

// SongsByUser lists the songs in any playlist owned by a username.
//
// @Summary Songs by user
// @Tags Songs
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} models.APIResponse{data=[]models.Track}
// @Failure 400 {object} models.APIResponse "username is required"
// @Router /songs/by-user [get]
func (h *Handler) SongsByUser(w http.ResponseWriter, r *http.Request) {
	h.songsByQuery(w, r, "username", h.db.ListTracksByUsername)
}

// SongsByPlaylist lists the songs of every playlist with the given name.
//
// @Summary Songs by playlist name
// @Tags Songs
// @Produce json
// @Param playlist_name query string true "Playlist name"
// @Success 200 {object} models.APIResponse{data=[]models.Track}
// @Failure 400 {object} models.APIResponse "playlist_name is required"
// @Router /songs/by-playlist [get]
func (h *Handler) SongsByPlaylist(w http.ResponseWriter, r *http.Request) {
	h.songsByQuery(w, r, "playlist_name", h.db.ListTracksByPlaylistName)
}

// SongsByGenre lists the songs tagged with a genre name, ignoring case.
//
// @Summary Songs by genre name
// @Tags Songs
// @Produce json
// @Param genre query string true "Genre name"
// @Success 200 {object} models.APIResponse{data=[]models.Track}
// @Failure 400 {object} models.APIResponse "genre is required"
// @Router /songs/by-genre [get]
func (h *Handler) SongsByGenre(w http.ResponseWriter, r *http.Request) {
	h.songsByQuery(w, r, "genre", h.db.ListTracksByGenreName)
}

// SearchSongs matches q against title, artist, album and genre.
//
// @Summary Search songs
// @Tags Songs
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results"
// @Success 200 {object} models.APIResponse{data=[]models.Track}
// @Failure 400 {object} models.APIResponse "q is required"
// @Router /songs/search [get]
func (h *Handler) SearchSongs(w http.ResponseWriter, r *http.Request) {
	limit, _ := h.pageParams(r)
	h.songsByQuery(w, r, "q", func(ctx context.Context, q string) ([]models.Track, error) {
		return h.db.SearchTracks(ctx, q, limit)
	})
}
