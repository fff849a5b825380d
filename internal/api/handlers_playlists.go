// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/melodia/internal/database"
	"github.com/tomtom215/melodia/internal/models"
)

// ownedPlaylist loads a playlist and checks the caller owns it. On failure
// the response has been written.
func (h *Handler) ownedPlaylist(w http.ResponseWriter, r *http.Request) (*models.Playlist, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}
	playlist, err := h.db.GetPlaylist(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return nil, false
	}
	if playlist.UserID != callerID(r) {
		respondError(w, r, http.StatusForbidden, ErrCodeForbidden, "You can only modify your own playlists", nil)
		return nil, false
	}
	return playlist, true
}

// ListPlaylists returns a page of playlists, optionally for one user.
//
// @Summary List playlists
// @Tags Playlists
// @Produce json
// @Param user_id query int false "Owner user ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} models.APIResponse{data=models.Page[models.Playlist]}
// @Security BearerAuth
// @Router /playlists [get]
func (h *Handler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := queryID(w, r, "user_id")
	if !ok {
		return
	}
	limit, offset := h.pageParams(r)
	playlists, total, err := h.db.ListPlaylists(r.Context(), userID, limit, offset)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, models.NewPage(playlists, limit, offset, total), start)
}

// CreatePlaylist creates an empty playlist owned by the caller.
//
// @Summary Create playlist
// @Tags Playlists
// @Accept json
// @Produce json
// @Param playlist body PlaylistRequest true "Playlist"
// @Success 201 {object} models.APIResponse{data=models.Playlist}
// @Failure 400 {object} models.APIResponse "Validation error"
// @Security BearerAuth
// @Router /playlists [post]
func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req PlaylistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	playlist := &models.Playlist{UserID: callerID(r), Name: strings.TrimSpace(req.Name)}
	if err := h.db.CreatePlaylist(r.Context(), playlist); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, playlist, start)
}

// GetPlaylist returns one playlist with its song ids.
//
// @Summary Get playlist
// @Tags Playlists
// @Produce json
// @Param id path int true "Playlist ID"
// @Success 200 {object} models.APIResponse{data=models.Playlist}
// @Failure 404 {object} models.APIResponse "Playlist not found"
// @Security BearerAuth
// @Router /playlists/{id} [get]
func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	playlist, err := h.db.GetPlaylist(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, playlist, start)
}

// RenamePlaylist changes the name of one of the caller's playlists.
//
// @Summary Rename playlist
// @Tags Playlists
// @Accept json
// @Produce json
// @Param id path int true "Playlist ID"
// @Param playlist body PlaylistRequest true "Playlist"
// @Success 200 {object} models.APIResponse{data=models.Playlist}
// @Failure 403 {object} models.APIResponse "Not the owner"
// @Failure 404 {object} models.APIResponse "Playlist not found"
// @Security BearerAuth
// @Router /playlists/{id} [put]
func (h *Handler) RenamePlaylist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	playlist, ok := h.ownedPlaylist(w, r)
	if !ok {
		return
	}
	var req PlaylistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if err := h.db.RenamePlaylist(r.Context(), playlist.ID, name); err != nil {
		respondStoreError(w, r, err)
		return
	}
	playlist.Name = name
	respondData(w, http.StatusOK, playlist, start)
}

// DeletePlaylist removes one of the caller's playlists.
//
// @Summary Delete playlist
// @Tags Playlists
// @Param id path int true "Playlist ID"
// @Success 204 "Deleted"
// @Failure 403 {object} models.APIResponse "Not the owner"
// @Failure 404 {object} models.APIResponse "Playlist not found"
// @Security BearerAuth
// @Router /playlists/{id} [delete]
func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, ok := h.ownedPlaylist(w, r)
	if !ok {
		return
	}
	if err := h.db.DeletePlaylist(r.Context(), playlist.ID); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondNoContent(w)
}

// PlaylistSongs returns a page of a playlist's songs in playlist order.
//
// @Summary Playlist songs
// @Tags Playlists
// @Produce json
// @Param id path int true "Playlist ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} models.APIResponse{data=models.Page[models.Track]}
// @Failure 404 {object} models.APIResponse "Playlist not found"
// @Security BearerAuth
// @Router /playlists/{id}/songs [get]
func (h *Handler) PlaylistSongs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetPlaylist(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	limit, offset := h.pageParams(r)
	tracks, total, err := h.db.ListTracks(r.Context(), database.TrackFilter{PlaylistID: &id}, limit, offset)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, models.NewPage(tracks, limit, offset, total), start)
}

// AddPlaylistSong appends a song to one of the caller's playlists.
//
// @Summary Add song to playlist
// @Tags Playlists
// @Accept json
// @Produce json
// @Param id path int true "Playlist ID"
// @Param song body AddSongRequest true "Song to add"
// @Success 200 {object} models.APIResponse{data=models.Playlist}
// @Failure 400 {object} models.APIResponse "Song ID is required"
// @Failure 404 {object} models.APIResponse "Song not found"
// @Failure 409 {object} models.APIResponse "Song already in playlist"
// @Security BearerAuth
// @Router /playlists/{id}/songs [post]
func (h *Handler) AddPlaylistSong(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	playlist, ok := h.ownedPlaylist(w, r)
	if !ok {
		return
	}
	var req AddSongRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.SongID == 0 {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Song ID is required", nil)
		return
	}
	if err := h.db.AddTrackToPlaylist(r.Context(), playlist.ID, req.SongID); err != nil {
		respondStoreError(w, r, err)
		return
	}
	h.respondPlaylist(w, r, playlist.ID, start)
}

// RemovePlaylistSong removes a song from one of the caller's playlists.
//
// @Summary Remove song from playlist
// @Tags Playlists
// @Produce json
// @Param id path int true "Playlist ID"
// @Param songID path int true "Song ID"
// @Success 200 {object} models.APIResponse{data=models.Playlist}
// @Failure 404 {object} models.APIResponse "Song not found"
// @Security BearerAuth
// @Router /playlists/{id}/songs/{songID} [delete]
func (h *Handler) RemovePlaylistSong(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	playlist, ok := h.ownedPlaylist(w, r)
	if !ok {
		return
	}
	songID, ok := pathID(w, r, "songID")
	if !ok {
		return
	}
	if err := h.db.RemoveTrackFromPlaylist(r.Context(), playlist.ID, songID); err != nil {
		respondStoreError(w, r, err)
		return
	}
	h.respondPlaylist(w, r, playlist.ID, start)
}

func (h *Handler) respondPlaylist(w http.ResponseWriter, r *http.Request, id int64, start time.Time) {
	playlist, err := h.db.GetPlaylist(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, playlist, start)
}
