// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/melodia/internal/models"
)

// --- Artists ---

// ListArtists returns a page of artists.
//
// @Summary List artists
// @Tags Artists
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} models.APIResponse{data=models.Page[models.Artist]}
// @Router /artists [get]
func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit, offset := h.pageParams(r)
	artists, total, err := h.db.ListArtists(r.Context(), limit, offset)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, models.NewPage(artists, limit, offset, total), start)
}

// CreateArtist adds an artist.
//
// @Summary Create artist
// @Tags Artists
// @Accept json
// @Produce json
// @Param artist body ArtistRequest true "Artist"
// @Success 201 {object} models.APIResponse{data=models.Artist}
// @Failure 400 {object} models.APIResponse "Validation error"
// @Security BearerAuth
// @Router /artists [post]
func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req ArtistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	artist := &models.Artist{Name: strings.TrimSpace(req.Name), Bio: req.Bio, ImageURL: req.ImageURL}
	if err := h.db.CreateArtist(r.Context(), artist); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, artist, start)
}

// GetArtist returns one artist.
//
// @Summary Get artist
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} models.APIResponse{data=models.Artist}
// @Failure 404 {object} models.APIResponse "Artist not found"
// @Router /artists/{id} [get]
func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	artist, err := h.db.GetArtist(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, artist, start)
}

// UpdateArtist replaces an artist's fields.
//
// @Summary Update artist
// @Tags Artists
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param artist body ArtistRequest true "Artist"
// @Success 200 {object} models.APIResponse{data=models.Artist}
// @Failure 404 {object} models.APIResponse "Artist not found"
// @Security BearerAuth
// @Router /artists/{id} [put]
func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req ArtistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	artist := &models.Artist{ID: id, Name: strings.TrimSpace(req.Name), Bio: req.Bio, ImageURL: req.ImageURL}
	if err := h.db.UpdateArtist(r.Context(), artist); err != nil {
		respondStoreError(w, r, err)
		return
	}
	updated, err := h.db.GetArtist(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, updated, start)
}

// DeleteArtist removes an artist with their albums and those albums' songs.
//
// @Summary Delete artist
// @Tags Artists
// @Param id path int true "Artist ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.APIResponse "Artist not found"
// @Security BearerAuth
// @Router /artists/{id} [delete]
func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteArtist(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondNoContent(w)
}

// ArtistAlbums lists an artist's albums.
//
// @Summary Artist albums
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} models.APIResponse{data=[]models.Album}
// @Failure 404 {object} models.APIResponse "Artist not found"
// @Router /artists/{id}/albums [get]
func (h *Handler) ArtistAlbums(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	albums, err := h.db.ListAlbumsByArtist(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, albums, start)
}

// ArtistSongs lists the songs an artist is credited on.
//
// @Summary Artist songs
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} models.APIResponse{data=[]models.Track}
// @Failure 404 {object} models.APIResponse "Artist not found"
// @Router /artists/{id}/songs [get]
func (h *Handler) ArtistSongs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tracks, err := h.db.ListTracksByArtist(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, tracks, start)
}

// --- Albums ---

func albumFromRequest(id int64, req *AlbumRequest) (*models.Album, error) {
	released, err := parseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}
	return &models.Album{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		ArtistID:    req.ArtistID,
		ReleaseDate: released,
		CoverImage:  req.CoverImage,
	}, nil
}

// ListAlbums returns a page of albums.
//
// @Summary List albums
// @Tags Albums
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} models.APIResponse{data=models.Page[models.Album]}
// @Router /albums [get]
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit, offset := h.pageParams(r)
	albums, total, err := h.db.ListAlbums(r.Context(), limit, offset)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, models.NewPage(albums, limit, offset, total), start)
}

// CreateAlbum adds an album for an existing artist.
//
// @Summary Create album
// @Tags Albums
// @Accept json
// @Produce json
// @Param album body AlbumRequest true "Album"
// @Success 201 {object} models.APIResponse{data=models.Album}
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 404 {object} models.APIResponse "Artist not found"
// @Security BearerAuth
// @Router /albums [post]
func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req AlbumRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	album, err := albumFromRequest(0, &req)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "release_date must be a date in YYYY-MM-DD format", nil)
		return
	}
	if err := h.db.CreateAlbum(r.Context(), album); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, album, start)
}

// GetAlbum returns one album.
//
// @Summary Get album
// @Tags Albums
// @Produce json
// @Param id path int true "Album ID"
// @Success 200 {object} models.APIResponse{data=models.Album}
// @Failure 404 {object} models.APIResponse "Album not found"
// @Router /albums/{id} [get]
func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	album, err := h.db.GetAlbum(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, album, start)
}

// UpdateAlbum replaces an album's fields.
//
// @Summary Update album
// @Tags Albums
// @Accept json
// @Produce json
// @Param id path int true "Album ID"
// @Param album body AlbumRequest true "Album"
// @Success 200 {object} models.APIResponse{data=models.Album}
// @Failure 404 {object} models.APIResponse "Album or artist not found"
// @Security BearerAuth
// @Router /albums/{id} [put]
func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req AlbumRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	album, err := albumFromRequest(id, &req)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "release_date must be a date in YYYY-MM-DD format", nil)
		return
	}
	if err := h.db.UpdateAlbum(r.Context(), album); err != nil {
		respondStoreError(w, r, err)
		return
	}
	updated, err := h.db.GetAlbum(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, updated, start)
}

// DeleteAlbum removes an album and its songs.
//
// @Summary Delete album
// @Tags Albums
// @Param id path int true "Album ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.APIResponse "Album not found"
// @Security BearerAuth
// @Router /albums/{id} [delete]
func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteAlbum(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondNoContent(w)
}

// AlbumSongs lists an album's songs.
//
// @Summary Album songs
// @Tags Albums
// @Produce json
// @Param id path int true "Album ID"
// @Success 200 {object} models.APIResponse{data=[]models.Track}
// @Failure 404 {object} models.APIResponse "Album not found"
// @Router /albums/{id}/songs [get]
func (h *Handler) AlbumSongs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tracks, err := h.db.ListTracksByAlbum(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, tracks, start)
}

// --- Genres ---

// ListGenres returns every genre ordered by name.
//
// @Summary List genres
// @Tags Genres
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Genre}
// @Router /genres [get]
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	genres, err := h.db.ListGenres(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, genres, start)
}

// CreateGenre adds a genre. Names are unique ignoring case.
//
// @Summary Create genre
// @Tags Genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 201 {object} models.APIResponse{data=models.Genre}
// @Failure 409 {object} models.APIResponse "Genre with this name already exists"
// @Security BearerAuth
// @Router /genres [post]
func (h *Handler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req GenreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	genre := &models.Genre{Name: strings.TrimSpace(req.Name), Description: req.Description}
	if err := h.db.CreateGenre(r.Context(), genre); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, genre, start)
}

// GetGenre returns one genre.
//
// @Summary Get genre
// @Tags Genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} models.APIResponse{data=models.Genre}
// @Failure 404 {object} models.APIResponse "Genre not found"
// @Router /genres/{id} [get]
func (h *Handler) GetGenre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	genre, err := h.db.GetGenre(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, genre, start)
}

// UpdateGenre renames or redescribes a genre.
//
// @Summary Update genre
// @Tags Genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param genre body GenreRequest true "Genre"
// @Success 200 {object} models.APIResponse{data=models.Genre}
// @Failure 404 {object} models.APIResponse "Genre not found"
// @Failure 409 {object} models.APIResponse "Genre with this name already exists"
// @Security BearerAuth
// @Router /genres/{id} [put]
func (h *Handler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req GenreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	genre := &models.Genre{ID: id, Name: strings.TrimSpace(req.Name), Description: req.Description}
	if err := h.db.UpdateGenre(r.Context(), genre); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, genre, start)
}

// DeleteGenre removes a genre; songs only lose the tag.
//
// @Summary Delete genre
// @Tags Genres
// @Param id path int true "Genre ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.APIResponse "Genre not found"
// @Security BearerAuth
// @Router /genres/{id} [delete]
func (h *Handler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteGenre(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondNoContent(w)
}

// GenreSongs lists the songs tagged with a genre.
//
// @Summary Genre songs
// @Tags Genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} models.APIResponse{data=[]models.Track}
// @Failure 404 {object} models.APIResponse "Genre not found"
// @Router /genres/{id}/songs [get]
func (h *Handler) GenreSongs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tracks, err := h.db.ListTracksByGenre(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, tracks, start)
}
