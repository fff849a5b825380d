// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"github.com/tomtom215/melodia/internal/database"
)

// RegisterRequest creates an account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest exchanges credentials for a token.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest requires the current password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=128"`
}

// ArtistRequest creates or replaces an artist.
type ArtistRequest struct {
	Name     string  `json:"name" validate:"required,notblank,max=200"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=5000"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// AlbumRequest creates or replaces an album. ReleaseDate is YYYY-MM-DD.
type AlbumRequest struct {
	Title       string  `json:"title" validate:"required,notblank,max=200"`
	ArtistID    int64   `json:"artist_id" validate:"required,gt=0"`
	ReleaseDate *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CoverImage  *string `json:"cover_image,omitempty" validate:"omitempty,url"`
}

// GenreRequest creates or replaces a genre.
type GenreRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// SongRequest creates or replaces a song. Artist and genre order is kept.
type SongRequest struct {
	Title           string  `json:"title" validate:"required,notblank,max=200"`
	AlbumID         int64   `json:"album_id" validate:"required,gt=0"`
	ArtistIDs       []int64 `json:"artist_ids" validate:"required,min=1,dive,gt=0"`
	GenreIDs        []int64 `json:"genre_ids" validate:"omitempty,dive,gt=0"`
	DurationSeconds int     `json:"duration_seconds" validate:"gte=0"`
	MediaURL        *string `json:"media_url,omitempty" validate:"omitempty,url"`
	CoverURL        *string `json:"cover_url,omitempty" validate:"omitempty,url"`
}

func (s *SongRequest) input() database.TrackInput {
	return database.TrackInput{
		Title:           s.Title,
		AlbumID:         s.AlbumID,
		ArtistIDs:       s.ArtistIDs,
		GenreIDs:        s.GenreIDs,
		DurationSeconds: s.DurationSeconds,
		MediaURL:        s.MediaURL,
		CoverURL:        s.CoverURL,
	}
}

// PlaylistRequest creates or renames a playlist.
type PlaylistRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

// AddSongRequest appends a song to a playlist. A zero SongID is reported
// as "Song ID is required" rather than as a validation error.
type AddSongRequest struct {
	SongID int64 `json:"song_id" validate:"gte=0"`
}

// SubscribeRequest starts a plan. Missing fields are reported together.
type SubscribeRequest struct {
	UserID   int64  `json:"user_id" validate:"gte=0"`
	PlanType string `json:"plan_type" validate:"omitempty,oneof=FREE PREMIUM"`
}
