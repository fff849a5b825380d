// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package models

import (
	"strings"
	"time"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Conversation groups the messages of one chat thread.
type Conversation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one turn. TrackIDs is only set on assistant replies produced by
// a recommendation and keeps the order the tracks were recommended in.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	TrackIDs       []int64   `json:"song_ids"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChatHistoryEntry pairs a user message with the assistant reply that followed it.
type ChatHistoryEntry struct {
	ConversationID int64     `json:"conversation_id"`
	Message        string    `json:"message"`
	Response       string    `json:"response"`
	CreatedAt      time.Time `json:"created_at"`
}

// SearchParameters are the catalog constraints extracted from a chat message.
// A nil field is unconstrained; a field is only set when the message named it.
type SearchParameters struct {
	Title      *string `json:"title"`
	ArtistName *string `json:"artist_name"`
	AlbumTitle *string `json:"album_title"`
	Genre      *string `json:"genre"`
}

// HasAny reports whether at least one field is present.
func (p SearchParameters) HasAny() bool {
	return p.Title != nil || p.ArtistName != nil || p.AlbumTitle != nil || p.Genre != nil
}

// Normalize trims every field and clears the ones left empty.
func (p SearchParameters) Normalize() SearchParameters {
	return SearchParameters{
		Title:      normalizeParam(p.Title),
		ArtistName: normalizeParam(p.ArtistName),
		AlbumTitle: normalizeParam(p.AlbumTitle),
		Genre:      normalizeParam(p.Genre),
	}
}

func normalizeParam(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
