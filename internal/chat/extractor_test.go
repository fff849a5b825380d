// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/melodia/internal/llm"
	"github.com/tomtom215/melodia/internal/models"
)

func staticGenerator(text string, err error) llm.Generator {
	return llm.GeneratorFunc(func(context.Context, []llm.Message) (string, error) {
		return text, err
	})
}

func strVal(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestExtractor_ParsesModelJSON(t *testing.T) {
	e := NewExtractor(staticGenerator(`{"title":"Yesterday","artist_name":null,"album_title":null,"genre":null}`, nil))

	got := e.Extract(context.Background(), "play Yesterday")
	if strVal(got.Title) != "Yesterday" {
		t.Errorf("Title = %s, want Yesterday", strVal(got.Title))
	}
	if got.ArtistName != nil || got.AlbumTitle != nil || got.Genre != nil {
		t.Errorf("unexpected fields set: %+v", got)
	}
}

func TestExtractor_ToleratesWrappedJSON(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   models.SearchParameters
	}{
		{
			name:   "code fence",
			output: "```json\n{\"title\":null,\"artist_name\":\"Adele\",\"album_title\":null,\"genre\":null}\n```",
			want:   models.SearchParameters{ArtistName: models.StringPtr("Adele")},
		},
		{
			name:   "leading prose",
			output: `Sure! {"title":null,"artist_name":null,"album_title":null,"genre":"Jazz"} hope that helps`,
			want:   models.SearchParameters{Genre: models.StringPtr("Jazz")},
		},
		{
			name:   "braces inside strings",
			output: `{"title":"Song {Live}","artist_name":"","album_title":null,"genre":null}`,
			want:   models.SearchParameters{Title: models.StringPtr("Song {Live}")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewExtractor(staticGenerator(tt.output, nil)).Extract(context.Background(), "x")
			if strVal(got.Title) != strVal(tt.want.Title) ||
				strVal(got.ArtistName) != strVal(tt.want.ArtistName) ||
				strVal(got.AlbumTitle) != strVal(tt.want.AlbumTitle) ||
				strVal(got.Genre) != strVal(tt.want.Genre) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractor_FallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  llm.Generator
	}{
		{"service error", staticGenerator("", errors.New("connection refused"))},
		{"not json", staticGenerator("I think you mean Hey Jude", nil)},
		{"truncated json", staticGenerator(`{"title":"Hey`, nil)},
		{"timeout", staticGenerator("", context.DeadlineExceeded)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewExtractor(tt.gen).Extract(context.Background(), "I want to listen to Hey Jude please")
			if strVal(got.Title) != "Hey Jude please" {
				t.Errorf("Title = %s, want %q", strVal(got.Title), "Hey Jude please")
			}
			if got.ArtistName != nil || got.AlbumTitle != nil || got.Genre != nil {
				t.Errorf("fallback set other fields: %+v", got)
			}
		})
	}
}

func TestFallbackParameters(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"I want to listen to Hey Jude please", "Hey Jude please"},
		{"play the song called Imagine", "Imagine"},
		{"Can you play Bohemian Rhapsody? Thanks", "Bohemian Rhapsody"},
		{"I'd love to hear a Respect, right now", "Respect"},
		{"find me a song named So What!", "So What"},
		{"PLAY AN Instant Crush", "Instant Crush"},
		{"İİİ play Hey Jude İ KK", "Hey Jude İ KK"},
		{"Ⅻ can I hear The Night We Met", "Night We Met"},
		{"ǅ Listen To Ⱥ Song Called Ωmega Tide", "Ωmega Tide"},
		{"recommend something upbeat", "<nil>"},
		{"play", "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := FallbackParameters(tt.query)
			if strVal(got.Title) != tt.want {
				t.Errorf("FallbackParameters(%q).Title = %s, want %s", tt.query, strVal(got.Title), tt.want)
			}
		})
	}
}

func TestFallbackReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{context.DeadlineExceeded, "timeout"},
		{llm.ErrEmptyResponse, "empty"},
		{errUnparsable, "unparsable"},
		{errors.New("boom"), "llm_error"},
	}
	for _, tt := range tests {
		if got := fallbackReason(tt.err); got != tt.want {
			t.Errorf("fallbackReason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
