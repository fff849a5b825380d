// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/melodia/internal/chat"
	"github.com/tomtom215/melodia/internal/database"
)

func TestSentence(t *testing.T) {
	tests := map[string]string{
		"song not found": "Song not found",
		"":               "",
		"Already upper":  "Already upper",
		"élan":           "Élan",
	}
	for in, want := range tests {
		if got := sentence(in); got != want {
			t.Errorf("sentence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRespondStoreError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", database.ErrTrackNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", database.ErrPlaylistNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"conflict", database.ErrDuplicateUser, http.StatusConflict, ErrCodeConflict},
		{"already in playlist", database.ErrTrackAlreadyInPlaylist, http.StatusConflict, ErrCodeConflict},
		{"empty message", chat.ErrEmptyMessage, http.StatusBadRequest, ErrCodeValidation},
		{"timeout", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, ErrCodeTimeout},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeDatabase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondStoreError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			var env envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want code %s", env.Error, tt.code)
			}
		})
	}
}

func TestRespondStoreError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondStoreError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("constraint violated on users_pkey"))
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error == nil || env.Error.Message != "Internal server error" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestPageParams(t *testing.T) {
	h := &Handler{config: testConfig()}
	tests := []struct {
		query         string
		limit, offset int
	}{
		{"", 20, 0},
		{"?limit=5&offset=10", 5, 10},
		{"?limit=0", 20, 0},
		{"?limit=-3&offset=-1", 20, 0},
		{"?limit=1000", 100, 0},
		{"?limit=abc&offset=xyz", 20, 0},
	}
	for _, tt := range tests {
		limit, offset := h.pageParams(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))
		if limit != tt.limit || offset != tt.offset {
			t.Errorf("pageParams(%q) = %d, %d; want %d, %d", tt.query, limit, offset, tt.limit, tt.offset)
		}
	}
}

func TestParseDate(t *testing.T) {
	if got, err := parseDate(nil); err != nil || got != nil {
		t.Errorf("parseDate(nil) = %v, %v", got, err)
	}
	blank := ""
	if got, err := parseDate(&blank); err != nil || got != nil {
		t.Errorf("parseDate(\"\") = %v, %v", got, err)
	}
	valid := "1971-09-09"
	if got, err := parseDate(&valid); err != nil || got.Year() != 1971 {
		t.Errorf("parseDate(%q) = %v, %v", valid, got, err)
	}
	invalid := "09/09/1971"
	if _, err := parseDate(&invalid); err == nil {
		t.Errorf("parseDate(%q) should fail", invalid)
	}
}
