// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/tomtom215/melodia/internal/auth"
	"github.com/tomtom215/melodia/internal/chat"
	"github.com/tomtom215/melodia/internal/database"
	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/models"
	"github.com/tomtom215/melodia/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

var notFoundErrors = []error{
	database.ErrUserNotFound,
	database.ErrArtistNotFound,
	database.ErrAlbumNotFound,
	database.ErrGenreNotFound,
	database.ErrTrackNotFound,
	database.ErrPlaylistNotFound,
	database.ErrSubscriptionNotFound,
	database.ErrConversationNotFound,
}

var conflictErrors = []error{
	database.ErrDuplicateUser,
	database.ErrDuplicateGenre,
	database.ErrSubscriptionExists,
	database.ErrTrackAlreadyInPlaylist,
}

// respondJSON writes the response envelope with the given status.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondData writes a success envelope. start is when the handler began,
// used for query_time_ms.
func respondData(w http.ResponseWriter, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondNoContent is used by DELETE endpoints.
func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// respondError writes an error envelope. err, when set, is logged but never
// sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Err(err).Str("code", code).Str("path", r.URL.Path).Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondAPIError writes a prepared APIError, typically from validateRequest.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    apiErr,
	})
}

// respondStoreError maps store and chat errors to HTTP responses.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			respondError(w, r, http.StatusNotFound, ErrCodeNotFound, sentence(target.Error()), nil)
			return
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			respondError(w, r, http.StatusConflict, ErrCodeConflict, sentence(target.Error()), nil)
			return
		}
	}

	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, sentence(err.Error()), nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, ErrCodeTimeout, "Request timed out", err)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Internal server error", err)
	}
}

// sentence upper-cases the first letter of a sentinel message,
// e.g. "song not found" -> "Song not found".
func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError with the
// VALIDATION_ERROR code.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeAndValidate reads a JSON body into v and validates it. On failure the
// response has been written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Invalid request body", nil)
		return false
	}
	if apiErr := validateRequest(v); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return false
	}
	return true
}

// getIntParam extracts an integer query parameter with a default value
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// pageParams reads limit and offset, clamping limit to the configured maximum.
func (h *Handler) pageParams(r *http.Request) (limit, offset int) {
	limit = getIntParam(r, "limit", h.config.API.DefaultPageSize)
	if limit <= 0 {
		limit = h.config.API.DefaultPageSize
	}
	if limit > h.config.API.MaxPageSize {
		limit = h.config.API.MaxPageSize
	}
	offset = max(getIntParam(r, "offset", 0), 0)
	return limit, offset
}

// pathID parses a positive integer path parameter, answering 400 otherwise.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// queryID parses an optional positive integer query parameter. The second
// result is false when the value is present but malformed; the response has
// then been written.
func queryID(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Invalid "+name, nil)
		return nil, false
	}
	return &id, true
}

// requiredQuery returns a trimmed query parameter, answering 400 when absent.
func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, name+" query parameter is required", nil)
		return "", false
	}
	return v, true
}

// callerID returns the authenticated user's id, or 0 on public routes.
func callerID(r *http.Request) int64 {
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		return claims.UserID
	}
	return 0
}

// requireSelf answers 403 unless the caller is userID.
func requireSelf(w http.ResponseWriter, r *http.Request, userID int64) bool {
	if callerID(r) != userID {
		respondError(w, r, http.StatusForbidden, ErrCodeForbidden, "You can only access your own account", nil)
		return false
	}
	return true
}

// parseDate accepts YYYY-MM-DD; an absent value yields nil.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
