// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package models

import "time"

// APIResponse is the envelope every JSON endpoint returns.
//
// Success:
//
//	{
//	  "status": "success",
//	  "data": {"conversation_id": 7, "message": "...", "songs": [...]},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 45}
//	}
//
// Error:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "NOT_FOUND", "message": "Song not found"},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is a machine-readable error code plus a human message.
//
// Codes: VALIDATION_ERROR, UNAUTHORIZED, FORBIDDEN, NOT_FOUND, CONFLICT,
// RATE_LIMIT_EXCEEDED, DATABASE_ERROR, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PaginationInfo describes an offset page.
type PaginationInfo struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// Page wraps a list endpoint's items with pagination.
type Page[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewPage builds a Page, computing HasMore from the window and total.
func NewPage[T any](items []T, limit, offset, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items: items,
		Pagination: PaginationInfo{
			Limit:   limit,
			Offset:  offset,
			Total:   total,
			HasMore: offset+len(items) < total,
		},
	}
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// HealthStatus is returned by GET /health.
type HealthStatus struct {
	Status        string  `json:"status"` // healthy, degraded
	Version       string  `json:"version"`
	DatabaseOK    bool    `json:"database_connected"`
	LLMBreaker    string  `json:"llm_breaker_state"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
