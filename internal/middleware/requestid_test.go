// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/melodia/internal/logging"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name          string
		requestID     string
		correlationID string
		wantKeptReq   bool
		wantKeptCorr  bool
	}{
		{name: "generated", wantKeptReq: false, wantKeptCorr: false},
		{name: "upstream ids kept", requestID: "req-123", correlationID: "corr-456", wantKeptReq: true, wantKeptCorr: true},
		{name: "invalid ids replaced", requestID: "bad id\nwith newline", correlationID: strings.Repeat("x", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxRequestID, ctxLogRequestID, ctxCorrelationID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxRequestID = GetRequestID(r.Context())
				ctxLogRequestID = logging.RequestIDFromContext(r.Context())
				ctxCorrelationID = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.requestID != "" {
				req.Header.Set(RequestIDHeader, tt.requestID)
			}
			if tt.correlationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.correlationID)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got == "" || got != ctxRequestID || got != ctxLogRequestID {
				t.Fatalf("request id header=%q ctx=%q log=%q", got, ctxRequestID, ctxLogRequestID)
			}
			if tt.wantKeptReq {
				if got != tt.requestID {
					t.Errorf("request id = %q, want %q", got, tt.requestID)
				}
			} else if _, err := uuid.Parse(got); err != nil {
				t.Errorf("generated request id %q is not a UUID", got)
			}

			corr := rec.Header().Get(CorrelationIDHeader)
			if corr == "" || corr != ctxCorrelationID {
				t.Fatalf("correlation id header=%q ctx=%q", corr, ctxCorrelationID)
			}
			if tt.wantKeptCorr != (corr == tt.correlationID) {
				t.Errorf("correlation id = %q (upstream %q)", corr, tt.correlationID)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	if id := GetRequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()); id != "" {
		t.Errorf("GetRequestID() = %q, want empty", id)
	}
}
