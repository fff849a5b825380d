// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package metrics

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType string
	}{
		{"success", nil, ""},
		{"timeout", fmt.Errorf("failed to query tracks: %w", context.DeadlineExceeded), "timeout"},
		{"constraint", errors.New("Constraint Error: duplicate key \"alice\""), "constraint"},
		{"syntax", errors.New("Parser Error: syntax error at or near"), "syntax"},
		{"other", errors.New("boom"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := "test_" + tt.name
			RecordDBQuery("select", table, 5*time.Millisecond, tt.err)

			if got := testutil.CollectAndCount(DBQueryDuration, "duckdb_query_duration_seconds"); got == 0 {
				t.Error("expected duration series to be collected")
			}
			if tt.errorType == "" {
				return
			}
			got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", table, tt.errorType))
			if got != 1 {
				t.Errorf("error counter for %s = %v, want 1", tt.errorType, got)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/chat", "200"))
	RecordAPIRequest("POST", "/api/v1/chat", "200", 120*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/chat", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - start; got != 2 {
		t.Errorf("active delta = %v, want 2", got)
	}
	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active = %v, want %v", got, start)
	}
}

func TestRecordLLMRequest(t *testing.T) {
	purpose := "test_llm"
	RecordLLMRequest(purpose, time.Second, nil)
	RecordLLMRequest(purpose, time.Second, errors.New("openai: status 500"))
	RecordLLMRequest(purpose, time.Second, fmt.Errorf("request: %w", context.DeadlineExceeded))

	for _, result := range []string{"success", "error", "timeout"} {
		if got := testutil.ToFloat64(LLMRequestsTotal.WithLabelValues(purpose, result)); got != 1 {
			t.Errorf("llm_requests_total{result=%q} = %v, want 1", result, got)
		}
	}
}

func TestRecordChatMetrics(t *testing.T) {
	recBefore := testutil.ToFloat64(ChatTurnsTotal.WithLabelValues("recommendation"))
	convBefore := testutil.ToFloat64(ChatTurnsTotal.WithLabelValues("conversation"))
	RecordChatTurn(true)
	RecordChatTurn(false)
	if testutil.ToFloat64(ChatTurnsTotal.WithLabelValues("recommendation"))-recBefore != 1 {
		t.Error("recommendation turn not counted")
	}
	if testutil.ToFloat64(ChatTurnsTotal.WithLabelValues("conversation"))-convBefore != 1 {
		t.Error("conversation turn not counted")
	}

	exactBefore := testutil.ToFloat64(ChatResolutionsTotal.WithLabelValues("exact_title"))
	RecordResolution("exact_title", 1)
	if testutil.ToFloat64(ChatResolutionsTotal.WithLabelValues("exact_title"))-exactBefore != 1 {
		t.Error("resolution not counted")
	}

	fbBefore := testutil.ToFloat64(ChatFallbacksTotal.WithLabelValues("extract", "unparsable"))
	RecordFallback("extract", "unparsable")
	if testutil.ToFloat64(ChatFallbacksTotal.WithLabelValues("extract", "unparsable"))-fbBefore != 1 {
		t.Error("fallback not counted")
	}

	hitBefore := testutil.ToFloat64(KeywordCacheLookups.WithLabelValues("hit"))
	RecordKeywordCacheLookup(true)
	if testutil.ToFloat64(KeywordCacheLookups.WithLabelValues("hit"))-hitBefore != 1 {
		t.Error("cache hit not counted")
	}
}

func TestRecordSubscriptionSweep(t *testing.T) {
	expiredBefore := testutil.ToFloat64(SubscriptionsExpired)
	errorsBefore := testutil.ToFloat64(SubscriptionSweepErrors)

	RecordSubscriptionSweep(3, nil)
	RecordSubscriptionSweep(0, errors.New("database closed"))

	if got := testutil.ToFloat64(SubscriptionsExpired) - expiredBefore; got != 3 {
		t.Errorf("expired delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(SubscriptionSweepErrors) - errorsBefore; got != 1 {
		t.Errorf("sweep errors delta = %v, want 1", got)
	}
	if testutil.ToFloat64(SubscriptionSweepLastSuccess) == 0 {
		t.Error("last success timestamp not set")
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.2.3")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.2.3", runtime.Version())); got != 1 {
		t.Errorf("app_info = %v, want 1", got)
	}
}

func TestResolvedTracksHistogram(t *testing.T) {
	RecordResolution("random", 5)

	m := &dto.Metric{}
	if err := ChatResolvedTracks.Write(m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Error("expected at least one histogram sample")
	}
}
