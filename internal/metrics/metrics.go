// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

// Package metrics declares the Prometheus collectors exported on /metrics
// and small helpers that keep label values consistent across callers.
package metrics

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// LLM backend
	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of text-generation requests by purpose and result",
		},
		[]string{"purpose", "result"}, // result: success, error, timeout
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duration of text-generation requests in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
		[]string{"purpose"},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Chat pipeline
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Total number of chat turns by detected intent",
		},
		[]string{"intent"}, // recommendation, conversation
	)

	ChatResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_resolutions_total",
			Help: "Recommendation resolutions by the strategy that produced the result",
		},
		[]string{"strategy"}, // filtered, exact_title, word_match, keyword, random
	)

	ChatResolvedTracks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chat_resolved_tracks",
			Help:    "Number of tracks returned per recommendation",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	ChatFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_fallbacks_total",
			Help: "Times a pipeline stage recovered from an LLM failure locally",
		},
		[]string{"stage", "reason"}, // stage: extract, keywords, compose, converse
	)

	KeywordCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_keyword_cache_lookups_total",
			Help: "Keyword cache lookups by outcome",
		},
		[]string{"outcome"}, // hit, miss
	)

	// Subscriptions
	SubscriptionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "subscriptions_expired_total",
			Help: "Total number of subscriptions marked expired by the sweeper",
		},
	)

	SubscriptionSweepErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "subscription_sweep_errors_total",
			Help: "Total number of failed subscription sweeps",
		},
	)

	SubscriptionSweepLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "subscription_sweep_last_success_timestamp",
			Help: "Unix time of the last successful subscription sweep",
		},
	)

	// System
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table, classifyDBError(err)).Inc()
	}
}

// classifyDBError keeps the error_type label bounded.
func classifyDBError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "constraint"):
		return "constraint"
	case strings.Contains(msg, "connection"):
		return "connection"
	case strings.Contains(msg, "syntax") || strings.Contains(msg, "parser"):
		return "syntax"
	default:
		return "other"
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordLLMRequest records one text-generation call for the given purpose
// (extract, keywords, compose, converse).
func RecordLLMRequest(purpose string, duration time.Duration, err error) {
	LLMRequestDuration.WithLabelValues(purpose).Observe(duration.Seconds())
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		result = "timeout"
	default:
		result = "error"
	}
	LLMRequestsTotal.WithLabelValues(purpose, result).Inc()
}

// RecordChatTurn counts a chat turn by intent.
func RecordChatTurn(recommendation bool) {
	intent := "conversation"
	if recommendation {
		intent = "recommendation"
	}
	ChatTurnsTotal.WithLabelValues(intent).Inc()
}

// RecordResolution records which strategy answered and how many tracks it returned.
func RecordResolution(strategy string, tracks int) {
	ChatResolutionsTotal.WithLabelValues(strategy).Inc()
	ChatResolvedTracks.Observe(float64(tracks))
}

// RecordFallback records a locally recovered LLM failure.
func RecordFallback(stage, reason string) {
	ChatFallbacksTotal.WithLabelValues(stage, reason).Inc()
}

// RecordKeywordCacheLookup records a keyword cache hit or miss.
func RecordKeywordCacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	KeywordCacheLookups.WithLabelValues(outcome).Inc()
}

// RecordSubscriptionSweep records the outcome of one expiry sweep.
func RecordSubscriptionSweep(expired int64, err error) {
	if err != nil {
		SubscriptionSweepErrors.Inc()
		return
	}
	SubscriptionsExpired.Add(float64(expired))
	SubscriptionSweepLastSuccess.Set(float64(time.Now().Unix()))
}

// SetAppInfo publishes the running version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
