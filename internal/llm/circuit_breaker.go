// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package llm

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/melodia/internal/config"
	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/metrics"
)

// BreakerSettings tune CircuitBreakerGenerator.
type BreakerSettings struct {
	Name         string
	MinRequests  uint32        // requests observed before the ratio is considered
	FailureRatio float64       // trip at or above this failure share
	Interval     time.Duration // counts reset period while closed
	Timeout      time.Duration // open -> half-open delay
}

// BreakerSettingsFromConfig maps the llm config section.
func BreakerSettingsFromConfig(cfg *config.LLMConfig) BreakerSettings {
	return BreakerSettings{
		Name:         "llm-api",
		MinRequests:  cfg.BreakerMinRequests,
		FailureRatio: cfg.BreakerFailureRatio,
		Interval:     cfg.BreakerInterval,
		Timeout:      cfg.BreakerTimeout,
	}
}

// CircuitBreakerGenerator stops calling a failing backend for a while so
// that chat turns fall back immediately instead of waiting on timeouts.
//
// Breaker timing uses the wall clock (sony/gobreaker). Tests exercise it with
// short Timeout values rather than a fake clock.
type CircuitBreakerGenerator struct {
	next Generator
	cb   *gobreaker.CircuitBreaker[string]
	name string
}

// NewCircuitBreakerGenerator wraps next.
func NewCircuitBreakerGenerator(next Generator, s BreakerSettings) *CircuitBreakerGenerator {
	name := s.Name
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= s.FailureRatio {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			return false
		},
		// Caller cancellations say nothing about backend health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", StateString(from)).
				Str("to", StateString(to)).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, StateString(from), StateString(to)).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerGenerator{next: next, cb: cb, name: name}
}

// Generate forwards to the wrapped generator unless the circuit is open, in
// which case gobreaker.ErrOpenState is returned without a backend call.
func (g *CircuitBreakerGenerator) Generate(ctx context.Context, messages []Message) (string, error) {
	text, err := g.cb.Execute(func() (string, error) {
		return g.next.Generate(ctx, messages)
	})
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(g.name).Set(0)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, "rejected").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("breaker", g.name).Msg("[CIRCUIT BREAKER] Request rejected")
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(g.name).Set(float64(g.cb.Counts().ConsecutiveFailures))
	}
	return text, err
}

// State reports "closed", "half-open" or "open" for health checks.
func (g *CircuitBreakerGenerator) State() string {
	return StateString(g.cb.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// StateString names a breaker state.
func StateString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
