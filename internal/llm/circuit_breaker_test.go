// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

func testBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{
		Name:         name,
		MinRequests:  3,
		FailureRatio: 0.5,
		Interval:     time.Minute,
		Timeout:      50 * time.Millisecond,
	}
}

func TestCircuitBreakerGenerator_PassesThrough(t *testing.T) {
	g := NewCircuitBreakerGenerator(GeneratorFunc(func(ctx context.Context, m []Message) (string, error) {
		return "reply to " + m[0].Content, nil
	}), testBreakerSettings("test-pass"))

	got, err := g.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err != nil || got != "reply to hi" {
		t.Errorf("Generate() = %q, %v", got, err)
	}
	if g.State() != "closed" {
		t.Errorf("State() = %s, want closed", g.State())
	}
}

func TestCircuitBreakerGenerator_OpensAndRecovers(t *testing.T) {
	var calls atomic.Int32
	var healthy atomic.Bool
	backendErr := errors.New("backend down")

	g := NewCircuitBreakerGenerator(GeneratorFunc(func(ctx context.Context, m []Message) (string, error) {
		calls.Add(1)
		if healthy.Load() {
			return "ok", nil
		}
		return "", backendErr
	}), testBreakerSettings("test-trip"))

	for i := 0; i < 3; i++ {
		if _, err := g.Generate(context.Background(), nil); !errors.Is(err, backendErr) {
			t.Fatalf("call %d error = %v, want backend error", i, err)
		}
	}
	if g.State() != "open" {
		t.Fatalf("State() = %s, want open", g.State())
	}

	before := calls.Load()
	if _, err := g.Generate(context.Background(), nil); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("open breaker error = %v, want ErrOpenState", err)
	}
	if calls.Load() != before {
		t.Error("open breaker reached the backend")
	}

	healthy.Store(true)
	time.Sleep(80 * time.Millisecond)
	if got, err := g.Generate(context.Background(), nil); err != nil || got != "ok" {
		t.Fatalf("half-open probe = %q, %v", got, err)
	}
	if g.State() != "closed" {
		t.Errorf("State() after recovery = %s, want closed", g.State())
	}
}

func TestCircuitBreakerGenerator_IgnoresCancellation(t *testing.T) {
	g := NewCircuitBreakerGenerator(GeneratorFunc(func(ctx context.Context, m []Message) (string, error) {
		return "", context.Canceled
	}), testBreakerSettings("test-cancel"))

	for i := 0; i < 5; i++ {
		_, _ = g.Generate(context.Background(), nil)
	}
	if g.State() != "closed" {
		t.Errorf("State() = %s, want closed after cancellations", g.State())
	}
}

func TestStateString(t *testing.T) {
	tests := map[gobreaker.State]string{
		gobreaker.StateClosed:   "closed",
		gobreaker.StateHalfOpen: "half-open",
		gobreaker.StateOpen:     "open",
		gobreaker.State(42):     "unknown",
	}
	for state, want := range tests {
		if got := StateString(state); got != want {
			t.Errorf("StateString(%d) = %q, want %q", state, got, want)
		}
	}
}
