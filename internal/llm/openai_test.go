// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/melodia/internal/config"
)

func testLLMConfig(url string) *config.LLMConfig {
	return &config.LLMConfig{
		BaseURL:     url,
		APIKey:      "sk-test",
		Model:       "test-model",
		Timeout:     5 * time.Second,
		Temperature: 0.2,
		MaxTokens:   64,
	}
}

func TestOpenAIClient_Generate(t *testing.T) {
	var got chatRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello there"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(testLLMConfig(server.URL))
	text, err := client.Generate(context.Background(), []Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "Hello there" {
		t.Errorf("Generate() = %q", text)
	}
	if auth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.Model != "test-model" || len(got.Messages) != 2 || got.Messages[1].Content != "hi" || got.MaxTokens != 64 {
		t.Errorf("request = %+v", got)
	}
}

func TestOpenAIClient_NoKeyOmitsAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	cfg := testLLMConfig(server.URL)
	cfg.APIKey = ""
	if _, err := NewOpenAIClient(cfg).Generate(context.Background(), []Message{{Role: RoleUser, Content: "x"}}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
}

func TestOpenAIClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
		wantIs  error
	}{
		{name: "http error", status: http.StatusTooManyRequests, body: `{"error":"slow down"}`, wantErr: "status 429"},
		{name: "api error", status: http.StatusOK, body: `{"error":{"type":"invalid_request","message":"bad"}}`, wantErr: "invalid_request"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantIs: ErrEmptyResponse},
		{name: "blank content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"  "}}]}`, wantIs: ErrEmptyResponse},
		{name: "bad json", status: http.StatusOK, body: `not json`, wantErr: "decoding response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewOpenAIClient(testLLMConfig(server.URL)).Generate(context.Background(), []Message{{Role: RoleUser, Content: "x"}})
			if err == nil {
				t.Fatal("Generate() error = nil")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestOpenAIClient_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewOpenAIClient(testLLMConfig(server.URL)).Generate(ctx, []Message{{Role: RoleUser, Content: "x"}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Generate() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestOpenAIClient_ResponseTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"`))
		_, _ = w.Write([]byte(strings.Repeat("a", maxResponseBody)))
		_, _ = w.Write([]byte(`"}}]}`))
	}))
	defer server.Close()

	_, err := NewOpenAIClient(testLLMConfig(server.URL)).Generate(context.Background(), []Message{{Role: RoleUser, Content: "x"}})
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("Generate() error = %v, want ErrResponseTooLarge", err)
	}
}

func TestPurpose(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unspecified" {
		t.Errorf("PurposeFrom(empty) = %q", got)
	}
	if got := PurposeFrom(WithPurpose(context.Background(), "extract")); got != "extract" {
		t.Errorf("PurposeFrom() = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abc", 5); got != "abc" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate long = %q", got)
	}
}
