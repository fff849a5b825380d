// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"bytes"
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/melodia/internal/auth"
	"github.com/tomtom215/melodia/internal/chat"
	"github.com/tomtom215/melodia/internal/config"
	"github.com/tomtom215/melodia/internal/database"
	"github.com/tomtom215/melodia/internal/llm"
	"github.com/tomtom215/melodia/internal/models"
)

// envelope is the decoded models.APIResponse with Data left raw.
type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

type testServer struct {
	t       *testing.T
	db      *database.DB
	chat    *chat.Service
	jwt     *auth.JWTManager
	handler http.Handler
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Timeout: 10 * time.Second, Environment: "development"},
		API:    config.APIConfig{DefaultPageSize: 20, MaxPageSize: 100},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret-0123456789-abcdefghijklmnopqrstuvwxyz",
			SessionTimeout:    time.Hour,
			BcryptCost:        4,
			RateLimitDisabled: true,
		},
		Subscription: config.SubscriptionConfig{Period: 30 * 24 * time.Hour},
	}
}

// scriptedModel answers by call purpose.
func scriptedModel(replies map[string]string) llm.Generator {
	return llm.GeneratorFunc(func(ctx context.Context, _ []llm.Message) (string, error) {
		if reply, ok := replies[llm.PurposeFrom(ctx)]; ok {
			return reply, nil
		}
		return "", llm.ErrEmptyResponse
	})
}

func defaultModel() llm.Generator {
	return scriptedModel(map[string]string{
		"extract":  `{"title":"Imagine","artist_name":null,"album_title":null,"genre":null}`,
		"compose":  "Here comes Imagine by John Lennon.",
		"converse": "Happy to chat about music!",
	})
}

func newTestServer(t *testing.T, gen llm.Generator) *testServer {
	t.Helper()
	cfg := testConfig()
	db, err := database.New(&config.DatabaseConfig{
		Path:        ":memory:",
		MaxMemory:   "1GB",
		SkipIndexes: true,
		SeedCatalog: true,
	})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	chatService := chat.NewService(db, db, gen, chat.Options{Rand: rand.New(rand.NewPCG(1, 2))})
	t.Cleanup(chatService.Close)

	s := &testServer{t: t, db: db, chat: chatService, jwt: jwtManager}
	s.rebuild(cfg)
	return s
}

// rebuild swaps the router for one built from cfg, keeping the database.
func (s *testServer) rebuild(cfg *config.Config) {
	handler := NewHandler(s.db, s.chat, s.jwt, cfg, "test")
	s.handler = NewRouter(handler, auth.NewMiddleware(s.jwt)).SetupChi()
}

// do sends a request with an optional JSON body and bearer token.
func (s *testServer) do(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			s.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			s.t.Fatalf("%s %s: decode envelope: %v (body %s)", method, path, err, rec.Body.String())
		}
	}
	return rec, env
}

// expect fails the test unless the status matches.
func (s *testServer) expect(method, path string, body interface{}, token string, status int) envelope {
	s.t.Helper()
	rec, env := s.do(method, path, body, token)
	if rec.Code != status {
		s.t.Fatalf("%s %s = %d, want %d (body %s)", method, path, rec.Code, status, rec.Body.String())
	}
	return env
}

// expectError checks status, error code and message.
func (s *testServer) expectError(method, path string, body interface{}, token string, status int, code, message string) {
	s.t.Helper()
	env := s.expect(method, path, body, token, status)
	if env.Status != "error" || env.Error == nil {
		s.t.Fatalf("%s %s: expected error envelope, got %+v", method, path, env)
	}
	if env.Error.Code != code {
		s.t.Errorf("%s %s: code = %q, want %q", method, path, env.Error.Code, code)
	}
	if message != "" && env.Error.Message != message {
		s.t.Errorf("%s %s: message = %q, want %q", method, path, env.Error.Message, message)
	}
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		t.Fatalf("decode data: %v (data %s)", err, env.Data)
	}
	return v
}

// signup registers and logs in a user, returning the id and token.
func (s *testServer) signup(username string) (int64, string) {
	s.t.Helper()
	env := s.expect(http.MethodPost, "/api/v1/users", RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct-horse",
	}, "", http.StatusCreated)
	user := decodeData[models.User](s.t, env)

	env = s.expect(http.MethodPost, "/api/v1/auth/login", LoginRequest{Username: username, Password: "correct-horse"}, "", http.StatusOK)
	login := decodeData[models.LoginResponse](s.t, env)
	if login.Token == "" {
		s.t.Fatal("login returned an empty token")
	}
	return user.ID, login.Token
}

// songID looks a seeded song up by title.
func (s *testServer) songID(title string) int64 {
	s.t.Helper()
	env := s.expect(http.MethodGet, "/api/v1/songs/search?q="+url.QueryEscape(title), nil, "", http.StatusOK)
	tracks := decodeData[[]models.Track](s.t, env)
	for _, tr := range tracks {
		if tr.Title == title {
			return tr.ID
		}
	}
	s.t.Fatalf("seeded song %q not found", title)
	return 0
}
