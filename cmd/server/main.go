// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/melodia/docs" // swagger spec
	"github.com/tomtom215/melodia/internal/api"
	"github.com/tomtom215/melodia/internal/auth"
	"github.com/tomtom215/melodia/internal/chat"
	"github.com/tomtom215/melodia/internal/config"
	"github.com/tomtom215/melodia/internal/database"
	"github.com/tomtom215/melodia/internal/llm"
	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/metrics"
	"github.com/tomtom215/melodia/internal/supervisor"
	"github.com/tomtom215/melodia/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const httpShutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Melodia stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Str("llm_model", cfg.LLM.Model).
		Msg("Starting Melodia")
	warnAboutSettings(cfg)

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Bool("seeded", cfg.Database.SeedCatalog).Msg("Database initialized")

	generator := llm.NewCircuitBreakerGenerator(llm.NewOpenAIClient(&cfg.LLM), llm.BreakerSettingsFromConfig(&cfg.LLM))
	chatService := chat.NewService(db, db, generator, chat.Options{
		MaxSongs:        cfg.Chat.MaxSongs,
		Persona:         cfg.Chat.Persona,
		TurnTimeout:     cfg.Chat.TurnTimeout,
		KeywordCacheTTL: cfg.Chat.KeywordCacheTTL,
	})
	defer chatService.Close()

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT manager: %w", err)
	}

	handler := api.NewHandler(db, chatService, jwtManager, cfg, version)
	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Chat turns are bounded by the turn timeout, which may exceed the
		// request timeout.
		WriteTimeout: max(cfg.Server.Timeout, cfg.Chat.TurnTimeout) + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: httpShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}
	tree.AddMaintenanceService(services.NewSubscriptionSweeper(db, cfg.Subscription.SweepInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, httpShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}
	return nil
}

func warnAboutSettings(cfg *config.Config) {
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
	}
	if cfg.LLM.APIKey == "" && !cfg.IsDevelopment() {
		logging.Warn().Str("base_url", cfg.LLM.BaseURL).Msg("LLM_API_KEY is empty; only keyless local model servers will work")
	}
	if cfg.Database.Path == ":memory:" {
		logging.Warn().Msg("Using an in-memory database; all data is lost on restart")
	}
}
