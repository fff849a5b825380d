// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/melodia/internal/auth"
	"github.com/tomtom215/melodia/internal/middleware"
)

// defaultRequestTimeout applies when server.timeout is unset.
const defaultRequestTimeout = 30 * time.Second

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. Authentication failures are answered with the
// JSON error envelope.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware) *Router {
	authMiddleware.OnUnauthorized(func(w http.ResponseWriter, r *http.Request, message string) {
		respondError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, message, nil)
	})
	return &Router{
		handler:       handler,
		middleware:    authMiddleware,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&handler.config.Security)),
	}
}

// SetupChi configures all HTTP routes.
//
// Registration, login, health and catalog reads are public. Every other
// /api/v1 route requires a JWT. Chat turns bypass the request timeout since
// the chat service bounds each turn itself.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	mw := router.chiMiddleware

	timeout := h.config.Server.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)       // X-Request-ID and logging context
	r.Use(chimiddleware.RealIP)       // Extract real IP from X-Forwarded-For
	r.Use(middleware.AccessLog)       // One log line per request
	r.Use(chimiddleware.Recoverer)    // Recover from panics
	r.Use(middleware.PrometheusMetrics)
	r.Use(auth.SecurityHeaders)
	r.Use(mw.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeValidation, "Method not allowed", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		// ========================
		// Health & Authentication
		// ========================
		r.With(mw.RateLimitHealth()).Get("/health", h.Health)
		r.With(mw.RateLimitLogin(), chimiddleware.Timeout(timeout)).Post("/auth/login", h.Login)
		r.With(mw.RateLimitRegister(), chimiddleware.Timeout(timeout)).Post("/users", h.Register)

		// ========================
		// Public catalog reads
		// ========================
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit())
			r.Use(chimiddleware.Timeout(timeout))

			r.Get("/artists", h.ListArtists)
			r.Get("/artists/{id}", h.GetArtist)
			r.Get("/artists/{id}/albums", h.ArtistAlbums)
			r.Get("/artists/{id}/songs", h.ArtistSongs)

			r.Get("/albums", h.ListAlbums)
			r.Get("/albums/{id}", h.GetAlbum)
			r.Get("/albums/{id}/songs", h.AlbumSongs)

			r.Get("/genres", h.ListGenres)
			r.Get("/genres/{id}", h.GetGenre)
			r.Get("/genres/{id}/songs", h.GenreSongs)

			r.Get("/songs", h.ListSongs)
			r.Get("/songs/search", h.SearchSongs)
			r.Get("/songs/by-user", h.SongsByUser)
			r.Get("/songs/by-playlist", h.SongsByPlaylist)
			r.Get("/songs/by-genre", h.SongsByGenre)
			r.Get("/songs/{id}", h.GetSong)
		})

		// ========================
		// Authenticated endpoints
		// ========================
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit())
			r.Use(router.middleware.Authenticate)

			r.With(mw.RateLimitChat()).Post("/chat", h.Chat)

			r.Group(func(r chi.Router) {
				r.Use(chimiddleware.Timeout(timeout))

				r.Get("/users", h.ListUsers)
				r.Get("/users/{id}", h.GetUser)
				r.Delete("/users/{id}", h.DeleteUser)
				r.Put("/users/{id}/password", h.ChangePassword)
				r.Get("/users/{id}/profile", h.UserProfile)
				r.Get("/users/{id}/playlists", h.UserPlaylists)
				r.Get("/users/{id}/subscription", h.UserSubscription)
				r.Get("/users/{id}/chat-history", h.UserChatHistory)

				r.Post("/artists", h.CreateArtist)
				r.Put("/artists/{id}", h.UpdateArtist)
				r.Delete("/artists/{id}", h.DeleteArtist)

				r.Post("/albums", h.CreateAlbum)
				r.Put("/albums/{id}", h.UpdateAlbum)
				r.Delete("/albums/{id}", h.DeleteAlbum)

				r.Post("/genres", h.CreateGenre)
				r.Put("/genres/{id}", h.UpdateGenre)
				r.Delete("/genres/{id}", h.DeleteGenre)

				r.Post("/songs", h.CreateSong)
				r.Put("/songs/{id}", h.UpdateSong)
				r.Delete("/songs/{id}", h.DeleteSong)

				r.Get("/playlists", h.ListPlaylists)
				r.Post("/playlists", h.CreatePlaylist)
				r.Get("/playlists/{id}", h.GetPlaylist)
				r.Put("/playlists/{id}", h.RenamePlaylist)
				r.Delete("/playlists/{id}", h.DeletePlaylist)
				r.Get("/playlists/{id}/songs", h.PlaylistSongs)
				r.Post("/playlists/{id}/songs", h.AddPlaylistSong)
				r.Delete("/playlists/{id}/songs/{songID}", h.RemovePlaylistSong)

				r.Post("/subscriptions/subscribe", h.Subscribe)
				r.Get("/subscriptions/{id}", h.GetSubscription)
				r.Delete("/subscriptions/{id}", h.DeleteSubscription)
				r.Post("/subscriptions/{id}/renew", h.RenewSubscription)

				r.Get("/chat/conversations", h.ListConversations)
				r.Get("/chat/conversations/{id}/messages", h.ConversationMessages)
				r.Delete("/chat/conversations/{id}", h.DeleteConversation)
			})
		})
	})

	// ========================
	// Operations
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
