// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/melodia/internal/auth"
	"github.com/tomtom215/melodia/internal/database"
	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/models"
)

// Register creates a user account.
//
// @Summary Register user
// @Description Creates an account. Username and email must be unique.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Account details"
// @Success 201 {object} models.APIResponse{data=models.User} "Account created"
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 409 {object} models.APIResponse "Username or email already exists"
// @Router /users [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password, h.config.Security.BcryptCost)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to create account", err)
		return
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
	}
	if err := h.db.CreateUser(r.Context(), user); err != nil {
		h.security.LogEvent(&logging.AccountEvent{
			Event: "register", Username: user.Username, Email: user.Email,
			IPAddress: r.RemoteAddr, Reason: err.Error(),
		})
		respondStoreError(w, r, err)
		return
	}

	h.security.LogEvent(&logging.AccountEvent{
		Event: "register", UserID: user.ID, Username: user.Username, IPAddress: r.RemoteAddr, Success: true,
	})
	respondData(w, http.StatusCreated, user, start)
}

// Login handles user authentication requests
//
// @Summary Authenticate user
// @Description Checks username and password and returns a JWT, also set as an HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse} "Authentication successful"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 401 {object} models.APIResponse "Invalid password"
// @Failure 404 {object} models.APIResponse "User not found"
// @Failure 429 {object} models.APIResponse "Too many attempts"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	event := &logging.AccountEvent{Event: "login", Username: req.Username, IPAddress: r.RemoteAddr}
	user, err := h.db.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			event.Reason = "unknown user"
			h.security.LogEvent(event)
		}
		respondStoreError(w, r, err)
		return
	}
	event.UserID = user.ID

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		event.Reason = "invalid password"
		h.security.LogEvent(event)
		respondError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid password", nil)
		return
	}

	token, expiresAt, err := h.jwtManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to generate token", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteStrictMode,
	})

	event.Success = true
	h.security.LogEvent(event)
	respondData(w, http.StatusOK, models.LoginResponse{Token: token, ExpiresAt: expiresAt, User: *user}, start)
}

// ListUsers returns a page of accounts.
//
// @Summary List users
// @Tags Users
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} models.APIResponse{data=models.Page[models.User]}
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit, offset := h.pageParams(r)
	users, total, err := h.db.ListUsers(r.Context(), limit, offset)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, models.NewPage(users, limit, offset, total), start)
}

// GetUser returns one account.
//
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.APIResponse{data=models.User}
// @Failure 404 {object} models.APIResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.db.GetUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, user, start)
}

// DeleteUser removes the caller's account and everything it owns.
//
// @Summary Delete user
// @Tags Users
// @Param id path int true "User ID"
// @Success 204 "Deleted"
// @Failure 403 {object} models.APIResponse "Not the caller's account"
// @Failure 404 {object} models.APIResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok || !requireSelf(w, r, id) {
		return
	}
	if err := h.db.DeleteUser(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	h.security.LogEvent(&logging.AccountEvent{Event: "delete_account", UserID: id, IPAddress: r.RemoteAddr, Success: true})
	respondNoContent(w)
}

// ChangePassword replaces the caller's password after checking the old one.
//
// @Summary Change password
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param passwords body ChangePasswordRequest true "Old and new password"
// @Success 200 {object} models.APIResponse{data=object{message=string}}
// @Failure 400 {object} models.APIResponse "Invalid old password"
// @Failure 403 {object} models.APIResponse "Not the caller's account"
// @Security BearerAuth
// @Router /users/{id}/password [put]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok || !requireSelf(w, r, id) {
		return
	}
	var req ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.db.GetUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	event := &logging.AccountEvent{Event: "password_change", UserID: id, IPAddress: r.RemoteAddr}
	if err := auth.CheckPassword(user.PasswordHash, req.OldPassword); err != nil {
		event.Reason = "invalid old password"
		h.security.LogEvent(event)
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Invalid old password", nil)
		return
	}

	hash, err := auth.HashPassword(req.NewPassword, h.config.Security.BcryptCost)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to update password", err)
		return
	}
	if err := h.db.UpdatePassword(r.Context(), id, hash); err != nil {
		respondStoreError(w, r, err)
		return
	}

	event.Success = true
	h.security.LogEvent(event)
	respondData(w, http.StatusOK, map[string]string{"message": "Password updated successfully"}, start)
}

// UserProfile returns the caller's account with playlists and subscription.
//
// @Summary User profile
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.APIResponse{data=models.UserProfile}
// @Failure 403 {object} models.APIResponse "Not the caller's account"
// @Security BearerAuth
// @Router /users/{id}/profile [get]
func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok || !requireSelf(w, r, id) {
		return
	}
	profile, err := h.db.GetUserProfile(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, profile, start)
}

// UserPlaylists lists a user's playlists.
//
// @Summary User playlists
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.APIResponse{data=[]models.Playlist}
// @Failure 404 {object} models.APIResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/playlists [get]
func (h *Handler) UserPlaylists(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetUser(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	playlists, err := h.db.ListPlaylistsByUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, playlists, start)
}

// UserSubscription returns the caller's subscription.
//
// @Summary User subscription
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.APIResponse{data=models.Subscription}
// @Failure 403 {object} models.APIResponse "Not the caller's account"
// @Failure 404 {object} models.APIResponse "No subscription found"
// @Security BearerAuth
// @Router /users/{id}/subscription [get]
func (h *Handler) UserSubscription(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok || !requireSelf(w, r, id) {
		return
	}
	sub, err := h.db.GetSubscriptionByUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, sub, start)
}

// UserChatHistory returns the caller's (message, reply) pairs across all
// conversations.
//
// @Summary Chat history
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.APIResponse{data=[]models.ChatHistoryEntry}
// @Failure 403 {object} models.APIResponse "Not the caller's account"
// @Security BearerAuth
// @Router /users/{id}/chat-history [get]
func (h *Handler) UserChatHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok || !requireSelf(w, r, id) {
		return
	}
	history, err := h.db.ListChatHistory(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, history, start)
}
