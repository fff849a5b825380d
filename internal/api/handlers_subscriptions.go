// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/melodia/internal/models"
)

// ownedSubscription loads a subscription and checks the caller owns it.
func (h *Handler) ownedSubscription(w http.ResponseWriter, r *http.Request) (*models.Subscription, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}
	sub, err := h.db.GetSubscription(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return nil, false
	}
	if sub.UserID != callerID(r) {
		respondError(w, r, http.StatusForbidden, ErrCodeForbidden, "You can only access your own subscription", nil)
		return nil, false
	}
	return sub, true
}

// Subscribe starts a plan for the caller.
//
// @Summary Subscribe
// @Description Starts a FREE or PREMIUM plan expiring after the configured period (30 days by default)
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param subscription body SubscribeRequest true "User and plan"
// @Success 201 {object} models.APIResponse{data=models.Subscription}
// @Failure 400 {object} models.APIResponse "Missing required fields"
// @Failure 403 {object} models.APIResponse "Not the caller's account"
// @Failure 409 {object} models.APIResponse "User already has a subscription"
// @Security BearerAuth
// @Router /subscriptions/subscribe [post]
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req SubscribeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.UserID == 0 || req.PlanType == "" {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Missing required fields", nil)
		return
	}
	if !requireSelf(w, r, req.UserID) {
		return
	}

	sub, err := h.db.Subscribe(r.Context(), req.UserID, models.PlanType(req.PlanType), h.config.Subscription.Period)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, sub, start)
}

// RenewSubscription restarts the expiry window from now.
//
// @Summary Renew subscription
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} models.APIResponse{data=models.Subscription}
// @Failure 404 {object} models.APIResponse "No subscription found"
// @Security BearerAuth
// @Router /subscriptions/{id}/renew [post]
func (h *Handler) RenewSubscription(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sub, ok := h.ownedSubscription(w, r)
	if !ok {
		return
	}
	renewed, err := h.db.RenewSubscription(r.Context(), sub.ID, h.config.Subscription.Period)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, renewed, start)
}

// GetSubscription returns one of the caller's subscriptions.
//
// @Summary Get subscription
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} models.APIResponse{data=models.Subscription}
// @Failure 404 {object} models.APIResponse "No subscription found"
// @Security BearerAuth
// @Router /subscriptions/{id} [get]
func (h *Handler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sub, ok := h.ownedSubscription(w, r)
	if !ok {
		return
	}
	respondData(w, http.StatusOK, sub, start)
}

// DeleteSubscription cancels one of the caller's subscriptions.
//
// @Summary Delete subscription
// @Tags Subscriptions
// @Param id path int true "Subscription ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.APIResponse "No subscription found"
// @Security BearerAuth
// @Router /subscriptions/{id} [delete]
func (h *Handler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.ownedSubscription(w, r)
	if !ok {
		return
	}
	if err := h.db.DeleteSubscription(r.Context(), sub.ID); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondNoContent(w)
}
