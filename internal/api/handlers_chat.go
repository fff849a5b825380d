// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/melodia/internal/chat"
)

// Chat runs one assistant turn.
//
// @Summary Chat with the assistant
// @Description Classifies the message; recommendation requests return up to five catalog songs.
// @Description Omit conversation_id to start a new conversation.
// @Tags Chat
// @Accept json
// @Produce json
// @Param turn body chat.TurnRequest true "Message"
// @Success 200 {object} models.APIResponse{data=chat.TurnResponse}
// @Failure 400 {object} models.APIResponse "Message is required"
// @Failure 404 {object} models.APIResponse "Conversation not found"
// @Failure 429 {object} models.APIResponse "Too many requests"
// @Failure 504 {object} models.APIResponse "Request timed out"
// @Security BearerAuth
// @Router /chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req chat.TurnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := h.chat.Turn(r.Context(), callerID(r), req)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, resp, start)
}

// ListConversations returns the caller's conversations, most recent first.
//
// @Summary List conversations
// @Tags Chat
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Conversation}
// @Security BearerAuth
// @Router /chat/conversations [get]
func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	convs, err := h.db.ListConversations(r.Context(), callerID(r))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, convs, start)
}

// ConversationMessages returns a conversation's messages, oldest first.
//
// @Summary Conversation messages
// @Tags Chat
// @Produce json
// @Param id path int true "Conversation ID"
// @Success 200 {object} models.APIResponse{data=[]models.Message}
// @Failure 404 {object} models.APIResponse "Conversation not found"
// @Security BearerAuth
// @Router /chat/conversations/{id}/messages [get]
func (h *Handler) ConversationMessages(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetConversation(r.Context(), id, callerID(r)); err != nil {
		respondStoreError(w, r, err)
		return
	}
	messages, err := h.db.ListMessages(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, messages, start)
}

// DeleteConversation removes a conversation and its messages.
//
// @Summary Delete conversation
// @Tags Chat
// @Param id path int true "Conversation ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.APIResponse "Conversation not found"
// @Security BearerAuth
// @Router /chat/conversations/{id} [delete]
func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteConversation(r.Context(), id, callerID(r)); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondNoContent(w)
}
