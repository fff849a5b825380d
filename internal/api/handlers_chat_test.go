// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/tomtom215/melodia/internal/chat"
	"github.com/tomtom215/melodia/internal/models"
)

func TestChatRecommendationTurn(t *testing.T) {
	s := newTestServer(t, defaultModel())
	aliceID, alice := s.signup("alice")
	_, bob := s.signup("bob")

	first := decodeData[chat.TurnResponse](t, s.expect(http.MethodPost, "/api/v1/chat",
		chat.TurnRequest{Message: "play the song called Imagine"}, alice, http.StatusOK))
	if first.ConversationID <= 0 {
		t.Fatalf("conversation_id = %d", first.ConversationID)
	}
	if len(first.Songs) != 1 || first.Songs[0].Title != "Imagine" {
		t.Fatalf("songs = %+v", first.Songs)
	}
	if first.Message != "Here comes Imagine by John Lennon." {
		t.Errorf("message = %q", first.Message)
	}

	convID := first.ConversationID
	second := decodeData[chat.TurnResponse](t, s.expect(http.MethodPost, "/api/v1/chat",
		chat.TurnRequest{Message: "thanks, how are you?", ConversationID: &convID}, alice, http.StatusOK))
	if second.ConversationID != convID || len(second.Songs) != 0 || second.Message != "Happy to chat about music!" {
		t.Errorf("second turn = %+v", second)
	}

	convs := decodeData[[]models.Conversation](t, s.expect(http.MethodGet, "/api/v1/chat/conversations", nil, alice, http.StatusOK))
	if len(convs) != 1 || convs[0].ID != convID {
		t.Errorf("conversations = %+v", convs)
	}
	messagesPath := fmt.Sprintf("/api/v1/chat/conversations/%d/messages", convID)
	messages := decodeData[[]models.Message](t, s.expect(http.MethodGet, messagesPath, nil, alice, http.StatusOK))
	if len(messages) != 4 || messages[1].Role != models.RoleAssistant || len(messages[1].TrackIDs) != 1 {
		t.Errorf("messages = %+v", messages)
	}

	history := decodeData[[]models.ChatHistoryEntry](t, s.expect(http.MethodGet,
		fmt.Sprintf("/api/v1/users/%d/chat-history", aliceID), nil, alice, http.StatusOK))
	if len(history) != 2 {
		t.Errorf("chat history = %d entries, want 2", len(history))
	}

	// Another user's conversation is indistinguishable from a missing one.
	s.expectError(http.MethodGet, messagesPath, nil, bob, http.StatusNotFound, ErrCodeNotFound, "Conversation not found")
	s.expectError(http.MethodPost, "/api/v1/chat", chat.TurnRequest{Message: "play Imagine", ConversationID: &convID}, bob,
		http.StatusNotFound, ErrCodeNotFound, "Conversation not found")
	s.expectError(http.MethodDelete, fmt.Sprintf("/api/v1/chat/conversations/%d", convID), nil, bob,
		http.StatusNotFound, ErrCodeNotFound, "")

	s.expect(http.MethodDelete, fmt.Sprintf("/api/v1/chat/conversations/%d", convID), nil, alice, http.StatusNoContent)
	s.expectError(http.MethodGet, messagesPath, nil, alice, http.StatusNotFound, ErrCodeNotFound, "")
}

func TestChatRejectsEmptyMessages(t *testing.T) {
	s := newTestServer(t, defaultModel())
	_, alice := s.signup("alice")

	s.expectError(http.MethodPost, "/api/v1/chat", map[string]string{}, alice, http.StatusBadRequest, ErrCodeValidation, "")
	s.expectError(http.MethodPost, "/api/v1/chat", chat.TurnRequest{Message: "   "}, alice,
		http.StatusBadRequest, ErrCodeValidation, "Message is required")

	convs := decodeData[[]models.Conversation](t, s.expect(http.MethodGet, "/api/v1/chat/conversations", nil, alice, http.StatusOK))
	if len(convs) != 0 {
		t.Errorf("rejected messages created %d conversations", len(convs))
	}
}

func TestChatSurvivesModelOutage(t *testing.T) {
	s := newTestServer(t, scriptedModel(nil))
	_, alice := s.signup("alice")

	resp := decodeData[chat.TurnResponse](t, s.expect(http.MethodPost, "/api/v1/chat",
		chat.TurnRequest{Message: "I want to hear Hey Jude, my favourite song"}, alice, http.StatusOK))
	if len(resp.Songs) != 1 || resp.Songs[0].Title != "Hey Jude" {
		t.Errorf("songs = %+v", resp.Songs)
	}
	if resp.Message == "" {
		t.Error("reply should fall back to a plain listing")
	}
}
