// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package chat

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tomtom215/melodia/internal/cache"
	"github.com/tomtom215/melodia/internal/config"
	"github.com/tomtom215/melodia/internal/llm"
	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/metrics"
	"github.com/tomtom215/melodia/internal/models"
)

// apologyReply is stored when the conversational model is unavailable.
const apologyReply = "Sorry, I'm having trouble responding right now. Please try again in a moment."

// ErrEmptyMessage is returned for blank chat input.
var ErrEmptyMessage = errors.New("message is required")

// ConversationStore is the conversation log. *database.DB satisfies it.
type ConversationStore interface {
	GetConversation(ctx context.Context, id, userID int64) (*models.Conversation, error)
	ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error)
	SaveTurn(ctx context.Context, userID int64, conversationID *int64, user, reply *models.Message) (*models.Conversation, error)
}

// Options tune a Service. Zero values select the defaults.
type Options struct {
	MaxSongs        int
	Persona         string
	TurnTimeout     time.Duration
	KeywordCacheTTL time.Duration
	Rand            *rand.Rand
}

// TurnRequest is one user message, optionally continuing a conversation.
type TurnRequest struct {
	Message        string `json:"message" validate:"required,max=2000"`
	ConversationID *int64 `json:"conversation_id,omitempty" validate:"omitempty,gt=0"`
}

// TurnResponse is the assistant's reply.
type TurnResponse struct {
	ConversationID int64                 `json:"conversation_id"`
	Message        string                `json:"message"`
	Songs          []models.TrackSummary `json:"songs"`
}

// Service runs chat turns.
type Service struct {
	store     ConversationStore
	gen       llm.Generator
	extractor *Extractor
	resolver  *Resolver
	composer  *Composer
	keywords  *cache.Cache[[]string]
	persona   string
	timeout   time.Duration
}

// NewService wires the recommendation pipeline. Call Close to stop the
// keyword cache sweeper.
func NewService(store ConversationStore, catalog Catalog, gen llm.Generator, opts Options) *Service {
	persona := strings.TrimSpace(opts.Persona)
	if persona == "" {
		persona = config.DefaultPersona
	}
	ttl := opts.KeywordCacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	kwCache := cache.New[[]string](ttl)

	return &Service{
		store:     store,
		gen:       gen,
		extractor: NewExtractor(gen),
		resolver:  NewResolver(catalog, NewKeywordGenerator(gen, kwCache), opts.MaxSongs, opts.Rand),
		composer:  NewComposer(gen),
		keywords:  kwCache,
		persona:   persona,
		timeout:   opts.TurnTimeout,
	}
}

// Close releases background resources.
func (s *Service) Close() {
	s.keywords.Close()
}

// Turn handles one chat message for userID. A conversation that does not
// exist or belongs to someone else yields database.ErrConversationNotFound.
// The user message and the reply are stored together once the reply is
// ready, so a failed turn leaves the log untouched.
func (s *Service) Turn(ctx context.Context, userID int64, req TurnRequest) (*TurnResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var history []models.Message
	if req.ConversationID != nil {
		conv, err := s.store.GetConversation(ctx, *req.ConversationID, userID)
		if err != nil {
			return nil, err
		}
		if history, err = s.store.ListMessages(ctx, conv.ID); err != nil {
			return nil, err
		}
	}
	history = append(history, models.Message{Role: models.RoleUser, Content: text})

	recommend := IsRecommendationRequest(text)
	metrics.RecordChatTurn(recommend)

	var (
		reply  string
		tracks = []models.Track{}
	)
	if recommend {
		params := s.extractor.Extract(ctx, text)
		res, err := s.resolver.Resolve(ctx, text, params)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve recommendation: %w", err)
		}
		tracks = res.Tracks
		reply = s.composer.Compose(ctx, tracks, text, params)
		logging.Ctx(ctx).Info().Str("strategy", res.Strategy).Int("songs", len(tracks)).Msg("Recommendation turn completed")
	} else {
		reply = s.converse(ctx, history)
	}

	trackIDs := make([]int64, len(tracks))
	for i := range tracks {
		trackIDs[i] = tracks[i].ID
	}
	conv, err := s.store.SaveTurn(ctx, userID, req.ConversationID,
		&models.Message{Role: models.RoleUser, Content: text},
		&models.Message{Role: models.RoleAssistant, Content: reply, TrackIDs: trackIDs},
	)
	if err != nil {
		return nil, err
	}
	if req.ConversationID == nil {
		logging.Ctx(ctx).Debug().Int64("conversation_id", conv.ID).Int64("user_id", userID).Msg("Conversation started")
	}

	return &TurnResponse{
		ConversationID: conv.ID,
		Message:        reply,
		Songs:          models.Summaries(tracks),
	}, nil
}

// converse sends the persona and the history, oldest first, to the model.
// Model failures produce the apology reply.
func (s *Service) converse(ctx context.Context, history []models.Message) string {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: s.persona})
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == models.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}

	reply, err := s.gen.Generate(llm.WithPurpose(ctx, "converse"), messages)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = llm.ErrEmptyResponse
	}
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Int("history", len(history)).Msg("Conversational reply failed")
		metrics.RecordFallback("converse", fallbackReason(err))
		return apologyReply
	}
	return reply
}

// LLMState reports the breaker state when the generator exposes one.
func (s *Service) LLMState() string {
	if st, ok := s.gen.(interface{ State() string }); ok {
		return st.State()
	}
	return "unknown"
}
