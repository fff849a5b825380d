// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/melodia/internal/cache"
	"github.com/tomtom215/melodia/internal/llm"
	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/metrics"
	"github.com/tomtom215/melodia/internal/models"
)

var directPhrases = cache.NewPhraseMatcher([]string{"listen to", "play", "hear", "song named", "song called"})

const directTemplate = `The listener asked to hear a specific song: %q
Songs being queued:
%s
Acknowledge the request in one or two friendly sentences and confirm which song(s) will play.`

const generalTemplate = `The listener asked for recommendations: %q
Suggested songs:
%s
Introduce each suggestion with a short explanation of why it fits the request.`

const noTracksLine = "(the catalog had nothing to offer for this request)"

const composerSystemPrompt = `You are Melodia, a music streaming assistant. Only mention the songs you are given.`

// Composer writes the assistant's reply around the resolved tracks.
type Composer struct {
	gen llm.Generator
}

// NewComposer returns a composer backed by gen.
func NewComposer(gen llm.Generator) *Composer {
	return &Composer{gen: gen}
}

// Compose returns the model's reply. When the model fails the reply is
// built locally from the track list, so the error is only logged.
func (c *Composer) Compose(ctx context.Context, tracks []models.Track, query string, _ models.SearchParameters) string {
	direct := isDirectRequest(query)
	prompt := buildComposerPrompt(tracks, query, direct)

	text, err := c.gen.Generate(llm.WithPurpose(ctx, "compose"), []llm.Message{
		{Role: llm.RoleSystem, Content: composerSystemPrompt},
		{Role: llm.RoleUser, Content: prompt},
	})
	if err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	if err == nil {
		err = llm.ErrEmptyResponse
	}

	logging.Ctx(ctx).Warn().Err(err).Bool("direct", direct).Msg("Response composition fell back to plain listing")
	metrics.RecordFallback("compose", fallbackReason(err))
	return plainReply(tracks, direct)
}

func isDirectRequest(query string) bool {
	return directPhrases.Contains(query)
}

func buildComposerPrompt(tracks []models.Track, query string, direct bool) string {
	list := trackLines(tracks)
	if list == "" {
		list = noTracksLine
	}
	if direct {
		return fmt.Sprintf(directTemplate, query, list)
	}
	return fmt.Sprintf(generalTemplate, query, list)
}

// trackLines renders "- <title> by <artist1>, <artist2>" per track.
func trackLines(tracks []models.Track) string {
	var b strings.Builder
	for i := range tracks {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(tracks[i].Title)
		if names := tracks[i].ArtistNames(); len(names) > 0 {
			b.WriteString(" by ")
			b.WriteString(strings.Join(names, ", "))
		}
	}
	return b.String()
}

func plainReply(tracks []models.Track, direct bool) string {
	if len(tracks) == 0 {
		return "Sorry, I couldn't find any songs in the catalog for that request."
	}
	intro := "Here are some songs you might enjoy:"
	if direct {
		intro = "Now playing:"
	}
	return intro + "\n" + trackLines(tracks)
}
