// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/melodia/internal/cache"
	"github.com/tomtom215/melodia/internal/llm"
	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/metrics"
	"github.com/tomtom215/melodia/internal/models"
)

const extractionPrompt = `You extract song search filters from a listener's message.
Reply with only a JSON object with exactly these keys:
{"title": string or null, "artist_name": string or null, "album_title": string or null, "genre": string or null}
Set a key only when the message explicitly names that song title, artist, album or genre. Use null otherwise.
Do not guess, infer moods or add commentary.`

// titleIndicators are tried in order by the heuristic fallback. The text
// after the first one found becomes the title.
var titleIndicators = cache.NewPhraseMatcher([]string{"song named", "song called", "listen to", "play", "hear"})

var leadingDeterminers = []string{"the ", "a ", "an "}

const titleStopChars = ".,!?;:"

var errUnparsable = errors.New("unparsable extraction response")

// Extractor turns a chat message into SearchParameters.
type Extractor struct {
	gen llm.Generator
}

// NewExtractor returns an extractor backed by gen.
func NewExtractor(gen llm.Generator) *Extractor {
	return &Extractor{gen: gen}
}

// Extract never fails: when the model is unavailable or answers with
// something other than the expected JSON, the heuristic fallback is used.
func (e *Extractor) Extract(ctx context.Context, query string) models.SearchParameters {
	text, err := e.gen.Generate(llm.WithPurpose(ctx, "extract"), []llm.Message{
		{Role: llm.RoleSystem, Content: extractionPrompt},
		{Role: llm.RoleUser, Content: query},
	})
	if err == nil {
		params, parseErr := parseParameters(text)
		if parseErr == nil {
			return params
		}
		err = parseErr
	}

	logging.Ctx(ctx).Warn().Err(err).Msg("Parameter extraction fell back to heuristics")
	metrics.RecordFallback("extract", fallbackReason(err))
	return FallbackParameters(query)
}

// parseParameters decodes the first JSON object in text, tolerating
// markdown code fences around it. Empty strings count as absent.
func parseParameters(text string) (models.SearchParameters, error) {
	obj, ok := firstJSONObject(stripCodeFences(text))
	if !ok {
		return models.SearchParameters{}, fmt.Errorf("%w: no JSON object", errUnparsable)
	}
	var params models.SearchParameters
	if err := json.Unmarshal([]byte(obj), &params); err != nil {
		return models.SearchParameters{}, fmt.Errorf("%w: %v", errUnparsable, err)
	}
	return params.Normalize(), nil
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		// Drop the language tag line, e.g. ```json
		text = text[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}

// firstJSONObject returns the first balanced {...} in text, skipping braces
// inside string literals.
func firstJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// FallbackParameters guesses a title from direct-playback phrasing, e.g.
// "I want to listen to Hey Jude please" gives Title "Hey Jude please".
// Every other field stays absent.
func FallbackParameters(query string) models.SearchParameters {
	// Matches arrive ordered by end, so the first seen per indicator is its earliest.
	ends := make(map[int]int, titleIndicators.Len())
	for _, m := range titleIndicators.FindAll(query) {
		if _, ok := ends[m.Index]; !ok {
			ends[m.Index] = m.End
		}
	}
	for idx := range titleIndicators.Len() {
		end, ok := ends[idx]
		if !ok {
			continue
		}
		if title := cleanTitle(query[end:]); title != "" {
			return models.SearchParameters{Title: &title}
		}
	}
	return models.SearchParameters{}
}

func cleanTitle(rest string) string {
	rest = strings.TrimSpace(rest)
	for _, d := range leadingDeterminers {
		if len(rest) >= len(d) && strings.EqualFold(rest[:len(d)], d) {
			rest = rest[len(d):]
			break
		}
	}
	if cut := strings.IndexAny(rest, titleStopChars); cut >= 0 {
		rest = rest[:cut]
	}
	return strings.TrimSpace(rest)
}

// fallbackReason buckets an error for the fallback metric.
func fallbackReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, llm.ErrEmptyResponse):
		return "empty"
	case errors.Is(err, errUnparsable):
		return "unparsable"
	default:
		return "llm_error"
	}
}
