// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package chat

import (
	"context"
	"strings"

	"github.com/tomtom215/melodia/internal/cache"
	"github.com/tomtom215/melodia/internal/llm"
	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/metrics"
)

const keywordPrompt = `Suggest 3 to 5 short search terms for finding songs that match the listener's request.
Terms may be song titles, artist names, album titles or genres.
Reply with only the terms separated by commas.`

const maxKeywords = 5

// KeywordGenerator asks the model for catalog search terms and caches the
// answer per normalized query.
type KeywordGenerator struct {
	gen   llm.Generator
	cache *cache.Cache[[]string]
}

// NewKeywordGenerator returns a generator; a nil cache disables caching.
func NewKeywordGenerator(gen llm.Generator, c *cache.Cache[[]string]) *KeywordGenerator {
	return &KeywordGenerator{gen: gen, cache: c}
}

// Keywords returns nil when the model is unavailable.
func (k *KeywordGenerator) Keywords(ctx context.Context, query string) []string {
	key := cache.GenerateKey("keywords", strings.ToLower(strings.Join(strings.Fields(query), " ")))
	if k.cache != nil {
		if kws, ok := k.cache.Get(key); ok {
			metrics.RecordKeywordCacheLookup(true)
			return kws
		}
		metrics.RecordKeywordCacheLookup(false)
	}

	text, err := k.gen.Generate(llm.WithPurpose(ctx, "keywords"), []llm.Message{
		{Role: llm.RoleSystem, Content: keywordPrompt},
		{Role: llm.RoleUser, Content: query},
	})
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Keyword generation failed")
		metrics.RecordFallback("keywords", fallbackReason(err))
		return nil
	}

	kws := parseKeywords(text)
	if k.cache != nil && len(kws) > 0 {
		k.cache.Set(key, kws)
	}
	return kws
}

// parseKeywords splits a comma-separated answer, dropping quotes and terms
// of two characters or fewer.
func parseKeywords(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		term := strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `"'`+"`"))
		if len(term) <= 2 {
			continue
		}
		out = append(out, term)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}
