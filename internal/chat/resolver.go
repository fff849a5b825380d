// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package chat

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/metrics"
	"github.com/tomtom215/melodia/internal/models"
)

// MaxRecommendations caps every resolution.
const MaxRecommendations = 5

// Strategy names, also used as metric labels.
const (
	StrategyFiltered   = "filtered"
	StrategyExactTitle = "exact_title"
	StrategyWordMatch  = "word_match"
	StrategyKeyword    = "keyword"
	StrategyRandom     = "random"
)

// Catalog is the read side of the track store used for resolution.
// *database.DB satisfies it.
type Catalog interface {
	FilterTracks(ctx context.Context, params models.SearchParameters, limit int) ([]models.Track, error)
	TracksByExactTitle(ctx context.Context, title string, limit int) ([]models.Track, error)
	TracksByTitleWords(ctx context.Context, words []string, limit int) ([]models.Track, error)
	TracksByKeyword(ctx context.Context, keyword string, limit int) ([]models.Track, error)
	TrackIDs(ctx context.Context) ([]int64, error)
	TracksByIDs(ctx context.Context, ids []int64) ([]models.Track, error)
}

// KeywordSource produces search terms for a free-form query.
type KeywordSource interface {
	Keywords(ctx context.Context, query string) []string
}

// Resolution is the outcome of Resolve. Strategy is empty when nothing
// matched and the catalog is empty.
type Resolution struct {
	Tracks     []models.Track
	HasFilters bool
	Strategy   string
}

// Resolver picks the tracks for a recommendation request.
type Resolver struct {
	catalog  Catalog
	keywords KeywordSource
	limit    int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewResolver builds a resolver. limit is clamped to 1..MaxRecommendations;
// a nil rng gets a randomly seeded one.
func NewResolver(catalog Catalog, keywords KeywordSource, limit int, rng *rand.Rand) *Resolver {
	if limit <= 0 || limit > MaxRecommendations {
		limit = MaxRecommendations
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Resolver{catalog: catalog, keywords: keywords, limit: limit, rng: rng}
}

type strategy struct {
	name string
	run  func(ctx context.Context, query string, params models.SearchParameters) ([]models.Track, error)
}

// Resolve runs the strategies in order and returns the first non-empty
// result. Store errors abort resolution; an empty catalog is not an error.
func (r *Resolver) Resolve(ctx context.Context, query string, params models.SearchParameters) (Resolution, error) {
	params = params.Normalize()
	res := Resolution{HasFilters: params.HasAny(), Tracks: []models.Track{}}

	strategies := []strategy{
		{StrategyFiltered, r.filtered},
		{StrategyExactTitle, r.exactTitle},
		{StrategyWordMatch, r.wordMatch},
		{StrategyKeyword, r.keyword},
		{StrategyRandom, r.random},
	}
	for _, s := range strategies {
		tracks, err := s.run(ctx, query, params)
		if err != nil {
			return res, fmt.Errorf("%s strategy: %w", s.name, err)
		}
		if len(tracks) == 0 {
			continue
		}
		if len(tracks) > r.limit {
			tracks = tracks[:r.limit]
		}
		res.Tracks = tracks
		res.Strategy = s.name
		break
	}

	metrics.RecordResolution(res.Strategy, len(res.Tracks))
	logging.Ctx(ctx).Debug().
		Str("strategy", res.Strategy).
		Bool("has_filters", res.HasFilters).
		Int("tracks", len(res.Tracks)).
		Msg("Recommendation resolved")
	return res, nil
}

func (r *Resolver) filtered(ctx context.Context, _ string, params models.SearchParameters) ([]models.Track, error) {
	if !params.HasAny() {
		return nil, nil
	}
	return r.catalog.FilterTracks(ctx, params, r.limit)
}

func (r *Resolver) exactTitle(ctx context.Context, _ string, params models.SearchParameters) ([]models.Track, error) {
	if params.Title == nil || len(*params.Title) <= 1 {
		return nil, nil
	}
	return r.catalog.TracksByExactTitle(ctx, *params.Title, r.limit)
}

func (r *Resolver) wordMatch(ctx context.Context, _ string, params models.SearchParameters) ([]models.Track, error) {
	if params.Title == nil {
		return nil, nil
	}
	words := significantWords(*params.Title)
	if len(words) == 0 {
		return nil, nil
	}
	return r.catalog.TracksByTitleWords(ctx, words, r.limit)
}

// keyword never fails on the model side; only store errors surface.
func (r *Resolver) keyword(ctx context.Context, query string, _ models.SearchParameters) ([]models.Track, error) {
	if r.keywords == nil {
		return nil, nil
	}
	for _, kw := range r.keywords.Keywords(ctx, query) {
		tracks, err := r.catalog.TracksByKeyword(ctx, kw, r.limit)
		if err != nil {
			return nil, err
		}
		if len(tracks) > 0 {
			return tracks, nil
		}
	}
	return nil, nil
}

// random samples up to limit distinct ids with a partial Fisher-Yates
// shuffle and returns the tracks in shuffled order.
func (r *Resolver) random(ctx context.Context, _ string, _ models.SearchParameters) ([]models.Track, error) {
	ids, err := r.catalog.TrackIDs(ctx)
	if err != nil {
		return nil, err
	}
	n := min(r.limit, len(ids))
	if n == 0 {
		return nil, nil
	}

	r.rngMu.Lock()
	for i := 0; i < n; i++ {
		j := i + r.rng.IntN(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}
	r.rngMu.Unlock()

	return r.catalog.TracksByIDs(ctx, ids[:n])
}

// significantWords splits a title into words longer than two characters.
func significantWords(title string) []string {
	var words []string
	for _, w := range strings.Fields(title) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}
