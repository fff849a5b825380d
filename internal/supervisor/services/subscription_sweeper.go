// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/melodia/internal/logging"
	"github.com/tomtom215/melodia/internal/metrics"
)

// sweepTimeout bounds a single expiry update.
const sweepTimeout = time.Minute

// SubscriptionExpirer marks lapsed subscriptions. *database.DB satisfies it.
type SubscriptionExpirer interface {
	ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error)
}

// SubscriptionSweeper expires subscriptions on startup and then every interval.
type SubscriptionSweeper struct {
	store    SubscriptionExpirer
	interval time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

// NewSubscriptionSweeper returns a sweeper; non-positive intervals mean one hour.
func NewSubscriptionSweeper(store SubscriptionExpirer, interval time.Duration) *SubscriptionSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SubscriptionSweeper{
		store:    store,
		interval: interval,
		now:      time.Now,
		logger:   logging.WithComponent("subscription-sweeper"),
	}
}

// Serve sweeps until ctx is canceled. A failed sweep is logged and retried
// on the next tick rather than restarting the service.
func (s *SubscriptionSweeper) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Subscription sweeper starting")
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Subscription sweeper stopping")
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SubscriptionSweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	n, err := s.store.ExpireSubscriptions(sweepCtx, s.now())
	metrics.RecordSubscriptionSweep(n, err)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("Subscription sweep failed")
		}
		return
	}
	if n > 0 {
		s.logger.Info().Int64("expired", n).Msg("Expired subscriptions")
	}
}

func (s *SubscriptionSweeper) String() string {
	return "subscription-sweeper"
}
