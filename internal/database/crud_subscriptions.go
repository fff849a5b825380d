// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/melodia/internal/models"
)

const subscriptionColumns = `id, user_id, plan_type, start_date, expiry_date, status`

func scanSubscription(row rowScanner) (models.Subscription, error) {
	var s models.Subscription
	var plan, status string
	if err := row.Scan(&s.ID, &s.UserID, &plan, &s.StartDate, &s.ExpiryDate, &status); err != nil {
		return s, err
	}
	s.PlanType = models.PlanType(plan)
	s.Status = models.SubscriptionStatus(status)
	return s, nil
}

func (db *DB) getSubscriptionBy(ctx context.Context, where string, arg interface{}) (*models.Subscription, error) {
	s, err := scanSubscription(db.conn.QueryRowContext(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE `+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &s, nil
}

// Subscribe starts a plan for a user that has none. The plan expires after period.
func (db *DB) Subscribe(ctx context.Context, userID int64, plan models.PlanType, period time.Duration) (sub *models.Subscription, err error) {
	defer timed("insert", "subscriptions", &err)()

	if _, err = db.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	now := db.now()
	s := models.Subscription{
		UserID:     userID,
		PlanType:   plan,
		StartDate:  now,
		ExpiryDate: now.Add(period),
		Status:     models.SubscriptionActive,
	}
	err = db.conn.QueryRowContext(ctx,
		`INSERT INTO subscriptions (user_id, plan_type, start_date, expiry_date, status)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		s.UserID, string(s.PlanType), s.StartDate, s.ExpiryDate, string(s.Status),
	).Scan(&s.ID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrSubscriptionExists
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return &s, nil
}

// GetSubscription returns a subscription by id.
func (db *DB) GetSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	return db.getSubscriptionBy(ctx, "id = ?", id)
}

// GetSubscriptionByUser returns the user's subscription.
func (db *DB) GetSubscriptionByUser(ctx context.Context, userID int64) (*models.Subscription, error) {
	return db.getSubscriptionBy(ctx, "user_id = ?", userID)
}

// RenewSubscription restarts the expiry window from now and reactivates the plan.
func (db *DB) RenewSubscription(ctx context.Context, id int64, period time.Duration) (*models.Subscription, error) {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE subscriptions SET expiry_date = ?, status = ? WHERE id = ?`,
		db.now().Add(period), string(models.SubscriptionActive), id)
	if err != nil {
		return nil, fmt.Errorf("failed to renew subscription: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrSubscriptionNotFound
	}
	return db.GetSubscription(ctx, id)
}

// DeleteSubscription removes a subscription.
func (db *DB) DeleteSubscription(ctx context.Context, id int64) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// ExpireSubscriptions marks active subscriptions whose expiry is before now
// as expired and returns how many changed.
func (db *DB) ExpireSubscriptions(ctx context.Context, now time.Time) (n int64, err error) {
	defer timed("update", "subscriptions", &err)()

	result, err := db.conn.ExecContext(ctx,
		`UPDATE subscriptions SET status = ? WHERE status = ? AND expiry_date < ?`,
		string(models.SubscriptionExpired), string(models.SubscriptionActive), now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to expire subscriptions: %w", err)
	}
	n, err = result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
