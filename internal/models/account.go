// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package models

import "time"

// User is a local account. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Playlist is an ordered list of tracks owned by one user.
type Playlist struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	SongIDs   []int64   `json:"song_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanType is a subscription tier.
type PlanType string

const (
	PlanFree    PlanType = "FREE"
	PlanPremium PlanType = "PREMIUM"
)

// Valid reports whether p is a known plan.
func (p PlanType) Valid() bool {
	return p == PlanFree || p == PlanPremium
}

// SubscriptionStatus is maintained by renew and the expiry sweeper.
type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionExpired SubscriptionStatus = "expired"
)

// Subscription is a user's single plan.
type Subscription struct {
	ID         int64              `json:"id"`
	UserID     int64              `json:"user_id"`
	PlanType   PlanType           `json:"plan_type"`
	StartDate  time.Time          `json:"start_date"`
	ExpiryDate time.Time          `json:"expiry_date"`
	Status     SubscriptionStatus `json:"status"`
}

// IsActive reports whether the subscription is active at now.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.Status == SubscriptionActive && now.Before(s.ExpiryDate)
}

// UserProfile is the aggregate returned by GET /users/{id}/profile.
type UserProfile struct {
	User         User          `json:"user"`
	Playlists    []Playlist    `json:"playlists"`
	Subscription *Subscription `json:"subscription"`
}
