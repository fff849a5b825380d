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

	"github.com/tomtom215/melodia/internal/models"
)

const userColumns = `id, username, email, password_hash, created_at`

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// CreateUser inserts a user. PasswordHash must already be set.
func (db *DB) CreateUser(ctx context.Context, user *models.User) (err error) {
	defer timed("insert", "users", &err)()

	user.CreatedAt = db.now()
	err = db.conn.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?) RETURNING id`,
		user.Username, user.Email, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser returns a user by id.
func (db *DB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return db.getUserBy(ctx, "id = ?", id)
}

// GetUserByUsername returns a user by exact username.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return db.getUserBy(ctx, "username = ?", username)
}

func (db *DB) getUserBy(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	row := db.conn.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// ListUsers returns a page of users ordered by id, plus the total count.
func (db *DB) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	var total int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	users, err := queryAndScan(ctx, db.conn,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT ? OFFSET ?`,
		[]interface{}{limit, offset}, scanUser)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// UpdatePassword replaces a user's password hash.
func (db *DB) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result, err := db.conn.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user and everything the user owns: playlists,
// subscription and conversations.
func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		stmts := []string{
			`DELETE FROM message_tracks WHERE message_id IN (
				SELECT m.id FROM messages m JOIN conversations c ON c.id = m.conversation_id WHERE c.user_id = ?)`,
			`DELETE FROM messages WHERE conversation_id IN (SELECT id FROM conversations WHERE user_id = ?)`,
			`DELETE FROM conversations WHERE user_id = ?`,
			`DELETE FROM playlist_tracks WHERE playlist_id IN (SELECT id FROM playlists WHERE user_id = ?)`,
			`DELETE FROM playlists WHERE user_id = ?`,
			`DELETE FROM subscriptions WHERE user_id = ?`,
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to delete user data: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

// GetUserProfile returns the user with playlists and subscription (nil when none).
func (db *DB) GetUserProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	user, err := db.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	playlists, err := db.ListPlaylistsByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{User: *user, Playlists: playlists}

	sub, err := db.GetSubscriptionByUser(ctx, id)
	switch {
	case errors.Is(err, ErrSubscriptionNotFound):
	case err != nil:
		return nil, err
	default:
		profile.Subscription = sub
	}
	return profile, nil
}
