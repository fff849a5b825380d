// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/melodia/internal/logging"
)

// Migration is one versioned schema change.
type Migration struct {
	Version     int
	Name        string
	Description string
	Statements  []string
	AppliedAt   time.Time
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// migrations are append-only: never edit or reorder an applied entry.
var migrations = []Migration{
	{
		Version:     1,
		Name:        "catalog",
		Description: "Artists, albums, genres and tracks with their artist/genre links",
		Statements: []string{
			`CREATE SEQUENCE IF NOT EXISTS seq_artists START 1`,
			`CREATE SEQUENCE IF NOT EXISTS seq_albums START 1`,
			`CREATE SEQUENCE IF NOT EXISTS seq_genres START 1`,
			`CREATE SEQUENCE IF NOT EXISTS seq_tracks START 1`,
			`CREATE TABLE IF NOT EXISTS artists (
				id BIGINT PRIMARY KEY DEFAULT nextval('seq_artists'),
				name TEXT NOT NULL,
				bio TEXT,
				image_url TEXT,
				created_at TIMESTAMP NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS albums (
				id BIGINT PRIMARY KEY DEFAULT nextval('seq_albums'),
				title TEXT NOT NULL,
				artist_id BIGINT NOT NULL,
				release_date DATE,
				cover_image TEXT,
				created_at TIMESTAMP NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS genres (
				id BIGINT PRIMARY KEY DEFAULT nextval('seq_genres'),
				name TEXT NOT NULL,
				description TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS tracks (
				id BIGINT PRIMARY KEY DEFAULT nextval('seq_tracks'),
				title TEXT NOT NULL,
				album_id BIGINT NOT NULL,
				duration_seconds INTEGER NOT NULL DEFAULT 0,
				media_url TEXT,
				cover_url TEXT,
				created_at TIMESTAMP NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS track_artists (
				track_id BIGINT NOT NULL,
				artist_id BIGINT NOT NULL,
				position INTEGER NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS track_genres (
				track_id BIGINT NOT NULL,
				genre_id BIGINT NOT NULL,
				position INTEGER NOT NULL
			)`,
		},
	},
	{
		Version:     2,
		Name:        "accounts",
		Description: "Users, playlists and subscriptions",
		Statements: []string{
			`CREATE SEQUENCE IF NOT EXISTS seq_users START 1`,
			`CREATE SEQUENCE IF NOT EXISTS seq_playlists START 1`,
			`CREATE SEQUENCE IF NOT EXISTS seq_subscriptions START 1`,
			`CREATE TABLE IF NOT EXISTS users (
				id BIGINT PRIMARY KEY DEFAULT nextval('seq_users'),
				username TEXT NOT NULL UNIQUE,
				email TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS playlists (
				id BIGINT PRIMARY KEY DEFAULT nextval('seq_playlists'),
				user_id BIGINT NOT NULL,
				name TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS playlist_tracks (
				playlist_id BIGINT NOT NULL,
				track_id BIGINT NOT NULL,
				position INTEGER NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS subscriptions (
				id BIGINT PRIMARY KEY DEFAULT nextval('seq_subscriptions'),
				user_id BIGINT NOT NULL UNIQUE,
				plan_type TEXT NOT NULL,
				start_date TIMESTAMP NOT NULL,
				expiry_date TIMESTAMP NOT NULL,
				status TEXT NOT NULL
			)`,
		},
	},
	{
		Version:     3,
		Name:        "chat",
		Description: "Conversation log with recommended tracks per assistant message",
		Statements: []string{
			`CREATE SEQUENCE IF NOT EXISTS seq_conversations START 1`,
			`CREATE SEQUENCE IF NOT EXISTS seq_messages START 1`,
			`CREATE TABLE IF NOT EXISTS conversations (
				id BIGINT PRIMARY KEY DEFAULT nextval('seq_conversations'),
				user_id BIGINT NOT NULL,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS messages (
				id BIGINT PRIMARY KEY DEFAULT nextval('seq_messages'),
				conversation_id BIGINT NOT NULL,
				role TEXT NOT NULL,
				content TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS message_tracks (
				message_id BIGINT NOT NULL,
				track_id BIGINT NOT NULL,
				position INTEGER NOT NULL
			)`,
		},
	},
}

// runVersionedMigrations applies every migration not yet recorded in
// schema_migrations, each in its own transaction.
func (db *DB) runVersionedMigrations() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.appliedVersions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	newMigrations := 0
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := db.applyMigration(ctx, m); err != nil {
			return err
		}
		newMigrations++
	}

	if newMigrations > 0 {
		logging.Info().Int("count", newMigrations).Msg("Applied database migrations")
	}
	return nil
}

func (db *DB) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func (db *DB) applyMigration(ctx context.Context, m Migration) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration v%d: %w", m.Version, err)
	}
	for _, stmt := range m.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, description) VALUES (?, ?, ?)`,
		m.Version, m.Name, m.Description); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration v%d: %w", m.Version, err)
	}
	return nil
}

// GetCurrentSchemaVersion returns the highest applied migration version
func (db *DB) GetCurrentSchemaVersion(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// GetMigrationHistory returns all applied migrations in order
func (db *DB) GetMigrationHistory(ctx context.Context) ([]Migration, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return queryAndScan(ctx, db.conn,
		`SELECT version, name, COALESCE(description, ''), applied_at FROM schema_migrations ORDER BY version`,
		nil,
		func(rows rowScanner) (Migration, error) {
			var m Migration
			err := rows.Scan(&m.Version, &m.Name, &m.Description, &m.AppliedAt)
			return m, err
		})
}
