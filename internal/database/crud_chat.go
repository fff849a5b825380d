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

const conversationColumns = `id, user_id, created_at, updated_at`

func scanConversation(row rowScanner) (models.Conversation, error) {
	var c models.Conversation
	err := row.Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanMessage(row rowScanner) (models.Message, error) {
	var m models.Message
	var role string
	if err := row.Scan(&m.ID, &m.ConversationID, &role, &m.Content, &m.CreatedAt); err != nil {
		return m, err
	}
	m.Role = models.Role(role)
	m.TrackIDs = []int64{}
	return m, nil
}

// GetConversation returns the conversation only when userID owns it. Other
// users' conversations are reported as ErrConversationNotFound.
func (db *DB) GetConversation(ctx context.Context, id, userID int64) (*models.Conversation, error) {
	c, err := scanConversation(db.conn.QueryRowContext(ctx,
		`SELECT `+conversationColumns+` FROM conversations WHERE id = ? AND user_id = ?`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &c, nil
}

// ListConversations returns the user's conversations, most recently active first.
func (db *DB) ListConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	convs, err := queryAndScan(ctx, db.conn,
		`SELECT `+conversationColumns+` FROM conversations WHERE user_id = ? ORDER BY updated_at DESC, id DESC`,
		[]interface{}{userID}, scanConversation)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

// DeleteConversation removes a user's conversation with all of its messages.
func (db *DB) DeleteConversation(ctx context.Context, id, userID int64) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM conversations WHERE id = ? AND user_id = ?`, id, userID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrConversationNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check conversation: %w", err)
		}
		for _, stmt := range []string{
			`DELETE FROM message_tracks WHERE message_id IN (SELECT id FROM messages WHERE conversation_id = ?)`,
			`DELETE FROM messages WHERE conversation_id = ?`,
			`DELETE FROM conversations WHERE id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to delete conversation: %w", err)
			}
		}
		return nil
	})
}

func insertMessage(ctx context.Context, tx *sql.Tx, m *models.Message) error {
	if err := tx.QueryRowContext(ctx,
		`INSERT INTO messages (conversation_id, role, content, created_at) VALUES (?, ?, ?, ?) RETURNING id`,
		m.ConversationID, string(m.Role), m.Content, m.CreatedAt,
	).Scan(&m.ID); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	for i, trackID := range m.TrackIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO message_tracks (message_id, track_id, position) VALUES (?, ?, ?)`,
			m.ID, trackID, i); err != nil {
			return fmt.Errorf("failed to link message track: %w", err)
		}
	}
	return nil
}

// SaveTurn records a user message and its reply in one transaction. A nil
// conversationID starts a new conversation for userID; otherwise the
// conversation must belong to userID. Either everything is written or nothing.
func (db *DB) SaveTurn(ctx context.Context, userID int64, conversationID *int64, user, reply *models.Message) (conv *models.Conversation, err error) {
	defer timed("insert", "messages", &err)()

	now := db.now()
	c := models.Conversation{UserID: userID, UpdatedAt: now}
	err = db.withTx(ctx, func(tx *sql.Tx) error {
		if conversationID == nil {
			c.CreatedAt = now
			if err := tx.QueryRowContext(ctx,
				`INSERT INTO conversations (user_id, created_at, updated_at) VALUES (?, ?, ?) RETURNING id`,
				userID, now, now,
			).Scan(&c.ID); err != nil {
				return fmt.Errorf("failed to create conversation: %w", err)
			}
		} else {
			err := tx.QueryRowContext(ctx,
				`UPDATE conversations SET updated_at = ? WHERE id = ? AND user_id = ? RETURNING id, created_at`,
				now, *conversationID, userID,
			).Scan(&c.ID, &c.CreatedAt)
			if errors.Is(err, sql.ErrNoRows) {
				return ErrConversationNotFound
			}
			if err != nil {
				return fmt.Errorf("failed to touch conversation: %w", err)
			}
		}

		for _, m := range []*models.Message{user, reply} {
			m.ConversationID = c.ID
			m.CreatedAt = now
			if err := insertMessage(ctx, tx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListMessages returns the conversation's messages oldest first, ties broken by id.
func (db *DB) ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	msgs, err := queryAndScan(ctx, db.conn,
		`SELECT id, conversation_id, role, content, created_at FROM messages
		WHERE conversation_id = ? ORDER BY created_at, id`,
		[]interface{}{conversationID}, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if len(msgs) == 0 {
		return msgs, nil
	}

	index := make(map[int64]int, len(msgs))
	ids := make([]int64, len(msgs))
	for i := range msgs {
		index[msgs[i].ID] = i
		ids[i] = msgs[i].ID
	}
	placeholders, args := buildInClause(ids)
	rows, err := db.conn.QueryContext(ctx,
		`SELECT message_id, track_id FROM message_tracks WHERE message_id IN (`+placeholders+`)
		ORDER BY message_id, position`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load message tracks: %w", err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		var messageID, trackID int64
		if err := rows.Scan(&messageID, &trackID); err != nil {
			return nil, fmt.Errorf("failed to scan message track: %w", err)
		}
		m := &msgs[index[messageID]]
		m.TrackIDs = append(m.TrackIDs, trackID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListChatHistory pairs every user message with the assistant reply that
// immediately follows it in the same conversation, newest first.
func (db *DB) ListChatHistory(ctx context.Context, userID int64) ([]models.ChatHistoryEntry, error) {
	entries, err := queryAndScan(ctx, db.conn, `
		WITH ordered AS (
			SELECT m.conversation_id, m.role, m.content, m.created_at,
				LEAD(m.role) OVER w AS next_role,
				LEAD(m.content) OVER w AS next_content
			FROM messages m JOIN conversations c ON c.id = m.conversation_id
			WHERE c.user_id = ?
			WINDOW w AS (PARTITION BY m.conversation_id ORDER BY m.created_at, m.id)
		)
		SELECT conversation_id, content, next_content, created_at FROM ordered
		WHERE role = 'user' AND next_role = 'assistant'
		ORDER BY created_at DESC`,
		[]interface{}{userID},
		func(row rowScanner) (models.ChatHistoryEntry, error) {
			var e models.ChatHistoryEntry
			err := row.Scan(&e.ConversationID, &e.Message, &e.Response, &e.CreatedAt)
			return e, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}
	return entries, nil
}
