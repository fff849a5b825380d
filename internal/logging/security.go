// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// AccountEvent is a security-relevant account action (login, registration,
// password change). Identifying fields are masked before they are written.
type AccountEvent struct {
	Event     string
	UserID    int64
	Username  string
	Email     string
	IPAddress string
	Success   bool
	Reason    string
}

// SecurityLogger writes AccountEvents under component=auth.
type SecurityLogger struct {
	logger zerolog.Logger
}

func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{logger: WithComponent("auth")}
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{logger: logger.With().Str("component", "auth").Logger()}
}

// LogEvent writes the event at info level on success and warn level on failure.
func (l *SecurityLogger) LogEvent(ev *AccountEvent) {
	event := l.logger.Info()
	if !ev.Success {
		event = l.logger.Warn()
	}

	event = event.Str("event", ev.Event).Bool("success", ev.Success)
	if ev.UserID != 0 {
		event = event.Int64("user_id", ev.UserID)
	}
	if ev.Username != "" {
		event = event.Str("username", SanitizeUsername(ev.Username))
	}
	if ev.Email != "" {
		event = event.Str("email", SanitizeEmail(ev.Email))
	}
	if ev.IPAddress != "" {
		event = event.Str("ip", ev.IPAddress)
	}
	if ev.Reason != "" {
		event = event.Str("reason", ev.Reason)
	}
	event.Msg("account event")
}

// SanitizeToken keeps the first and last 4 characters.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeUsername keeps the first 2 characters: "johndoe" -> "jo***".
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}

// SanitizeEmail masks the local part: "john.doe@example.com" -> "jo***@example.com".
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	local, domain := email[:at], email[at:]
	if len(local) <= 2 {
		return "***" + domain
	}
	return local[:2] + "***" + domain
}
