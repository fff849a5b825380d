// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

/*
Package auth provides account authentication for the Melodia API.

Key Components:

  - JWTManager: HS256 token generation and validation
  - HashPassword / CheckPassword: bcrypt password storage
  - Middleware: Authenticate and SecurityHeaders HTTP middleware

Tokens are read from the Authorization header ("Bearer <token>") or, when
the header is absent, from the "token" cookie. Authenticated handlers read
the caller with ClaimsFromContext.

Usage Example:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    log.Fatal(err)
	}
	mw := auth.NewMiddleware(jwtManager)
	r.With(mw.Authenticate).Post("/api/v1/chat", h.Chat)
*/
package auth
