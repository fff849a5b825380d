// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/melodia/internal/models"
)

const healthPingTimeout = 2 * time.Second

// Health reports database connectivity and the model breaker state. A down
// database answers 503; an open breaker only marks the service degraded.
//
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	status := models.HealthStatus{
		Status:        "healthy",
		Version:       h.version,
		DatabaseOK:    h.db.Ping(ctx) == nil,
		LLMBreaker:    h.chat.LLMState(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	code := http.StatusOK
	switch {
	case !status.DatabaseOK:
		status.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	case status.LLMBreaker == "open":
		status.Status = "degraded"
	}
	respondData(w, code, status, start)
}
