// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

/*
Package middleware provides chi-compatible HTTP middleware for request
tracking, access logging and Prometheus instrumentation.

Key Components:

  - RequestID: X-Request-ID / X-Correlation-ID propagation into the logging context
  - AccessLog: one structured zerolog line per request
  - PrometheusMetrics: request counts and latency labelled by chi route pattern

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
