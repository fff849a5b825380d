// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

/*
Package services adapts Melodia components to suture's Serve(ctx) lifecycle.

HTTPServerService wraps *http.Server: ListenAndServe runs in a goroutine and
context cancellation triggers Shutdown with a bounded drain timeout.

SubscriptionSweeper flips ACTIVE subscriptions whose expiry date has passed to
EXPIRED on a fixed interval and records each sweep in Prometheus.

Every service implements fmt.Stringer so supervisor events name it.
*/
package services
