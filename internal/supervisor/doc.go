// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

/*
Package supervisor runs Melodia's long-lived services under a suture v4 tree.

# Overview

Services are grouped into two layers so a failing background job never takes
the API down with it:

	RootSupervisor ("melodia")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── SubscriptionSweeper
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which writes to the zerolog logger via the slog
adapter in the logging package.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.Timeout,
	})
	if err != nil {
	    return err
	}
	tree.AddMaintenanceService(services.NewSubscriptionSweeper(db, cfg.Subscription.SweepInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

Canceling ctx stops every service; the HTTP server drains connections within
its shutdown timeout.
*/
package supervisor
