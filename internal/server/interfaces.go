// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package server

import "context"

// Server defines the lifecycle contract of the API server.
type Server interface {
	// RunServer serves requests until a termination signal arrives, then
	// shuts down gracefully. Failures are logged.
	RunServer()

	// Run serves requests until ctx is cancelled or serving fails, then
	// shuts down gracefully. It returns an error when the port cannot be
	// bound, serving stops unexpectedly, or draining exceeds the shutdown
	// timeout.
	Run(ctx context.Context) error
}
