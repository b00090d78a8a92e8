// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

// Package adapter provides a client for the EasyLearn API's built-in
// informational routes.
//
// The primary abstraction is [APIAdapter], used by the healthcheck binary to
// probe a running server. The package ships an HTTP/REST implementation
// ([NewHTTPAPIAdapter]) built on go-resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrTooManyRequests]
// for 429, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/ravigangaG/EasyLearnfrom/models"
)

// APIAdapter talks to a running EasyLearn API over the network.
type APIAdapter interface {
	// Health calls GET /api/health. It returns [ErrUnhealthy] (wrapped) when
	// the server answers 2xx but reports success=false.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Describe calls GET / and returns the API descriptor. It fails with
	// ErrIncompleteDescriptor when a route group is not advertised.
	Describe(ctx context.Context) (models.RootResponse, error)
}
