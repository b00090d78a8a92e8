// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package service

import (
	"context"

	"github.com/ravigangaG/EasyLearnfrom/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService answers the built-in informational routes.
type AppInfoService interface {
	// Describe returns the GET / descriptor listing every route group.
	Describe(ctx context.Context) models.RootResponse

	// Health returns the GET /api/health body. Timestamps strictly increase
	// across successive calls within one process.
	Health(ctx context.Context) models.HealthResponse
}

// RateLimitService admits or rejects requests per client key.
type RateLimitService interface {
	// Decide records one request for key and returns the verdict. A store
	// failure is returned as an error and no decision is made.
	Decide(ctx context.Context, key string) (models.RateLimitDecision, error)
}
