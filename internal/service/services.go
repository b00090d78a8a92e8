// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package service

import (
	"fmt"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/store"
)

type Services struct {
	AppInfoService   AppInfoService
	RateLimitService RateLimitService
}

func NewServices(rateLimitStore store.RateLimitStore, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	rateLimitService, err := NewRateLimitService(rateLimitStore, cfg.RateLimit, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating rate limit service: %w", err)
	}

	return &Services{
		AppInfoService:   appInfoService,
		RateLimitService: rateLimitService,
	}, nil
}
