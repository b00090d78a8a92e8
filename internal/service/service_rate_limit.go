// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/store"
	"github.com/ravigangaG/EasyLearnfrom/models"
)

type rateLimitService struct {
	store  store.RateLimitStore
	window time.Duration
	max    int64

	now func() time.Time

	logger *logger.Logger
}

// NewRateLimitService builds a fixed-window limiter admitting cfg.Max
// requests per cfg.Window for every client key.
func NewRateLimitService(rateLimitStore store.RateLimitStore, cfg config.RateLimit, logger *logger.Logger) (RateLimitService, error) {
	if rateLimitStore == nil {
		return nil, ErrNoRateLimitStore
	}
	if cfg.Window <= 0 || cfg.Max <= 0 {
		return nil, fmt.Errorf("%w: window=%s max=%d", ErrInvalidRateLimitSettings, cfg.Window, cfg.Max)
	}

	logger.Debug().Dur("window", cfg.Window).Int64("max", cfg.Max).Msg("creating rate limit service")
	return &rateLimitService{
		store:  rateLimitStore,
		window: cfg.Window,
		max:    cfg.Max,
		now:    time.Now,
		logger: logger,
	}, nil
}

func (s *rateLimitService) Decide(ctx context.Context, key string) (models.RateLimitDecision, error) {
	if key == "" {
		return models.RateLimitDecision{}, ErrEmptyClientKey
	}

	w, err := s.store.Hit(ctx, key, s.window)
	if err != nil {
		return models.RateLimitDecision{}, fmt.Errorf("error recording request of %s: %w", key, err)
	}

	decision := models.RateLimitDecision{
		Allowed:   w.Hits <= s.max,
		Limit:     s.max,
		Remaining: max(s.max-w.Hits, 0),
		ResetAt:   w.ResetAt,
	}
	if !decision.Allowed {
		decision.RetryAfter = retryAfter(w.ResetAt.Sub(s.now()))
	}

	return decision, nil
}

// retryAfter rounds d up to whole seconds, never below one second.
func retryAfter(d time.Duration) time.Duration {
	if d <= time.Second {
		return time.Second
	}
	return ((d + time.Second - 1) / time.Second) * time.Second
}
