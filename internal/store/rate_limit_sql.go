// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/models"
)

// SQLRateLimitStore keeps windows in the rate_limit_windows table so that
// counters survive restarts and are shared by every instance using the same
// database. Each hit is a single upsert statement.
type SQLRateLimitStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLRateLimitStore constructs a store over an open and migrated database.
func NewSQLRateLimitStore(db *DB, log *logger.Logger) *SQLRateLimitStore {
	log.Debug().Msg("creating sql rate limit store")
	return &SQLRateLimitStore{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

// Hit implements [RateLimitStore].
func (s *SQLRateLimitStore) Hit(ctx context.Context, key string, window time.Duration) (models.RateLimitWindow, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	query, args, err := buildHitWindowQuery(key, now.UnixMilli(), now.Add(window).UnixMilli())
	if err != nil {
		return models.RateLimitWindow{}, fmt.Errorf("%w: %w", ErrRateLimitStore, err)
	}

	var hits, resetAtMs int64
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&hits, &resetAtMs); err != nil {
		log.Err(err).Str("func", "*SQLRateLimitStore.Hit").Msg("error recording rate limit hit")
		return models.RateLimitWindow{}, fmt.Errorf("%w: %w: %w", ErrRateLimitStore, ErrExecutingQuery, err)
	}

	return models.RateLimitWindow{
		Hits:    hits,
		ResetAt: time.UnixMilli(resetAtMs),
	}, nil
}

// DeleteExpired implements [RateLimitStore].
func (s *SQLRateLimitStore) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := buildDeleteExpiredWindowsQuery(s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRateLimitStore, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "*SQLRateLimitStore.DeleteExpired").Msg("error deleting expired windows")
		return 0, fmt.Errorf("%w: %w: %w", ErrRateLimitStore, ErrExecutingQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRateLimitStore, err)
	}

	return deleted, nil
}

// Close implements [RateLimitStore]. The database handle is owned by the
// caller and stays open.
func (s *SQLRateLimitStore) Close() error {
	return nil
}
