// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package store

import (
	"context"
	"fmt"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
)

// NewRateLimitStore builds the window store selected by cfg.Store. db is
// only used by the "sql" kind and must already be migrated.
func NewRateLimitStore(ctx context.Context, cfg config.RateLimit, db *DB, log *logger.Logger) (RateLimitStore, error) {
	switch cfg.Store {
	case config.RateLimitStoreMemory:
		log.Debug().Msg("creating memory rate limit store")
		return NewMemoryRateLimitStore(), nil
	case config.RateLimitStoreRedis:
		log.Debug().Str("addr", cfg.Redis.Addr).Str("prefix", cfg.Redis.Prefix).Msg("creating redis rate limit store")
		rdb, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		var opts []RedisOption
		if cfg.Redis.Prefix != "" {
			opts = append(opts, WithRedisKeyPrefix(cfg.Redis.Prefix))
		}
		return NewRedisRateLimitStore(rdb, opts...), nil
	case config.RateLimitStoreSQL:
		if db == nil {
			return nil, fmt.Errorf("%w: sql store needs a database", ErrUnsupportedRateLimitStore)
		}
		return NewSQLRateLimitStore(db, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRateLimitStore, cfg.Store)
	}
}
