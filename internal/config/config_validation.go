// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup. It runs after defaults are applied, so only
// explicitly provided values can fail here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}
	if cfg.Server.BodyLimit <= 0 {
		return fmt.Errorf("%w: body limit must be positive", ErrInvalidServerConfigs)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: DATABASE_URI is required", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.RateLimit.Window <= 0 || cfg.RateLimit.Max <= 0 {
		return fmt.Errorf("%w: window and max must be positive", ErrInvalidRateLimitConfigs)
	}
	switch cfg.RateLimit.Store {
	case RateLimitStoreMemory, RateLimitStoreSQL:
	case RateLimitStoreRedis:
		if cfg.RateLimit.Redis.Addr == "" {
			return fmt.Errorf("%w: RATE_LIMIT_REDIS_ADDR is required for the redis store", ErrInvalidRateLimitConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidRateLimitConfigs, cfg.RateLimit.Store)
	}

	return nil
}
