// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/models"
	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "easylearn:ratelimit"

// hitScript increments the counter and starts its expiry on the first hit of
// a window, atomically. It returns the counter and its remaining TTL in ms.
var hitScript = redis.NewScript(`
local hits = redis.call("INCR", KEYS[1])
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {hits, ttl}
`)

// RedisRateLimitStore keeps windows in Redis so that several API instances
// share one budget per client. Windows expire through key TTLs.
type RedisRateLimitStore struct {
	rdb    *redis.Client
	prefix string
	now    func() time.Time
}

// RedisOption configures a [RedisRateLimitStore].
type RedisOption func(*RedisRateLimitStore)

// WithRedisKeyPrefix sets the prefix of every window key.
func WithRedisKeyPrefix(prefix string) RedisOption {
	return func(s *RedisRateLimitStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

// NewRedisRateLimitStore wraps an existing client.
func NewRedisRateLimitStore(rdb *redis.Client, opts ...RedisOption) *RedisRateLimitStore {
	s := &RedisRateLimitStore{
		rdb:    rdb,
		prefix: defaultRedisKeyPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRedisClient builds a client from the rate-limit configuration and
// verifies it with a ping.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: redis ping: %w", ErrRateLimitStore, err)
	}

	return rdb, nil
}

// Hit implements [RateLimitStore].
func (s *RedisRateLimitStore) Hit(ctx context.Context, key string, window time.Duration) (models.RateLimitWindow, error) {
	now := s.now()

	res, err := hitScript.Run(ctx, s.rdb, []string{s.key(key)}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return models.RateLimitWindow{}, fmt.Errorf("%w: %w", ErrRateLimitStore, err)
	}
	if len(res) != 2 {
		return models.RateLimitWindow{}, fmt.Errorf("%w: unexpected script reply %v", ErrRateLimitStore, res)
	}

	return models.RateLimitWindow{
		Hits:    res[0],
		ResetAt: now.Add(time.Duration(res[1]) * time.Millisecond),
	}, nil
}

// DeleteExpired implements [RateLimitStore]. Redis evicts expired windows
// itself.
func (s *RedisRateLimitStore) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

// Close implements [RateLimitStore].
func (s *RedisRateLimitStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisRateLimitStore) key(clientKey string) string {
	return s.prefix + ":" + clientKey
}
