// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package store

import (
	"context"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/rate_limit_store_mock.go -package=mock

// RateLimitStore keeps one fixed counting window per client key.
type RateLimitStore interface {
	// Hit records one request for key and returns the resulting window.
	// A new window of the given length is opened when the key has none or
	// when its previous window has ended. Concurrent hits for the same key
	// are never lost.
	Hit(ctx context.Context, key string, window time.Duration) (models.RateLimitWindow, error)

	// DeleteExpired evicts windows that have ended and returns how many were
	// removed. Stores whose entries expire on their own return zero.
	DeleteExpired(ctx context.Context) (int64, error)

	// Close releases resources held by the store.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may
// succeed if attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
