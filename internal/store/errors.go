// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package store

import "errors"

// Sentinel errors returned by the store layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnsupportedDriver is returned by [NewConnection] when the configured
	// driver is neither PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrConnectingDatabase is returned when the database cannot be reached
	// at startup, after any configured retries.
	ErrConnectingDatabase = errors.New("error connecting database")

	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrRateLimitStore wraps every failure of a rate-limit window store.
	ErrRateLimitStore = errors.New("rate limit store failure")

	// ErrUnsupportedRateLimitStore is returned by [NewRateLimitStore] for an
	// unknown store kind.
	ErrUnsupportedRateLimitStore = errors.New("unsupported rate limit store")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
