// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const rateLimitWindowsTable = "rate_limit_windows"

// psql builds statements with $n placeholders, understood by both pgx and
// sqlite3.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildHitWindowQuery builds the single-statement upsert that records one hit
// for key. A window whose reset time is not after nowMs is restarted with one
// hit ending at resetAtMs; otherwise its counter is incremented. The statement
// returns the resulting hits and reset_at_ms.
func buildHitWindowQuery(key string, nowMs, resetAtMs int64) (string, []any, error) {
	query, args, err := psql.
		Insert(rateLimitWindowsTable).
		Columns("client_key", "hits", "reset_at_ms").
		Values(key, 1, resetAtMs).
		Suffix(`ON CONFLICT (client_key) DO UPDATE SET
			hits = CASE WHEN rate_limit_windows.reset_at_ms <= ? THEN 1 ELSE rate_limit_windows.hits + 1 END,
			reset_at_ms = CASE WHEN rate_limit_windows.reset_at_ms <= ? THEN excluded.reset_at_ms ELSE rate_limit_windows.reset_at_ms END
			RETURNING hits, reset_at_ms`, nowMs, nowMs).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteExpiredWindowsQuery builds the statement evicting every window
// that ended at or before nowMs.
func buildDeleteExpiredWindowsQuery(nowMs int64) (string, []any, error) {
	query, args, err := psql.
		Delete(rateLimitWindowsTable).
		Where(sq.LtOrEq{"reset_at_ms": nowMs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
