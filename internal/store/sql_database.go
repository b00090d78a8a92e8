// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/migrations"
	"github.com/sethvargo/go-retry"
)

// connectBackoffBase is the first delay between startup connection attempts;
// each further attempt doubles it.
var connectBackoffBase = 500 * time.Millisecond

// DB is the relational database handle shared by the rate-limit SQL store,
// migrations and the route groups. It is created once in main and passed by
// reference.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnection opens the database described by cfg and verifies it with a
// ping.
//
// A failed ping aborts startup. When cfg.ConnectRetries is positive the ping
// is repeated with exponential backoff, but only while the driver's
// [ErrorClassificator] reports the failure as [Retryable].
func NewConnection(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = openPostgres(cfg, log)
	case config.DriverSQLite:
		db, err = openSQLite(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.pingWithRetry(ctx, cfg.ConnectRetries); err != nil {
		log.Err(err).Str("func", "NewConnection").Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		_ = db.DB.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().Str("func", "NewConnection").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return db, nil
}

func (db *DB) pingWithRetry(ctx context.Context, retries uint64) error {
	backoff := retry.WithMaxRetries(retries, retry.NewExponential(connectBackoffBase))
	attempt := 0

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.Ping(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database is not reachable yet, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// Ping verifies the database is still reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
