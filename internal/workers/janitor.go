// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package workers

import (
	"context"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
)

// Janitor periodically evicts ended rate-limit windows so that the memory
// and SQL stores do not grow with every client ever seen.
type Janitor struct {
	store    ExpiredWindowsDeleter
	interval time.Duration
	logger   *logger.Logger

	done chan struct{}
}

// NewJanitor returns a janitor sweeping store every interval. A non-positive
// interval disables it.
func NewJanitor(store ExpiredWindowsDeleter, interval time.Duration, logger *logger.Logger) *Janitor {
	return &Janitor{
		store:    store,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run starts the sweep loop in a new goroutine. It returns immediately.
func (j *Janitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		close(j.done)
		return
	}

	go j.loop(ctx)
}

// Done is closed once the sweep loop has stopped.
func (j *Janitor) Done() <-chan struct{} {
	return j.done
}

func (j *Janitor) loop(ctx context.Context) {
	defer close(j.done)

	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug().Msg("rate limit janitor stopped")
			return
		case <-t.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	deleted, err := j.store.DeleteExpired(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*Janitor.sweep").Msg("error deleting expired rate limit windows")
		return
	}
	if deleted > 0 {
		j.logger.Debug().Int64("deleted", deleted).Msg("expired rate limit windows deleted")
	}
}
