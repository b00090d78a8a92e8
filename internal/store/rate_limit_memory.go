// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package store

import (
	"context"
	"sync"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/models"
)

// MemoryRateLimitStore keeps windows in a mutex-guarded map. Counters are
// local to the process and lost on restart.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	windows map[string]models.RateLimitWindow
	now     func() time.Time
}

// NewMemoryRateLimitStore constructs an empty in-process store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		windows: make(map[string]models.RateLimitWindow),
		now:     time.Now,
	}
}

// Hit implements [RateLimitStore].
func (s *MemoryRateLimitStore) Hit(_ context.Context, key string, window time.Duration) (models.RateLimitWindow, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.ResetAt) {
		w = models.RateLimitWindow{ResetAt: now.Add(window)}
	}
	w.Hits++
	s.windows[key] = w

	return w, nil
}

// DeleteExpired implements [RateLimitStore].
func (s *MemoryRateLimitStore) DeleteExpired(_ context.Context) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for key, w := range s.windows {
		if !now.Before(w.ResetAt) {
			delete(s.windows, key)
			deleted++
		}
	}

	return deleted, nil
}

// Close implements [RateLimitStore].
func (s *MemoryRateLimitStore) Close() error {
	return nil
}
