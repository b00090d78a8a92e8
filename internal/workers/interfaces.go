// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations spawn their own goroutines and stop when ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() { <-ctx.Done() }()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// ExpiredWindowsDeleter is the part of a rate-limit store the janitor needs.
type ExpiredWindowsDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}
