// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
