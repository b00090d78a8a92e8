// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"net/http"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
)

// loggingStage writes one access log line per request once every later
// stage, the error handler included, has finished.
func (h *Handler) loggingStage() Stage {
	return Stage{
		Name: "logging",
		Run: func(w http.ResponseWriter, r *http.Request, next http.Handler) error {
			log := logger.FromRequest(r)

			start := time.Now()

			uri := r.RequestURI
			method := r.Method

			lw := wrapResponseWriter(w)

			next.ServeHTTP(lw, r)

			duration := time.Since(start)

			log.Info().
				Str("uri", uri).
				Str("method", method).
				Int("status", lw.Status()).
				Dur("duration", duration).
				Int("size", lw.size).
				Send()
			return nil
		},
	}
}
