// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"net/http"

	"github.com/ravigangaG/EasyLearnfrom/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// maxTraceIDLength bounds client-supplied trace ids.
const maxTraceIDLength = 128

// traceIDStage takes the trace id from the X-Trace-ID request header or
// generates one, echoes it in the response and stores it in the request
// context together with a child logger carrying a trace_id field.
func (h *Handler) traceIDStage() Stage {
	return Stage{
		Name: "trace_id",
		Run: func(w http.ResponseWriter, r *http.Request, next http.Handler) error {
			traceID := r.Header.Get(traceIDHeader)
			if traceID == "" || len(traceID) > maxTraceIDLength {
				traceID = h.traceIDs.Generate()
			}

			l := h.logger.WithTraceID(traceID)
			r = r.WithContext(l.WithContext(utils.WithTraceID(r.Context(), traceID)))

			w.Header().Set(traceIDHeader, traceID)
			next.ServeHTTP(w, r)
			return nil
		},
	}
}
