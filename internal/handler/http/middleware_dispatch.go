// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import "net/http"

// dispatchStage hands the request to the router. It is the last stage, so
// next is never called; an error reported by a route handler is returned
// to the error handler.
func (h *Handler) dispatchStage(router http.Handler) Stage {
	return Stage{
		Name: "dispatch",
		Run: func(w http.ResponseWriter, r *http.Request, _ http.Handler) error {
			slot := &errorSlot{}
			router.ServeHTTP(w, r.WithContext(withErrorSlot(r.Context(), slot)))
			return slot.Err()
		},
	}
}
