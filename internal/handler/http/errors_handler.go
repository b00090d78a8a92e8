// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"errors"
	"net/http"

	"github.com/ravigangaG/EasyLearnfrom/internal/app"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/utils"
	"github.com/ravigangaG/EasyLearnfrom/models"
)

// serverErrorMessage replaces the message of every 5xx response outside
// development.
const serverErrorMessage = app.MsgServerError

// handleError writes the uniform error envelope for err. When a response
// has already been started it only logs, since a second status line cannot
// be sent.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if rw, ok := w.(*responseWriter); ok && rw.Written() {
		log.Err(err).
			Int("status", rw.Status()).
			Msg("error after response was started")
		return
	}

	response := models.ErrorResponse{
		Success: false,
		Message: message,
	}
	if status >= http.StatusInternalServerError && !h.development {
		response.Message = serverErrorMessage
	}
	if h.development {
		response.Error = err.Error()

		var panicErr *PanicError
		if errors.As(err, &panicErr) {
			response.Stack = string(panicErr.Stack)
		}
	}

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("uri", r.RequestURI).Msg("request failed")

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
