// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/ravigangaG/EasyLearnfrom/internal/service"
	"github.com/ravigangaG/EasyLearnfrom/internal/store"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// gets the status of the first one listed. Specific causes come before the
// generic store errors that wrap them.
var errorStatuses = []struct {
	err    error
	status int
}{
	{context.DeadlineExceeded, http.StatusServiceUnavailable},

	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrMalformedJSON, http.StatusBadRequest},
	{ErrMalformedForm, http.StatusBadRequest},
	{ErrInvalidContentEncoding, http.StatusBadRequest},
	{ErrUnsupportedContentEncoding, http.StatusUnsupportedMediaType},
	{ErrRouteGroupUnavailable, http.StatusNotImplemented},
	{ErrNotFound, http.StatusNotFound},

	{service.ErrEmptyClientKey, http.StatusBadRequest},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrRateLimitStore, http.StatusInternalServerError},
}

// statusFromError returns the HTTP status for err together with the message
// that may be shown to the client.
func statusFromError(err error) (int, string) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Message
	}

	if store.IsDuplicateKey(err) {
		return http.StatusConflict, store.ErrDuplicateKey.Error()
	}

	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
