// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"net/http"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is registered as both
// the router's NotFound and MethodNotAllowed handler.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This handler overrides that behaviour: such a request is
// reported exactly like an unknown path, as a 404 "Not Found - <path>" error
// in the uniform error envelope.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.NotFound(CheckHTTPMethod())
//	router.MethodNotAllowed(CheckHTTPMethod())
func CheckHTTPMethod() http.HandlerFunc {
	return Handle(func(_ http.ResponseWriter, r *http.Request) error {
		return notFoundError(r)
	})
}
