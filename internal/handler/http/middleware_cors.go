// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Headers set by the rate-limit stage.
const (
	rateLimitLimitHeader     = "X-RateLimit-Limit"
	rateLimitRemainingHeader = "X-RateLimit-Remaining"
	rateLimitResetHeader     = "X-RateLimit-Reset"
	retryAfterHeader         = "Retry-After"
)

// corsStage applies the credentialed CORS policy for the configured
// allow-list. Origins outside the list get no Access-Control-Allow-Origin
// header, and their requests still continue down the pipeline. Preflight
// requests are answered with 204 and go no further.
func (h *Handler) corsStage() Stage {
	policy := cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			traceIDHeader,
			rateLimitLimitHeader,
			rateLimitRemainingHeader,
			rateLimitResetHeader,
			retryAfterHeader,
		},
		AllowCredentials:   true,
		OptionsPassthrough: true,
	})

	return Stage{
		Name: "cors",
		Run: func(w http.ResponseWriter, r *http.Request, next http.Handler) error {
			policy.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if isPreflight(r) {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
			})).ServeHTTP(w, r)
			return nil
		},
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
