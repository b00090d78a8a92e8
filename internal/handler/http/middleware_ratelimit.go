// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/app"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/utils"
	"github.com/ravigangaG/EasyLearnfrom/models"
)

// RateLimitMessage is the plain-text body of every 429 response.
const RateLimitMessage = app.MsgTooManyRequests

const apiPrefix = "/api"

// rateLimitStage counts requests under /api/ per client and rejects them
// with 429 once the client's window budget is spent.
func (h *Handler) rateLimitStage() Stage {
	return Stage{
		Name: "rate_limit",
		Run: func(w http.ResponseWriter, r *http.Request, next http.Handler) error {
			if !isAPIPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return nil
			}

			key := h.clientKey(r)
			decision, err := h.services.RateLimitService.Decide(r.Context(), key)
			if err != nil {
				return fmt.Errorf("error checking rate limit for %s: %w", key, err)
			}

			setRateLimitHeaders(w.Header(), decision)
			if decision.Allowed {
				next.ServeHTTP(w, r)
				return nil
			}

			h.rejections.Do(func() {
				logger.FromRequest(r).Warn().
					Str("client", key).
					Int64("limit", decision.Limit).
					Time("reset_at", decision.ResetAt).
					Msg("request rejected by rate limiter")
			})

			w.Header().Set(retryAfterHeader, strconv.FormatInt(int64(decision.RetryAfter/time.Second), 10))
			if _, err = utils.WriteText(w, RateLimitMessage, http.StatusTooManyRequests); err != nil {
				logger.FromRequest(r).Err(err).Msg("error writing rate limit response")
			}
			return nil
		},
	}
}

func isAPIPath(path string) bool {
	return path == apiPrefix || strings.HasPrefix(path, apiPrefix+"/")
}

// clientKey identifies the client by its connection address, or by the
// first X-Forwarded-For entry when the server runs behind a trusted proxy.
func (h *Handler) clientKey(r *http.Request) string {
	if h.trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

func setRateLimitHeaders(header http.Header, decision models.RateLimitDecision) {
	header.Set(rateLimitLimitHeader, strconv.FormatInt(decision.Limit, 10))
	header.Set(rateLimitRemainingHeader, strconv.FormatInt(decision.Remaining, 10))
	header.Set(rateLimitResetHeader, strconv.FormatInt(resetEpochSeconds(decision.ResetAt), 10))
}

// resetEpochSeconds rounds t up to whole Unix seconds.
func resetEpochSeconds(t time.Time) int64 {
	seconds := t.Unix()
	if t.Nanosecond() > 0 {
		seconds++
	}
	return seconds
}
