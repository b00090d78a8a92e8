// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"os"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/service"
	"github.com/ravigangaG/EasyLearnfrom/internal/utils"
	"golang.org/x/time/rate"
)

const defaultBodyLimit = 100 << 10

type Handler struct {
	services *service.Services
	groups   RouteGroups

	allowedOrigins []string
	uploads        *os.Root
	bodyLimit      int64
	trustProxy     bool
	development    bool

	traceIDs *utils.UUIDGenerator

	// rejections samples the log line written for rate-limited requests.
	rejections *rate.Sometimes

	logger *logger.Logger
}

func NewHandler(services *service.Services, groups RouteGroups, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	bodyLimit := cfg.Server.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = defaultBodyLimit
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		groups:         groups.withPlaceholders(),
		allowedOrigins: cfg.AllowedOrigins(),
		uploads:        openUploadsRoot(cfg.Server.UploadsDir, logger),
		bodyLimit:      bodyLimit,
		trustProxy:     cfg.RateLimit.TrustProxy,
		development:    cfg.App.IsDevelopment(),
		traceIDs:       utils.NewUUIDGenerator(),
		rejections:     &rate.Sometimes{First: 10, Interval: 10 * time.Second},
		logger:         logger,
	}
}

// Close releases the uploads directory handle. Requests served after Close
// no longer find uploaded files.
func (h *Handler) Close() error {
	if h.uploads == nil {
		return nil
	}
	return h.uploads.Close()
}
