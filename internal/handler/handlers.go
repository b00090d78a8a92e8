// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package handler

import (
	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/handler/http"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. Route groups left nil in
// groups are mounted as placeholders answering 501.
func NewHandlers(services *service.Services, groups http.RouteGroups, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg == nil {
		return nil, errNoConfig
	}

	return &Handlers{
		HTTP: http.NewHandler(services, groups, cfg, logger),
	}, nil
}

// Close releases resources held by the transport handlers.
func (h *Handlers) Close() error {
	if h == nil || h.HTTP == nil {
		return nil
	}
	return h.HTTP.Close()
}
