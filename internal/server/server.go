// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/handler"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
)

type server struct {
	httpServer  *httpServer
	environment string
	port        int

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg *config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandler
	}

	return &server{
		httpServer:  newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger),
		environment: cfg.App.Environment,
		port:        cfg.Server.Port,
		logger:      logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	s.logger.Info().Msgf("Server running in %s mode on port %d", s.environment, s.port)

	return s.httpServer.serve(ctx, ln)
}
