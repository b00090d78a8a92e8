// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/handler"
	"github.com/ravigangaG/EasyLearnfrom/internal/handler/http"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/server"
	"github.com/ravigangaG/EasyLearnfrom/internal/service"
	"github.com/ravigangaG/EasyLearnfrom/internal/store"
	"github.com/ravigangaG/EasyLearnfrom/internal/workers"
	"github.com/ravigangaG/EasyLearnfrom/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("easylearn-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("easylearn-server", cfg.App.Environment)
	if cfg.App.Environment == "" {
		log.Warn().Msg("NODE_ENV is not set, running as non-development")
	}
	log.Debug().
		Str("build_version", buildInfo.Version).
		Str("build_commit", buildInfo.Commit).
		Int("port", cfg.Server.Port).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("rate_limit_store", cfg.RateLimit.Store).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnection(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	rateLimitStore, err := store.NewRateLimitStore(ctx, cfg.RateLimit, db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limit store")
	}
	defer func() {
		if err := rateLimitStore.Close(); err != nil {
			log.Err(err).Msg("error closing rate limit store")
		}
	}()

	services, err := service.NewServices(rateLimitStore, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var janitor workers.Worker
	if cfg.RateLimit.Store != config.RateLimitStoreRedis {
		janitor = workers.NewJanitor(rateLimitStore, cfg.RateLimit.CleanupInterval, log)
	}
	workers.NewWorkers(janitor).Run(ctx)

	handlers, err := handler.NewHandlers(services, http.RouteGroups{}, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}
	defer func() {
		if err := handlers.Close(); err != nil {
			log.Err(err).Msg("error closing handlers")
		}
	}()

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.BuildInfo {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range info.Lines() {
		fmt.Println(line)
	}

	return info
}
