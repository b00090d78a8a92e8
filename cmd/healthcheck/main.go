// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

// Command healthcheck probes GET /api/health of a running server and exits
// with status 0 when it reports success, 1 otherwise. With -d it also
// requires GET / to advertise every route group. It is meant for container
// HEALTHCHECK instructions.
package main

import (
	"context"
	"os"

	"github.com/ravigangaG/EasyLearnfrom/internal/adapter"
	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.NewLogger("easylearn-healthcheck", os.Getenv("NODE_ENV"))

	cfg, err := config.GetHealthCheckConfig(args)
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return 1
	}

	api, err := adapter.NewHTTPAPIAdapter(cfg.Address, cfg.Timeout, log)
	if err != nil {
		log.Err(err).Msg("error creating api adapter")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	health, err := api.Health(ctx)
	if err != nil {
		log.Err(err).Str("address", cfg.Address).Msg("server is unhealthy")
		return 1
	}

	log.Info().Str("address", cfg.Address).Str("timestamp", health.Timestamp).Msg(health.Message)

	if cfg.Describe {
		descriptor, err := api.Describe(ctx)
		if err != nil {
			log.Err(err).Str("address", cfg.Address).Msg("api descriptor check failed")
			return 1
		}
		log.Info().Str("address", cfg.Address).Str("version", descriptor.Version).Msg(descriptor.Message)
	}
	return 0
}
