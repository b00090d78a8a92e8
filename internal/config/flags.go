// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses command-line arguments (without the program name) into a
// partial [StructuredConfig]. Flags that are not given stay zero so that
// they do not override values from other sources.
//
// Flags:
//
//	-p port to listen on
//	-env environment name
//	-client-url additional CORS origin
//	-uploads uploads directory
//	-d database DSN
//	-driver database driver (pgx, sqlite3)
//	-c/-config json or yaml file path with configs
//	-rate-limit-store rate limit store (memory, redis, sql)
//	-rate-limit-window rate limit window (e.g. "15m")
//	-rate-limit-max requests allowed per window
func parseFlags(args []string) (*StructuredConfig, error) {
	var port int
	var environment string
	var clientURL string
	var uploadsDir string
	var databaseDSN string
	var databaseDriver string
	var configPath string
	var rateLimitStore string
	var rateLimitWindow time.Duration
	var rateLimitMax int64

	fs := flag.NewFlagSet("easylearn", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.StringVar(&environment, "env", "", "Environment name")
	fs.StringVar(&clientURL, "client-url", "", "Additional allowed CORS origin")
	fs.StringVar(&uploadsDir, "uploads", "", "Uploads directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&rateLimitStore, "rate-limit-store", "", "Rate limit store (memory, redis, sql)")
	fs.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g. 15m)")
	fs.Int64Var(&rateLimitMax, "rate-limit-max", 0, "Requests allowed per window")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Server: Server{
			Port:       port,
			ClientURL:  clientURL,
			UploadsDir: uploadsDir,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		RateLimit: RateLimit{
			Window: rateLimitWindow,
			Max:    rateLimitMax,
			Store:  rateLimitStore,
		},
		FilePath: configPath,
	}, nil
}
