// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package config

import "time"

const (
	defaultPort              = 5000
	defaultVersion           = "1.0.0"
	defaultUploadsDir        = "./uploads"
	defaultBodyLimit         = 100 << 10
	defaultReadHeaderTimeout = 10 * time.Second
	defaultShutdownTimeout   = 10 * time.Second

	defaultRateLimitWindow  = 15 * time.Minute
	defaultRateLimitMax     = 100
	defaultRateLimitCleanup = time.Minute
)

// defaults returns the values used for every field that no configuration
// source has set. Environment has no default on purpose.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: defaultVersion,
		},
		Server: Server{
			Port:              defaultPort,
			UploadsDir:        defaultUploadsDir,
			BodyLimit:         defaultBodyLimit,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			ShutdownTimeout:   defaultShutdownTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		RateLimit: RateLimit{
			Window:          defaultRateLimitWindow,
			Max:             defaultRateLimitMax,
			Store:           RateLimitStoreMemory,
			CleanupInterval: defaultRateLimitCleanup,
		},
	}
}
