// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

const defaultHealthCheckTimeout = 3 * time.Second

// HealthCheck configures the healthcheck binary.
type HealthCheck struct {
	// Address is the base URL of the server to probe. Defaults to
	// http://localhost:<PORT>.
	// Env: HEALTHCHECK_ADDRESS
	Address string `env:"HEALTHCHECK_ADDRESS"`

	// Port is the server's port, used only to build the default Address.
	// Env: PORT
	Port int `env:"PORT"`

	// Timeout bounds the whole probe.
	// Env: HEALTHCHECK_TIMEOUT
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT"`

	// Describe additionally checks that GET / advertises every route group.
	// Env: HEALTHCHECK_DESCRIBE
	Describe bool `env:"HEALTHCHECK_DESCRIBE"`
}

// GetHealthCheckConfig loads the healthcheck settings from the .env file,
// the environment and the -a / -t / -d flags (flags win).
func GetHealthCheckConfig(args []string) (*HealthCheck, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := &HealthCheck{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "Server base URL")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "Probe timeout")
	fs.BoolVar(&cfg.Describe, "d", cfg.Describe, "Also check the GET / descriptor")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing healthcheck flags: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Address == "" {
		cfg.Address = "http://localhost:" + strconv.Itoa(cfg.Port)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultHealthCheckTimeout
	}

	return cfg, nil
}
