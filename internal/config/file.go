// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// StructuredFileConfig is the on-disk shape of a JSON or YAML config file.
type StructuredFileConfig struct {
	App struct {
		Environment string `json:"environment" yaml:"environment"`
		Version     string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Server struct {
		Port              int      `json:"port" yaml:"port"`
		ClientURL         string   `json:"client_url" yaml:"client_url"`
		UploadsDir        string   `json:"uploads_dir" yaml:"uploads_dir"`
		BodyLimit         int64    `json:"body_limit" yaml:"body_limit"`
		ReadHeaderTimeout Duration `json:"read_header_timeout" yaml:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Storage struct {
		DB struct {
			Driver         string `json:"driver" yaml:"driver"`
			DSN            string `json:"dsn" yaml:"dsn"`
			ConnectRetries uint64 `json:"connect_retries" yaml:"connect_retries"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	RateLimit struct {
		Window          Duration `json:"window" yaml:"window"`
		Max             int64    `json:"max" yaml:"max"`
		Store           string   `json:"store" yaml:"store"`
		TrustProxy      bool     `json:"trust_proxy" yaml:"trust_proxy"`
		CleanupInterval Duration `json:"cleanup_interval" yaml:"cleanup_interval"`
		Redis           struct {
			Addr     string `json:"addr" yaml:"addr"`
			Password string `json:"password" yaml:"password"`
			DB       int    `json:"db" yaml:"db"`
			Prefix   string `json:"prefix" yaml:"prefix"`
		} `json:"redis" yaml:"redis"`
	} `json:"rate_limit" yaml:"rate_limit"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment: fileCfg.App.Environment,
			Version:     fileCfg.App.Version,
		},
		Server: Server{
			Port:              fileCfg.Server.Port,
			ClientURL:         fileCfg.Server.ClientURL,
			UploadsDir:        fileCfg.Server.UploadsDir,
			BodyLimit:         fileCfg.Server.BodyLimit,
			ReadHeaderTimeout: time.Duration(fileCfg.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(fileCfg.Server.ShutdownTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver:         fileCfg.Storage.DB.Driver,
				DSN:            fileCfg.Storage.DB.DSN,
				ConnectRetries: fileCfg.Storage.DB.ConnectRetries,
			},
		},
		RateLimit: RateLimit{
			Window:          time.Duration(fileCfg.RateLimit.Window),
			Max:             fileCfg.RateLimit.Max,
			Store:           fileCfg.RateLimit.Store,
			TrustProxy:      fileCfg.RateLimit.TrustProxy,
			CleanupInterval: time.Duration(fileCfg.RateLimit.CleanupInterval),
			Redis: Redis{
				Addr:     fileCfg.RateLimit.Redis.Addr,
				Password: fileCfg.RateLimit.Redis.Password,
				DB:       fileCfg.RateLimit.Redis.DB,
				Prefix:   fileCfg.RateLimit.Redis.Prefix,
			},
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "15m" or from a number of nanoseconds, in both JSON and YAML files.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

// UnmarshalYAML implements the goccy/go-yaml BytesUnmarshaler interface.
func (d *Duration) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case int64:
		*d = Duration(time.Duration(value))
	case uint64:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
