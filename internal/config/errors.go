// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a merged
// configuration cannot be used to start the server.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 1..65535 or a non-positive body limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, an empty DSN or an unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRateLimitConfigs indicates invalid rate limiting settings
	// (for example, a zero window or an unknown store kind).
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrUnsupportedConfigFile is returned for config files whose extension
	// is neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
