// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidRateLimitSettings = errors.New("rate limit window and max must be positive")
	ErrNoRateLimitStore         = errors.New("no rate limit store given")
	ErrEmptyClientKey           = errors.New("empty rate limit client key")
)
