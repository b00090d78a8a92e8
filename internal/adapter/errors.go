// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrNotImplemented      = errors.New("not implemented")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnhealthy is returned when the health route answers without success.
	ErrUnhealthy = errors.New("server reported unhealthy")

	// ErrIncompleteDescriptor is returned when GET / omits a route group.
	ErrIncompleteDescriptor = errors.New("api descriptor is incomplete")
)
