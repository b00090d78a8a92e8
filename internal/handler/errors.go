// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package handler

import "errors"

var (
	// errNoServices is returned by NewHandlers when the service layer was
	// not built. This is a wiring bug and fails the application at startup.
	errNoServices = errors.New("handlers require services")

	errNoConfig = errors.New("handlers require configuration")
)
