// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package server

import "errors"

var (
	errNoHandler    = errors.New("http handler is not created")
	errListening    = errors.New("error listening")
	errServing      = errors.New("error serving http")
	errShuttingDown = errors.New("error shutting down http server")
)
