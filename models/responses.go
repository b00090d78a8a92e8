// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package models

import "time"

// HealthTimestampLayout is the ISO 8601 UTC layout, with millisecond
// precision, used for HealthResponse.Timestamp.
const HealthTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// RootResponse is the body of GET /. It describes the API and lists the
// mount point of every route group.
type RootResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Endpoints Endpoints `json:"endpoints"`
}

// Endpoints maps each route group to its path prefix.
type Endpoints struct {
	Auth        string `json:"auth"`
	Users       string `json:"users"`
	Resources   string `json:"resources"`
	Questions   string `json:"questions"`
	Discussions string `json:"discussions"`
	Health      string `json:"health"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse builds a successful HealthResponse for the moment at,
// formatted in UTC with millisecond precision.
func NewHealthResponse(message string, at time.Time) HealthResponse {
	return HealthResponse{
		Success:   true,
		Message:   message,
		Timestamp: at.UTC().Format(HealthTimestampLayout),
	}
}

// ErrorResponse is the uniform failure envelope written by the error handler.
//
// Error and Stack are only populated in the development environment.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Stack   string `json:"stack,omitempty"`
}
