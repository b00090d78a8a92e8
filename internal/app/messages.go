// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

// Package app contains shared application-layer constants used across the
// EasyLearn API handlers and services.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of a request. Keeping them in
// one place keeps the wording consistent throughout the API.
package app

const (
	// MsgAPIDescription is the message of the GET / descriptor.
	MsgAPIDescription = "Peer-to-Peer Learning Platform API"

	// MsgServerRunning is the message of a successful health check.
	MsgServerRunning = "Server is running"

	// MsgTooManyRequests is the plain-text body of every 429 response.
	MsgTooManyRequests = "Too many requests from this IP, please try again later."

	// MsgServerError replaces the message of 5xx responses outside
	// development so internal details never reach clients.
	MsgServerError = "Server Error"

	// MsgNotFound prefixes the path of a request no route matched.
	MsgNotFound = "Not Found"

	// MsgNotImplemented prefixes the path of a request that reached a route
	// group this deployment does not provide.
	MsgNotImplemented = "Not Implemented"
)

// WithPath formats a message for path as "<msg> - <path>".
func WithPath(msg, path string) string {
	return msg + " - " + path
}
