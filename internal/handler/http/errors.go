// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ravigangaG/EasyLearnfrom/internal/app"
)

// Sentinel errors produced by the request pipeline. Callers can match
// against them with [errors.Is]; statusFromError maps each of them to an
// HTTP status.
var (
	// ErrMalformedJSON is returned by the body stage when an
	// application/json body is not valid JSON.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrMalformedForm is returned by the body stage when an
	// application/x-www-form-urlencoded body cannot be parsed.
	ErrMalformedForm = errors.New("malformed form body")

	// ErrInvalidContentEncoding is returned when a compressed body cannot be
	// decompressed with the codec named in Content-Encoding.
	ErrInvalidContentEncoding = errors.New("invalid compressed body")

	// ErrUnsupportedContentEncoding is returned for Content-Encoding values
	// other than gzip, deflate and identity.
	ErrUnsupportedContentEncoding = errors.New("unsupported content encoding")

	// ErrBodyTooLarge is returned when the request body exceeds the
	// configured limit.
	ErrBodyTooLarge = errors.New("request entity too large")

	// ErrRouteGroupUnavailable is returned by the placeholder mounted for a
	// route group that the deployment did not supply.
	ErrRouteGroupUnavailable = errors.New("route group is not available")

	// ErrNotFound is returned when no stage or route handles the request.
	ErrNotFound = errors.New("not found")
)

// HTTPError carries an explicit status and a client-facing message. It takes
// precedence over the sentinel table in statusFromError.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

// NewHTTPError returns an *HTTPError wrapping err.
func NewHTTPError(status int, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Message: message, Err: err}
}

func (e *HTTPError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// PanicError is a panic recovered by the pipeline.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func notFoundError(r *http.Request) error {
	return NewHTTPError(http.StatusNotFound, app.WithPath(app.MsgNotFound, r.URL.Path), ErrNotFound)
}
