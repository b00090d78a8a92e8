// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// EasyLearn API.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Field names shared by every component that logs.
const (
	RoleField        = "role"
	EnvironmentField = "env"
	TraceIDField     = "trace_id"
)

// NewLogger constructs a *Logger for the given role label (e.g. "server",
// "healthcheck") that writes JSON to os.Stdout.
//
// Entries carry the role, the environment (omitted when empty), a timestamp
// and the calling function name in the "func" field. The minimum level is
// Info in production and Debug everywhere else.
func NewLogger(role, environment string) *Logger {
	return newLogger(os.Stdout, role, environment)
}

func newLogger(w io.Writer, role, environment string) *Logger {
	zerolog.SetGlobalLevel(LevelFor(environment))
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	c := zerolog.New(w).With().Str(RoleField, role)
	if environment != "" {
		c = c.Str(EnvironmentField, environment)
	}

	return &Logger{c.Timestamp().Caller().Logger()}
}

// LevelFor returns the minimum level emitted in the given environment.
func LevelFor(environment string) zerolog.Level {
	if environment == "production" {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child logger whose entries carry traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDField, traceID).Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
