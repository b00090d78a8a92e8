// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"sync"
)

// StageFunc processes one request. It either writes a response itself, calls
// next to continue the pipeline, or returns an error for the error handler.
// A stage must not write a response and return an error at the same time.
type StageFunc func(w http.ResponseWriter, r *http.Request, next http.Handler) error

// Stage is one named step of the request pipeline.
type Stage struct {
	Name string
	Run  StageFunc
}

// ErrorHandlerFunc turns an error surfaced by a stage into a response.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// Pipeline runs its stages strictly in registration order. The first stage
// that writes a response without calling next ends the request. Errors and
// panics raised by a stage, or by anything it calls through next, reach the
// error handler exactly once.
type Pipeline struct {
	stages  []Stage
	handler http.Handler
}

// NewPipeline composes stages into a single [http.Handler]. When every stage
// calls next the request ends in a 404 passed to onError.
func NewPipeline(onError ErrorHandlerFunc, stages ...Stage) *Pipeline {
	var next http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		onError(w, r, notFoundError(r))
	})

	for i := len(stages) - 1; i >= 0; i-- {
		next = stages[i].bind(next, onError)
	}

	return &Pipeline{
		stages:  stages,
		handler: next,
	}
}

// ServeHTTP implements [http.Handler].
func (p *Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.handler.ServeHTTP(wrapResponseWriter(w), r)
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name)
	}
	return names
}

func (s Stage) bind(next http.Handler, onError ErrorHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.run(w, r, next); err != nil {
			onError(w, r, err)
		}
	})
}

func (s Stage) run(w http.ResponseWriter, r *http.Request, next http.Handler) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		// net/http aborts the connection on ErrAbortHandler
		if e, ok := v.(error); ok && errors.Is(e, http.ErrAbortHandler) {
			panic(v)
		}
		err = &PanicError{Value: v, Stack: debug.Stack()}
	}()

	return s.Run(w, r, next)
}

// errorSlot collects the first error reported by a route handler. It is safe
// for use by goroutines the handler waits for.
type errorSlot struct {
	mu  sync.Mutex
	err error
}

func (s *errorSlot) set(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *errorSlot) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type errorSlotKey struct{}

func withErrorSlot(ctx context.Context, slot *errorSlot) context.Context {
	return context.WithValue(ctx, errorSlotKey{}, slot)
}

// HandlerFunc is a route handler that returns its failure instead of writing
// it. Route groups register them through [Handle].
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to an [http.HandlerFunc]. A returned error is passed on to
// the pipeline's error handler.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			ReportError(w, r, err)
		}
	}
}

// ReportError hands err to the pipeline's error handler. Goroutines started
// by a handler may call it as long as the handler waits for them to finish;
// reports made after the handler has returned are ignored. Outside a pipeline
// the error is written as plain text.
func ReportError(w http.ResponseWriter, r *http.Request, err error) {
	if slot, ok := r.Context().Value(errorSlotKey{}).(*errorSlot); ok {
		slot.set(err)
		return
	}

	status, message := statusFromError(err)
	http.Error(w, message, status)
}
