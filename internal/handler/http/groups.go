// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ravigangaG/EasyLearnfrom/internal/app"
)

// RouteGroup is a collection of route handlers for one resource area. The
// router mounts each group under its path prefix and calls Register with a
// sub-router whose paths are relative to that prefix.
//
// Handlers should be written as [HandlerFunc] and registered through
// [Handle] so that their errors reach the error handler.
type RouteGroup interface {
	Register(r chi.Router)
}

// RouteGroupFunc adapts a plain function to [RouteGroup].
type RouteGroupFunc func(r chi.Router)

func (f RouteGroupFunc) Register(r chi.Router) {
	f(r)
}

// RouteGroups holds the externally supplied route groups. A nil field is
// mounted as a placeholder that answers 501 Not Implemented.
type RouteGroups struct {
	Auth        RouteGroup
	Users       RouteGroup
	Resources   RouteGroup
	Questions   RouteGroup
	Discussions RouteGroup
}

func (g RouteGroups) withPlaceholders() RouteGroups {
	for _, group := range []*RouteGroup{&g.Auth, &g.Users, &g.Resources, &g.Questions, &g.Discussions} {
		if *group == nil {
			*group = unavailableGroup{}
		}
	}
	return g
}

// unavailableGroup stands in for a route group the deployment did not supply.
type unavailableGroup struct{}

func (unavailableGroup) Register(r chi.Router) {
	r.Handle("/*", Handle(func(_ http.ResponseWriter, r *http.Request) error {
		return NewHTTPError(http.StatusNotImplemented, app.WithPath(app.MsgNotImplemented, r.URL.Path), ErrRouteGroupUnavailable)
	}))
}
