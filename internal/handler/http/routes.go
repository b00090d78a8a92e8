// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/ravigangaG/EasyLearnfrom/internal/service"
)

// Init assembles the request pipeline. Stage order is fixed.
func (h *Handler) Init() *Pipeline {
	return NewPipeline(h.handleError,
		h.traceIDStage(),
		h.loggingStage(),
		h.bodyStage(),
		h.corsStage(),
		h.rateLimitStage(),
		h.staticStage(),
		h.dispatchStage(h.router()),
	)
}

func (h *Handler) router() *chi.Mux {
	router := chi.NewRouter()

	// must be set before mounting: sub-routers copy them at mount time
	router.NotFound(CheckHTTPMethod())
	router.MethodNotAllowed(CheckHTTPMethod())

	router.Get("/", Handle(h.describe))
	router.Get(service.HealthPath, Handle(h.health))

	router.Route(service.AuthPath, h.groups.Auth.Register)
	router.Route(service.UsersPath, h.groups.Users.Register)
	router.Route(service.ResourcesPath, h.groups.Resources.Register)
	router.Route(service.QuestionsPath, h.groups.Questions.Register)
	router.Route(service.DiscussionsPath, h.groups.Discussions.Register)

	return router
}
