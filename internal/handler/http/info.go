// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"fmt"
	"net/http"

	"github.com/ravigangaG/EasyLearnfrom/internal/utils"
)

// describe handles GET / with the API descriptor.
func (h *Handler) describe(w http.ResponseWriter, r *http.Request) error {
	descriptor := h.services.AppInfoService.Describe(r.Context())

	if _, err := utils.WriteJSON(w, descriptor, http.StatusOK); err != nil {
		return fmt.Errorf("error writing API descriptor: %w", err)
	}
	return nil
}

// health handles GET /api/health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	status := h.services.AppInfoService.Health(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		return fmt.Errorf("error writing health status: %w", err)
	}
	return nil
}
