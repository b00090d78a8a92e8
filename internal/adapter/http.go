// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/utils"
	"github.com/ravigangaG/EasyLearnfrom/models"
)

const (
	rootPath   = "/"
	healthPath = "/api/health"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter].
// It normalises and validates address (a bare "host:port" gets the http
// scheme) and configures the underlying HTTP client with the resolved base
// URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPAPIAdapter(address string, timeout time.Duration, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [APIAdapter].
func (h *httpAPIAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	if !health.Success {
		return health, fmt.Errorf("%w: %s", ErrUnhealthy, health.Message)
	}

	h.logger.Debug().
		Str("message", health.Message).
		Str("timestamp", health.Timestamp).
		Dur("took", resp.Time()).
		Msg("health probe succeeded")
	return health, nil
}

// Describe implements [APIAdapter].
func (h *httpAPIAdapter) Describe(ctx context.Context) (models.RootResponse, error) {
	var descriptor models.RootResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&descriptor).
		Get(rootPath)
	if err != nil {
		return models.RootResponse{}, fmt.Errorf("describe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RootResponse{}, err
	}

	if !descriptor.Success {
		return descriptor, fmt.Errorf("%w: success is false", ErrIncompleteDescriptor)
	}
	if missing := missingEndpoints(descriptor.Endpoints); len(missing) > 0 {
		return descriptor, fmt.Errorf("%w: missing %v", ErrIncompleteDescriptor, missing)
	}

	return descriptor, nil
}

func missingEndpoints(e models.Endpoints) []string {
	var missing []string
	for name, path := range map[string]string{
		"auth":        e.Auth,
		"users":       e.Users,
		"resources":   e.Resources,
		"questions":   e.Questions,
		"discussions": e.Discussions,
		"health":      e.Health,
	} {
		if path == "" {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}
