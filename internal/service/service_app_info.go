// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package service

import (
	"context"
	"sync"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/app"
	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/models"
)

// Messages and mount points reported by the informational routes.
const (
	RootMessage   = app.MsgAPIDescription
	HealthMessage = app.MsgServerRunning

	AuthPath        = "/api/auth"
	UsersPath       = "/api/users"
	ResourcesPath   = "/api/resources"
	QuestionsPath   = "/api/questions"
	DiscussionsPath = "/api/discussions"
	HealthPath      = "/api/health"
)

type appInfoService struct {
	appVersion string

	now func() time.Time

	// lastHealth is the last timestamp handed out by Health.
	mu         sync.Mutex
	lastHealth time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) Describe(ctx context.Context) models.RootResponse {
	return models.RootResponse{
		Success: true,
		Message: RootMessage,
		Version: s.appVersion,
		Endpoints: models.Endpoints{
			Auth:        AuthPath,
			Users:       UsersPath,
			Resources:   ResourcesPath,
			Questions:   QuestionsPath,
			Discussions: DiscussionsPath,
			Health:      HealthPath,
		},
	}
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.NewHealthResponse(HealthMessage, s.nextHealthTime())
}

// nextHealthTime returns the current time at millisecond precision, moved
// one millisecond past the previous result when the clock has not advanced
// (or went backwards).
func (s *appInfoService) nextHealthTime() time.Time {
	now := s.now().UTC().Truncate(time.Millisecond)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !now.After(s.lastHealth) {
		now = s.lastHealth.Add(time.Millisecond)
	}
	s.lastHealth = now

	return now
}
