package handler

import (
	"testing"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/handler/http"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/service"
	"github.com/ravigangaG/EasyLearnfrom/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App:    config.App{Environment: config.EnvironmentDevelopment, Version: "1.0.0"},
		Server: config.Server{Port: 5000},
		RateLimit: config.RateLimit{
			Window: 15 * time.Minute,
			Max:    100,
			Store:  config.RateLimitStoreMemory,
		},
	}
}

func newTestServices(t *testing.T, cfg *config.StructuredConfig) *service.Services {
	t.Helper()

	services, err := service.NewServices(store.NewMemoryRateLimitStore(), cfg, logger.Nop())
	require.NoError(t, err)
	return services
}

func TestNewHandlers(t *testing.T) {
	cfg := newTestConfig()

	h, err := NewHandlers(newTestServices(t, cfg), http.RouteGroups{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NilServices(t *testing.T) {
	h, err := NewHandlers(nil, http.RouteGroups{}, newTestConfig(), logger.Nop())

	require.ErrorIs(t, err, errNoServices)
	assert.Nil(t, h)
}

func TestNewHandlers_NilConfig(t *testing.T) {
	cfg := newTestConfig()

	h, err := NewHandlers(newTestServices(t, cfg), http.RouteGroups{}, nil, logger.Nop())

	require.ErrorIs(t, err, errNoConfig)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := newTestConfig()
	services := newTestServices(t, cfg)

	h1, err1 := NewHandlers(services, http.RouteGroups{}, cfg, logger.Nop())
	h2, err2 := NewHandlers(services, http.RouteGroups{}, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}

func TestHandlers_Close(t *testing.T) {
	cfg := newTestConfig()

	h, err := NewHandlers(newTestServices(t, cfg), http.RouteGroups{}, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, h.Close())

	var missing *Handlers
	assert.NoError(t, missing.Close())
}
