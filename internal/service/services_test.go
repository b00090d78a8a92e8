package service

import (
	"testing"
	"time"

	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	cfg := &config.StructuredConfig{
		App:       config.App{Version: "1.0.0"},
		RateLimit: config.RateLimit{Window: time.Minute, Max: 10},
	}

	services, err := NewServices(store.NewMemoryRateLimitStore(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.AppInfoService)
	assert.NotNil(t, services.RateLimitService)
}

func TestNewServices_Errors(t *testing.T) {
	_, err := NewServices(store.NewMemoryRateLimitStore(), &config.StructuredConfig{
		RateLimit: config.RateLimit{Window: time.Minute, Max: 10},
	}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	_, err = NewServices(store.NewMemoryRateLimitStore(), &config.StructuredConfig{
		App: config.App{Version: "1.0.0"},
	}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidRateLimitSettings)
}
