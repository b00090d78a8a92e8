package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.DSN = "postgres://localhost/easylearn"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults with dsn", mutate: func(*StructuredConfig) {}},
		{name: "port too large", mutate: func(cfg *StructuredConfig) { cfg.Server.Port = 70000 }, wantErr: ErrInvalidServerConfigs},
		{name: "negative port", mutate: func(cfg *StructuredConfig) { cfg.Server.Port = -1 }, wantErr: ErrInvalidServerConfigs},
		{name: "zero body limit", mutate: func(cfg *StructuredConfig) { cfg.Server.BodyLimit = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "blank dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "  " }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mongo" }, wantErr: ErrInvalidStorageConfigs},
		{name: "sqlite driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "zero window", mutate: func(cfg *StructuredConfig) { cfg.RateLimit.Window = 0 }, wantErr: ErrInvalidRateLimitConfigs},
		{name: "zero max", mutate: func(cfg *StructuredConfig) { cfg.RateLimit.Max = 0 }, wantErr: ErrInvalidRateLimitConfigs},
		{name: "unknown store", mutate: func(cfg *StructuredConfig) { cfg.RateLimit.Store = "memcached" }, wantErr: ErrInvalidRateLimitConfigs},
		{name: "redis without addr", mutate: func(cfg *StructuredConfig) { cfg.RateLimit.Store = RateLimitStoreRedis }, wantErr: ErrInvalidRateLimitConfigs},
		{
			name: "redis with addr",
			mutate: func(cfg *StructuredConfig) {
				cfg.RateLimit.Store = RateLimitStoreRedis
				cfg.RateLimit.Redis.Addr = "localhost:6379"
			},
		},
		{name: "sql store", mutate: func(cfg *StructuredConfig) { cfg.RateLimit.Store = RateLimitStoreSQL }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	assert.True(t, App{Environment: "development"}.IsDevelopment())
	assert.False(t, App{Environment: "production"}.IsDevelopment())
	assert.False(t, App{}.IsDevelopment())
}
