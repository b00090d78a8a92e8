package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
		"app": {"environment": "production", "version": "1.2.3"},
		"server": {"port": 7000, "client_url": "https://client.example", "shutdown_timeout": "5s"},
		"storage": {"db": {"driver": "pgx", "dsn": "postgres://json/db", "connect_retries": 2}},
		"rate_limit": {"window": "15m", "max": 100, "store": "memory", "cleanup_interval": 60000000000}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "https://client.example", cfg.Server.ClientURL)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, uint64(2), cfg.Storage.DB.ConnectRetries)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, int64(100), cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.CleanupInterval)
	assert.Empty(t, cfg.FilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
app:
  environment: development
server:
  port: 5050
  uploads_dir: /srv/uploads
storage:
  db:
    driver: sqlite3
    dsn: file:dev.db
rate_limit:
  window: 1m
  max: 5
  store: redis
  redis:
    addr: localhost:6379
    db: 1
    prefix: dev:rl
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 5050, cfg.Server.Port)
	assert.Equal(t, "/srv/uploads", cfg.Server.UploadsDir)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:dev.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, int64(5), cfg.RateLimit.Max)
	assert.Equal(t, "localhost:6379", cfg.RateLimit.Redis.Addr)
	assert.Equal(t, 1, cfg.RateLimit.Redis.DB)
	assert.Equal(t, "dev:rl", cfg.RateLimit.Redis.Prefix)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{name: "malformed json", file: "bad.json", content: "{not valid json"},
		{name: "malformed duration", file: "bad-duration.json", content: `{"rate_limit": {"window": "soon"}}`},
		{name: "unsupported extension", file: "config.toml", content: "port = 1", wantErr: ErrUnsupportedConfigFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.file, tt.content)

			cfg, err := parseFile(path)
			assert.Nil(t, cfg)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
