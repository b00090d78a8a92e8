package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ravigangaG/EasyLearnfrom/internal/config"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/ravigangaG/EasyLearnfrom/internal/service"
	"github.com/ravigangaG/EasyLearnfrom/internal/store"
	"github.com/ravigangaG/EasyLearnfrom/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()

	return &config.StructuredConfig{
		App: config.App{
			Environment: config.EnvironmentProduction,
			Version:     "1.0.0",
		},
		Server: config.Server{
			Port:       5000,
			UploadsDir: t.TempDir(),
			BodyLimit:  1024,
		},
		RateLimit: config.RateLimit{
			Window: 15 * time.Minute,
			Max:    100,
			Store:  config.RateLimitStoreMemory,
		},
	}
}

func newTestHandler(t *testing.T, cfg *config.StructuredConfig, groups RouteGroups) *Handler {
	t.Helper()

	services, err := service.NewServices(store.NewMemoryRateLimitStore(), cfg, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, groups, cfg, logger.Nop())
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func newTestPipeline(t *testing.T, cfg *config.StructuredConfig, groups RouteGroups) *Pipeline {
	t.Helper()
	return newTestHandler(t, cfg, groups).Init()
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decodeErrorResponse fails when the body is not exactly one JSON envelope.
func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	assert.False(t, resp.Success)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	return resp
}

// ---- NewHandler ----

func TestNewHandler(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.ClientURL = "https://client.example.com"
	cfg.RateLimit.TrustProxy = true

	h := newTestHandler(t, cfg, RouteGroups{})

	require.NotNil(t, h)
	assert.Equal(t, []string{config.LocalClientOrigin, config.ProductionClientOrigin, "https://client.example.com"}, h.allowedOrigins)
	assert.NotNil(t, h.uploads)
	assert.Equal(t, int64(1024), h.bodyLimit)
	assert.True(t, h.trustProxy)
	assert.False(t, h.development)
	assert.NotNil(t, h.rejections)
}

func TestNewHandler_DefaultBodyLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.BodyLimit = 0

	h := newTestHandler(t, cfg, RouteGroups{})

	assert.Equal(t, int64(defaultBodyLimit), h.bodyLimit)
}

func TestNewHandler_FillsMissingGroups(t *testing.T) {
	auth := RouteGroupFunc(func(_ chi.Router) {})

	h := newTestHandler(t, testConfig(t), RouteGroups{Auth: auth})

	assert.NotNil(t, h.groups.Auth)
	assert.IsType(t, RouteGroupFunc(nil), h.groups.Auth)
	for _, group := range []RouteGroup{h.groups.Users, h.groups.Resources, h.groups.Questions, h.groups.Discussions} {
		assert.IsType(t, unavailableGroup{}, group)
	}
}

func TestNewHandler_DevelopmentFlag(t *testing.T) {
	tests := []struct {
		environment string
		want        bool
	}{
		{config.EnvironmentDevelopment, true},
		{config.EnvironmentProduction, false},
		{"", false},
		{"staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.App.Environment = tt.environment

			assert.Equal(t, tt.want, newTestHandler(t, cfg, RouteGroups{}).development)
		})
	}
}

func TestInit_StageOrder(t *testing.T) {
	p := newTestPipeline(t, testConfig(t), RouteGroups{})

	assert.Equal(t,
		[]string{"trace_id", "logging", "body", "cors", "rate_limit", "static", "dispatch"},
		p.Stages(),
	)
}
