package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS_ActualRequests(t *testing.T) {
	tests := []struct {
		name            string
		origin          string
		wantAllowOrigin string
	}{
		{"local client", "http://localhost:3000", "http://localhost:3000"},
		{"production client", "https://easy-learn-ruby.vercel.app", "https://easy-learn-ruby.vercel.app"},
		{"configured client url", "https://client.example.com", "https://client.example.com"},
		{"unknown origin", "https://evil.example.com", ""},
		{"allowed host on other port", "http://localhost:4000", ""},
		{"allowed host over other scheme", "http://easy-learn-ruby.vercel.app", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Server.ClientURL = "https://client.example.com"
			p := newTestPipeline(t, cfg, RouteGroups{})

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.Header.Set("Origin", tt.origin)
			rr := serve(p, req)

			// CORS never blocks the request server-side
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantAllowOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantAllowOrigin != "" {
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
				assert.Contains(t, rr.Header().Get("Access-Control-Expose-Headers"), http.CanonicalHeaderKey(traceIDHeader))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}

func TestCORS_ClientURLNotSet(t *testing.T) {
	p := newTestPipeline(t, testConfig(t), RouteGroups{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://client.example.com")
	rr := serve(p, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	tests := []struct {
		name            string
		origin          string
		method          string
		wantAllowOrigin string
	}{
		{"allowed origin", "http://localhost:3000", http.MethodPost, "http://localhost:3000"},
		{"allowed origin delete", "https://easy-learn-ruby.vercel.app", http.MethodDelete, "https://easy-learn-ruby.vercel.app"},
		{"unknown origin", "https://evil.example.com", http.MethodPost, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(t, testConfig(t), RouteGroups{})

			req := httptest.NewRequest(http.MethodOptions, "/api/resources", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", tt.method)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")
			rr := serve(p, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Empty(t, rr.Body.String())
			assert.Equal(t, tt.wantAllowOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantAllowOrigin != "" {
				assert.Equal(t, tt.method, rr.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}

func TestCORS_PlainOptionsIsNotPreflight(t *testing.T) {
	p := newTestPipeline(t, testConfig(t), RouteGroups{})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := serve(p, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestIsPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	assert.False(t, isPreflight(req))

	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	assert.True(t, isPreflight(req))

	req.Method = http.MethodGet
	assert.False(t, isPreflight(req))
}
