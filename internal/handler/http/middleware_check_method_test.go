package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(CheckHTTPMethod())
	router.MethodNotAllowed(CheckHTTPMethod())

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/items", http.StatusOK},
		{http.MethodPost, "/api/items", http.StatusCreated},
		{http.MethodDelete, "/api/items", http.StatusNotFound},
		{http.MethodPut, "/api/items", http.StatusNotFound},
		{http.MethodGet, "/api/other", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			slot := &errorSlot{}
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(withErrorSlot(req.Context(), slot))

			rr := serve(buildRouter(), req)

			if tt.wantStatus != http.StatusNotFound {
				assert.Equal(t, tt.wantStatus, rr.Code)
				assert.NoError(t, slot.Err())
				return
			}

			// the error is left for the pipeline's error handler
			require.ErrorIs(t, slot.Err(), ErrNotFound)
			status, message := statusFromError(slot.Err())
			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, "Not Found - "+tt.path, message)
		})
	}
}
