package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for concurrent log writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// accessLogs returns the decoded access log entries, skipping every other
// line the pipeline wrote.
func (b *syncBuffer) accessLogs(t *testing.T) []map[string]any {
	t.Helper()

	b.mu.Lock()
	defer b.mu.Unlock()

	var entries []map[string]any
	sc := bufio.NewScanner(strings.NewReader(b.buf.String()))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		if _, ok := entry["duration"]; ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// newLoggedPipeline builds the full pipeline with a logger writing to buf.
func newLoggedPipeline(t *testing.T, buf *syncBuffer, groups RouteGroups) *Pipeline {
	t.Helper()

	h := newTestHandler(t, testConfig(t), groups)
	h.logger = &logger.Logger{Logger: zerolog.New(buf)}
	return h.Init()
}

func TestLoggingStage_OneEntryPerRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, target: "/api/health", wantStatus: http.StatusOK},
		{name: "root", method: http.MethodGet, target: "/", wantStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, target: "/api/unknown?x=1", wantStatus: http.StatusNotFound},
		{name: "placeholder group", method: http.MethodPost, target: "/api/auth/login", wantStatus: http.StatusNotImplemented},
		{name: "wrong method", method: http.MethodDelete, target: "/api/health", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf syncBuffer
			p := newLoggedPipeline(t, &buf, RouteGroups{})

			rr := serve(p, httptest.NewRequest(tt.method, tt.target, nil))
			require.Equal(t, tt.wantStatus, rr.Code)

			entries := buf.accessLogs(t)
			require.Len(t, entries, 1)

			entry := entries[0]
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, tt.method, entry["method"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.EqualValues(t, rr.Body.Len(), entry["size"])
			assert.Equal(t, rr.Header().Get(traceIDHeader), entry[logger.TraceIDField])
		})
	}
}

func TestLoggingStage_LogsRecoveredPanicAs500(t *testing.T) {
	var buf syncBuffer
	groups := RouteGroups{Users: RouteGroupFunc(func(r chi.Router) {
		r.Get("/", func(http.ResponseWriter, *http.Request) { panic("boom") })
	})}
	p := newLoggedPipeline(t, &buf, groups)

	rr := serve(p, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	entries := buf.accessLogs(t)
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusInternalServerError, entries[0]["status"])
}

func TestLoggingStage_ImplicitStatusIs200(t *testing.T) {
	var buf syncBuffer
	h := newNopHandler()
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})
	handler := stageHandler(h.traceIDStage(), stageHandler(h.loggingStage(), next))

	rr := serve(handler, httptest.NewRequest(http.MethodGet, "/uploads/a.txt", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	entries := buf.accessLogs(t)
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusOK, entries[0]["status"])
	assert.EqualValues(t, 1024, entries[0]["size"])
}

func TestLoggingStage_ConcurrentRequests(t *testing.T) {
	var buf syncBuffer
	p := newLoggedPipeline(t, &buf, RouteGroups{})

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			rr := serve(p, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
	wg.Wait()

	entries := buf.accessLogs(t)
	require.Len(t, entries, n)

	traceIDs := make(map[any]struct{}, n)
	for _, entry := range entries {
		traceIDs[entry[logger.TraceIDField]] = struct{}{}
	}
	assert.Len(t, traceIDs, n, "every request gets its own trace id")
}
