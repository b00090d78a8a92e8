package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("test", ""))
}

func TestNewLogger_Fields(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantEnv     bool
	}{
		{name: "development", environment: "development", wantEnv: true},
		{name: "production", environment: "production", wantEnv: true},
		{name: "unset environment", environment: "", wantEnv: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

			var buf bytes.Buffer
			l := newLogger(&buf, "server", tt.environment)
			l.Info().Msg("hello")

			entry := decodeEntry(t, &buf)
			assert.Equal(t, "server", entry[RoleField])
			assert.Contains(t, entry, "time")
			assert.Contains(t, entry, "func")
			assert.Equal(t, "hello", entry["message"])

			env, ok := entry[EnvironmentField]
			assert.Equal(t, tt.wantEnv, ok)
			if tt.wantEnv {
				assert.Equal(t, tt.environment, env)
			}
		})
	}
}

func TestNewLogger_CallerIsFunctionName(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "caller", "")
	l.Info().Msg("where")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_CallerIsFunctionName")
}

func TestNewLogger_ProductionDropsDebug(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := newLogger(&buf, "prod", "production")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, LevelFor("production"))
	assert.Equal(t, zerolog.DebugLevel, LevelFor("development"))
	assert.Equal(t, zerolog.DebugLevel, LevelFor("test"))
	assert.Equal(t, zerolog.DebugLevel, LevelFor(""))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "server", "")

	child := parent.WithTraceID("0190b7a4-trace")
	assert.NotSame(t, parent, child)

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry[RoleField])
	assert.Equal(t, "0190b7a4-trace", entry[TraceIDField])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), TraceIDField)
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := Nop()
		l.Logger = zerolog.New(&buf)
		ctx := l.WithTraceID("abc").WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "abc", decodeEntry(t, &buf)[TraceIDField])
	})

	t.Run("nothing attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(zl.WithContext(req.Context()))

		FromRequest(req).Info().Msg("from request")

		assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
	})

	t.Run("nothing attached", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NotNil(t, FromRequest(req))
	})
}
