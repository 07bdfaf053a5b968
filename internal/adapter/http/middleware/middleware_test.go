package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), "log line should be JSON: %s", line)
		entries = append(entries, m)
	}
	return entries
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID_GeneratesUUID(t *testing.T) {
	_, c, rec := newContext(http.MethodGet, "/test")

	handler := RequestID(zerolog.Nop())(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36)
	assert.Equal(t, reqID, GetRequestID(c))
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	_, c, rec := newContext(http.MethodGet, "/test")
	c.Request().Header.Set(RequestIDHeader, "caller-id-42")

	handler := RequestID(zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, "caller-id-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "caller-id-42", GetRequestID(c))
}

func TestRequestID_AttachesScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	_, c, _ := newContext(http.MethodGet, "/test")
	c.Request().Header.Set(RequestIDHeader, "abc")

	handler := RequestID(zerolog.New(&buf))(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("inside handler")
		return nil
	})
	require.NoError(t, handler(c))

	entries := decodeLogLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["request_id"])
}

func TestGetRequestID_EmptyWhenNotSet(t *testing.T) {
	_, c, _ := newContext(http.MethodGet, "/test")
	assert.Empty(t, GetRequestID(c))
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	_, c, _ := newContext(http.MethodPost, "/api/v1/flights/search?debug=1")
	c.Request().Header.Set("User-Agent", "dashctl/1.0")
	c.Request().Header.Set("X-Real-IP", "10.0.0.7")
	c.Set("request_id", "req-1")

	handler := RequestLogger(zerolog.New(&buf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	entries := decodeLogLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/flights/search", entry["path"])
	assert.Equal(t, "debug=1", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "10.0.0.7", entry["client_ip"])
	assert.Equal(t, "dashctl/1.0", entry["user_agent"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "latency")
}

func TestRequestLogger_Levels(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		level  string
	}{
		{"server error", "/api/v1/flights/search", http.StatusInternalServerError, "error"},
		{"client error", "/api/v1/flights/search", http.StatusBadRequest, "warn"},
		{"health is quiet", "/health", http.StatusOK, "debug"},
		{"swagger is quiet", "/swagger/index.html", http.StatusOK, "debug"},
		{"failing health is loud", "/health", http.StatusServiceUnavailable, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, c, _ := newContext(http.MethodGet, tt.path)

			handler := RequestLogger(zerolog.New(&buf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entries := decodeLogLines(t, &buf)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0]["level"])
			assert.Equal(t, float64(tt.status), entries[0]["status"])
		})
	}
}

func TestRequestLogger_HandlerErrorGoesThroughEcho(t *testing.T) {
	var buf bytes.Buffer
	_, c, rec := newContext(http.MethodGet, "/missing")

	handler := RequestLogger(zerolog.New(&buf))(func(c echo.Context) error {
		return echo.ErrNotFound
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	entries := decodeLogLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(404), entries[0]["status"])
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_Returns500AndLogsStack(t *testing.T) {
	var buf bytes.Buffer
	_, c, rec := newContext(http.MethodGet, "/panic")

	handler := Recover(zerolog.New(&buf))(func(c echo.Context) error {
		panic("boom")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body["code"])

	entries := decodeLogLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0]["panic"])
	assert.Contains(t, entries[0], "stack")
}

func TestRecover_ErrorPanicAndNoStack(t *testing.T) {
	var buf bytes.Buffer
	_, c, rec := newContext(http.MethodGet, "/panic")

	handler := RecoverWithConfig(zerolog.New(&buf), RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic(errors.New("nil map write"))
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entries := decodeLogLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "nil map write", entries[0]["panic"])
	assert.NotContains(t, entries[0], "stack")
}

func TestRecover_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	_, c, rec := newContext(http.MethodGet, "/ok")

	handler := Recover(zerolog.New(&buf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
	assert.Empty(t, buf.String())
}

// =====================================================
// Setup Tests
// =====================================================

func TestSetup_FullChain(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&buf))

	e.GET("/panic", func(c echo.Context) error { panic("kaboom") })
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	panicID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, panicID)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	entries := decodeLogLines(t, &buf)
	// panic line plus one request line per call
	require.Len(t, entries, 3)
	assert.Equal(t, panicID, entries[0]["request_id"])
	assert.Equal(t, "Panic recovered", entries[0]["message"])
	assert.Equal(t, float64(500), entries[1]["status"])
	assert.Equal(t, float64(200), entries[2]["status"])
}

func TestChain_Order(t *testing.T) {
	assert.Len(t, Chain(zerolog.Nop()), 3)
}
