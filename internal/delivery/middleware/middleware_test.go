package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"buyhive/config"
	deliverycontext "buyhive/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newDebugConfig(debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return cfg
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "client id kept", header: "ext-7f3a:42", wantKeep: true},
		{name: "missing id generated"},
		{name: "unsafe id replaced", header: "abc\ninjected"},
		{name: "long id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewRequestIDMiddleware(newJSONLogger(&buf))

			e := echo.New()
			var ctxID string
			e.GET("/", func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return c.NoContent(http.StatusNoContent)
			}, mw.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			if tt.wantKeep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
			assert.Contains(t, buf.String(), `"request_id":"`+got+`"`)
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		status  int
		wantLog bool
	}{
		{name: "debug logs success", debug: true, path: "/api/v1/carts", status: http.StatusOK, wantLog: true},
		{name: "quiet without debug", path: "/api/v1/carts", status: http.StatusNotFound},
		{name: "server errors always logged", path: "/api/v1/carts", status: http.StatusServiceUnavailable, wantLog: true},
		{name: "health skipped", debug: true, path: "/health", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewLoggerMiddleware(newJSONLogger(&buf), newDebugConfig(tt.debug))

			e := echo.New()
			e.GET(tt.path, func(c echo.Context) error {
				ctx := deliverycontext.WithUserID(c.Request().Context(), "auth0|abc")
				c.SetRequest(c.Request().WithContext(ctx))

				return c.NoContent(tt.status)
			}, mw.Handle)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "HTTP Request", entry["msg"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.Equal(t, "auth0|abc", entry["user_id"])
		})
	}
}

func TestLoggerMiddleware_HandlerError(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(newJSONLogger(&buf), newDebugConfig(false))

	e := echo.New()
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	}, mw.Handle)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, buf.String(), `"status":502`)
}
