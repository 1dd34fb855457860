package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID_GeneratesOnce(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Empty(t, GetUserIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))

	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With(slog.String("request_id", "req-1"))
	ctx = WithLogger(WithUserID(WithRequestID(ctx, "req-1"), "auth0|abc"), scoped)

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Equal(t, "auth0|abc", GetUserIDFromContext(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}
