package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
}

func TestNewInstallsGlobal(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	log, err := New(Config{Level: "debug", Format: "console", Environment: "test"})
	require.NoError(t, err)
	assert.Same(t, log, zap.L())
}

func TestGinMiddlewareLogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/ping/:id", func(c *gin.Context) {
		assert.NotEmpty(t, RequestIDFromContext(c.Request.Context()))
		c.Status(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/ping/:id", fields["route"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestWithContextAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithUserID(WithRequestID(context.Background(), "r1"), "u1")

	WithContext(ctx, zap.New(core)).Info("hello")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "r1", fields["request_id"])
	assert.Equal(t, "u1", fields["user_id"])
}

func TestOperationFromSQL(t *testing.T) {
	assert.Equal(t, "SELECT", operationFromSQL(`SELECT * FROM "users"`))
	assert.Equal(t, "INSERT", operationFromSQL(`INSERT INTO "buyers" ("id") VALUES ($1)`))
	assert.Equal(t, "UNKNOWN", operationFromSQL(""))
}
