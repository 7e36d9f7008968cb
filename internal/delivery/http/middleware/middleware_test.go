package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(logger *zap.Logger) *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(logger))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).SendString("bad")
	})
	return app
}

func TestRequestID(t *testing.T) {
	app := newTestApp(zap.NewNop())

	t.Run("generated when missing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)

		id := resp.Header.Get(HeaderRequestID)
		assert.Len(t, id, 36)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, id, string(body))
	})

	t.Run("incoming id kept", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ok", nil)
		req.Header.Set(HeaderRequestID, "abc-123")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
	})
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := newTestApp(zap.New(core))

	req := httptest.NewRequest("GET", "/bad", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	_, err := app.Test(req)
	require.NoError(t, err)

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "/bad", ctx["path"])
	assert.Equal(t, int64(400), ctx["status"])
	assert.Equal(t, "req-1", ctx["request_id"])
}
