package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/inventario-simple/internal/interfaces/http"
	"github.com/jhoicas/inventario-simple/pkg/logger"
)

func buildLoggedApp(buf *bytes.Buffer) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "info", Output: buf})
	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetRequestID(c))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})
	return app
}

func TestRequestLogger_GeneraRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	reqID := resp.Header.Get(apphttp.HeaderRequestID)
	_, err = uuid.Parse(reqID)
	assert.NoError(t, err, "el request id generado debe ser un UUID")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, reqID, entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/ok", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "info", entry["level"])
}

func TestRequestLogger_RespetaRequestIDEntrante(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRequestLogger_4xxComoWarn(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(404), entry["status"])
}
