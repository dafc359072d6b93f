package http_test

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-simple/internal/application/dto"
)

func TestGetStats_InventarioVacio(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/stats", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.StatsResponse](t, resp)
	assert.True(t, out.TotalValue.IsZero())
	assert.Equal(t, 0, out.TotalQuantity)
	assert.Equal(t, 0, out.ProductCount)
}

func TestGetStats_DosProductos(t *testing.T) {
	app, _ := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/api/products", mouseJSON).Body.Close()

	out := decode[dto.StatsResponse](t, doRequest(t, app, http.MethodGet, "/api/stats", ""))
	assert.Equal(t, "149.7", out.TotalValue.String())
	assert.Equal(t, 3, out.TotalQuantity)

	doRequest(t, app, http.MethodPost, "/api/products", keyboardJSON).Body.Close()

	out = decode[dto.StatsResponse](t, doRequest(t, app, http.MethodGet, "/api/stats", ""))
	assert.Equal(t, "449.7", out.TotalValue.String())
	assert.Equal(t, 5, out.TotalQuantity)
	assert.Equal(t, 2, out.ProductCount)
}

func TestDownloadReport_PDF(t *testing.T) {
	app, _ := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/api/products", mouseJSON).Body.Close()

	resp := doRequest(t, app, http.MethodGet, "/api/stats/report", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentDisposition), "attachment;"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}
