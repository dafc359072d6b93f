package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-simple/pkg/config"
)

var configKeys = []string{
	"APP_ENV", "APP_NAME", "LOG_LEVEL", "HTTP_HOST", "HTTP_PORT",
	"HTTP_READ_TIMEOUT_SECONDS", "HTTP_WRITE_TIMEOUT_SECONDS", "HTTP_IDLE_TIMEOUT_SECONDS",
	"SHUTDOWN_TIMEOUT_SECONDS", "METRICS_ENABLED", "SWAGGER_FILE", "REPORT_LOCALE", "REPORT_CURRENCY",
}

// clearEnv vacía las variables conocidas; viper trata un valor vacío como no definido.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventario-simple", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.HTTP.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "./docs/swagger.json", cfg.Docs.SwaggerFile)
	assert.Equal(t, "pt-BR", cfg.Report.Locale)
	assert.Equal(t, "R$", cfg.Report.Currency)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT_SECONDS", "3")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("REPORT_CURRENCY", "$")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr())
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "$", cfg.Report.Currency)
}

func TestLoad_ValoresInvalidosUsanDefecto(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_WRITE_TIMEOUT_SECONDS", "abc")
	t.Setenv("METRICS_ENABLED", "quizás")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_PuertoFueraDeRango(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "70000")

	_, err := config.Load()
	assert.Error(t, err)
}
