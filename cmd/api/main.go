package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-simple/internal/application/ports"
	"github.com/jhoicas/inventario-simple/internal/application/usecase"
	"github.com/jhoicas/inventario-simple/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-simple/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventario-simple/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-simple/internal/interfaces/http"
	"github.com/jhoicas/inventario-simple/pkg/config"
	"github.com/jhoicas/inventario-simple/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Montos como números JSON (49.9) en lugar de strings ("49.9").
	decimal.MarshalJSONWithoutQuotes = true

	// El inventario vive lo que vive el proceso; se inyecta, no hay estado global.
	store := memory.NewProductStore()

	var inventoryMetrics ports.InventoryMetrics = ports.NoopMetrics{}
	var metricsRegistry *metrics.Registry
	if cfg.Metrics.Enabled {
		metricsRegistry = metrics.NewRegistry(store)
		inventoryMetrics = metricsRegistry
	}

	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.Report.Locale, cfg.Report.Currency)
	productUC := usecase.NewProductUseCase(store, inventoryMetrics)
	statsUC := usecase.NewStatsUseCase(store, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Inventario API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if metricsRegistry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metricsRegistry.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: productUC,
		StatsUC:   statsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().
		Int("products", store.Count()).
		Msg("aplicación detenida")
}
