package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-simple/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	StatsUC   *usecase.StatsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products: registro, listado y detalle por posición
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Register)
	products.Get("/", productHandler.List)
	products.Get("/:index", productHandler.GetByIndex)

	// Estadísticas
	stats := api.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	stats.Get("/", statsHandler.GetStats)
	stats.Get("/report", statsHandler.DownloadReport)
}
