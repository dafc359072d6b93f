package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-simple/internal/application/dto"
	"github.com/jhoicas/inventario-simple/internal/application/ports"
	"github.com/jhoicas/inventario-simple/internal/domain/inventory"
	"github.com/jhoicas/inventario-simple/internal/domain/repository"
)

// StatsUseCase estadísticas agregadas del inventario y su reporte en PDF.
type StatsUseCase struct {
	repo      repository.ProductRepository
	generator ports.StockReportGenerator
	now       func() time.Time
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.ProductRepository, generator ports.StockReportGenerator) *StatsUseCase {
	return &StatsUseCase{repo: repo, generator: generator, now: time.Now}
}

// GetStats devuelve valor total, cantidad total y número de productos. Todo en cero si el inventario está vacío.
// Los tres valores salen de la misma copia del inventario.
func (uc *StatsUseCase) GetStats() *dto.StatsResponse {
	products := uc.repo.List()
	return &dto.StatsResponse{
		TotalValue:    inventory.TotalValue(products),
		TotalQuantity: inventory.TotalQuantity(products),
		ProductCount:  len(products),
	}
}

// GenerateReport arma el PDF de estadísticas con la tabla de productos.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - error envuelto si el generador falla.
func (uc *StatsUseCase) GenerateReport(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("reporte: generador PDF no configurado")
	}
	products := uc.repo.List()
	now := uc.now()
	report := ports.StockReport{
		GeneratedAt:   now,
		Products:      products,
		TotalValue:    inventory.TotalValue(products),
		TotalQuantity: inventory.TotalQuantity(products),
	}
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	filename = fmt.Sprintf("estadisticas-inventario-%s.pdf", now.Format("20060102-150405"))
	return pdfBytes, filename, nil
}
