package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-simple/internal/domain/entity"
)

// StockReport datos de entrada del reporte de estadísticas.
type StockReport struct {
	GeneratedAt   time.Time
	Products      []entity.Product
	TotalValue    decimal.Decimal
	TotalQuantity int
}

// StockReportGenerator genera la representación en PDF del reporte de estadísticas.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report StockReport) ([]byte, error)
}
