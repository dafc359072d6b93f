package dto

import "github.com/shopspring/decimal"

// StatsResponse respuesta de GET /api/stats.
type StatsResponse struct {
	TotalValue    decimal.Decimal `json:"total_value"`    // suma de price * quantity
	TotalQuantity int             `json:"total_quantity"` // suma de unidades
	ProductCount  int             `json:"product_count"`
}
