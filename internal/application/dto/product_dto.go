package dto

import "github.com/shopspring/decimal"

// RegisterProductRequest entrada para registrar un producto: los cuatro campos del formulario.
type RegisterProductRequest struct {
	Name     InputText `json:"name"`
	Category InputText `json:"category"`
	Price    InputText `json:"price"`
	Quantity InputText `json:"quantity"`
}

// ProductResponse salida de un producto. Index es su posición en el inventario.
type ProductResponse struct {
	Index    int             `json:"index"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// ProductListResponse lista completa de productos (sin paginación) con el valor total del inventario.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Count      int               `json:"count"`
	TotalValue decimal.Decimal   `json:"total_value"`
}
