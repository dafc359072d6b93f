package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-simple/internal/domain/entity"
)

// TotalValue suma price*quantity de todos los productos (servicio de dominio). Cero si la lista está vacía.
func TotalValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Value())
	}
	return total
}

// TotalQuantity suma las unidades de todos los productos.
func TotalQuantity(products []entity.Product) int {
	total := 0
	for _, p := range products {
		total += p.Quantity
	}
	return total
}
