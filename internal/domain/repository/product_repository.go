package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-simple/internal/domain/entity"
)

// ProductRepository define el puerto del inventario de productos (DIP).
// Secuencia ordenada por inserción; la identidad de un producto es su posición (base 0).
// Add nunca falla y devuelve la posición asignada.
type ProductRepository interface {
	Add(product entity.Product) int
	List() []entity.Product
	Get(index int) (entity.Product, bool)
	Count() int
	TotalValue() decimal.Decimal
	TotalQuantity() int
}
