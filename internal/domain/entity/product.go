package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-simple/internal/domain"
)

// Nombres de campo usados en los errores de validación (coinciden con el JSON de la API).
const (
	FieldName     = "name"
	FieldCategory = "category"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

// Límites de rango. El exponente del precio se acota antes de comparar magnitudes:
// un decimal como 1e100000000 ocupa pocos bytes pero se expande al serializarlo.
const (
	maxPriceScale    = 10 // hasta 10 decimales
	maxPriceExponent = 15

	// MaxQuantity acota las unidades por registro para que TotalQuantity no desborde int.
	MaxQuantity = 1_000_000_000
)

// maxPrice es el precio unitario máximo admitido (exclusivo).
var maxPrice = decimal.New(1, maxPriceExponent)

// Product representa un ítem del inventario.
// Es un valor: el store solo agrega y lee registros completos, nunca los modifica.
type Product struct {
	Name     string
	Category string
	Price    decimal.Decimal // precio unitario, >= 0
	Quantity int             // unidades en stock, >= 1 al crearse
}

// NewProduct valida los campos y construye el producto.
// Devuelve *domain.ValidationError (envuelve domain.ErrInvalidInput) en el primer campo inválido.
func NewProduct(name, category string, price decimal.Decimal, quantity int) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, domain.NewValidationError(FieldName, "campo requerido")
	}
	if strings.TrimSpace(category) == "" {
		return Product{}, domain.NewValidationError(FieldCategory, "campo requerido")
	}
	if price.IsNegative() {
		return Product{}, domain.NewValidationError(FieldPrice, "no puede ser negativo")
	}
	if !priceInRange(price) {
		return Product{}, domain.NewValidationError(FieldPrice, "fuera de rango")
	}
	if quantity < 1 {
		return Product{}, domain.NewValidationError(FieldQuantity, "debe ser mayor o igual a 1")
	}
	if quantity > MaxQuantity {
		return Product{}, domain.NewValidationError(FieldQuantity, "fuera de rango")
	}
	return Product{
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}, nil
}

func priceInRange(price decimal.Decimal) bool {
	exp := price.Exponent()
	if exp < -maxPriceScale || exp > maxPriceExponent {
		return false
	}
	return price.LessThan(maxPrice)
}

// Value devuelve price * quantity.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
