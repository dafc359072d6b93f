package entity_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-simple/internal/domain"
	"github.com/jhoicas/inventario-simple/internal/domain/entity"
)

func TestNewProduct_Valido(t *testing.T) {
	p, err := entity.NewProduct("Mouse", "Peripherals", decimal.RequireFromString("49.9"), 3)
	require.NoError(t, err)

	assert.Equal(t, "Mouse", p.Name)
	assert.Equal(t, "Peripherals", p.Category)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("49.9")))
	assert.Equal(t, 3, p.Quantity)
	assert.True(t, p.Value().Equal(decimal.RequireFromString("149.7")), "valor = price * quantity")
}

func TestNewProduct_PrecioCeroPermitido(t *testing.T) {
	p, err := entity.NewProduct("Brinde", "Promo", decimal.Zero, 1)
	require.NoError(t, err)
	assert.True(t, p.Value().IsZero())
}

func TestNewProduct_PreciosEnRango(t *testing.T) {
	for _, price := range []string{"1e2", "999999999999999.99", "0.0000000001", "49.9000"} {
		_, err := entity.NewProduct("Mouse", "Peripherals", decimal.RequireFromString(price), 1)
		assert.NoError(t, err, price)
	}
}

func TestNewProduct_Rechazos(t *testing.T) {
	cases := []struct {
		name     string
		pName    string
		category string
		price    string
		quantity int
		field    string
	}{
		{"nombre vacío", "", "Peripherals", "10", 1, entity.FieldName},
		{"nombre solo espacios", "   ", "Peripherals", "10", 1, entity.FieldName},
		{"categoría vacía", "Mouse", "", "10", 1, entity.FieldCategory},
		{"precio negativo", "Mouse", "Peripherals", "-1", 1, entity.FieldPrice},
		{"exponente enorme", "Mouse", "Peripherals", "1e100000000", 1, entity.FieldPrice},
		{"exponente negativo enorme", "Mouse", "Peripherals", "1e-100000000", 1, entity.FieldPrice},
		{"precio en el límite", "Mouse", "Peripherals", "1e15", 1, entity.FieldPrice},
		{"demasiados decimales", "Mouse", "Peripherals", "0.00000000001", 1, entity.FieldPrice},
		{"cantidad cero", "Mouse", "Peripherals", "10", 0, entity.FieldQuantity},
		{"cantidad negativa", "Mouse", "Peripherals", "10", -5, entity.FieldQuantity},
		{"cantidad sobre el máximo", "Mouse", "Peripherals", "10", entity.MaxQuantity + 1, entity.FieldQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.NewProduct(tc.pName, tc.category, decimal.RequireFromString(tc.price), tc.quantity)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "debe envolver ErrInvalidInput")

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}
