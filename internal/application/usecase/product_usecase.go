package usecase

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-simple/internal/application/dto"
	"github.com/jhoicas/inventario-simple/internal/application/ports"
	"github.com/jhoicas/inventario-simple/internal/domain"
	"github.com/jhoicas/inventario-simple/internal/domain/entity"
	"github.com/jhoicas/inventario-simple/internal/domain/inventory"
	"github.com/jhoicas/inventario-simple/internal/domain/repository"
)

// ProductUseCase casos de uso de productos: registro, listado y detalle.
type ProductUseCase struct {
	repo    repository.ProductRepository
	metrics ports.InventoryMetrics
}

// NewProductUseCase construye el caso de uso. metrics puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, metrics ports.InventoryMetrics) *ProductUseCase {
	if metrics == nil {
		metrics = ports.NoopMetrics{}
	}
	return &ProductUseCase{repo: repo, metrics: metrics}
}

// Register parsea y valida los campos de texto y agrega el producto al inventario.
// Ante cualquier error de validación devuelve *domain.ValidationError y el inventario no cambia.
func (uc *ProductUseCase) Register(in dto.RegisterProductRequest) (*dto.ProductResponse, error) {
	product, err := parseProduct(in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			uc.metrics.RegistrationRejected(verr.Field)
		}
		return nil, err
	}
	index := uc.repo.Add(product)
	uc.metrics.ProductRegistered()
	return toProductResponse(index, product), nil
}

// List devuelve todos los productos en orden de inserción y el valor total.
// Ambos salen de la misma copia, así el total siempre corresponde a los ítems devueltos.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	products := uc.repo.List()
	items := make([]dto.ProductResponse, 0, len(products))
	for i, p := range products {
		items = append(items, *toProductResponse(i, p))
	}
	return &dto.ProductListResponse{
		Items:      items,
		Count:      len(items),
		TotalValue: inventory.TotalValue(products),
	}
}

// GetByIndex obtiene el detalle del producto en la posición indicada.
func (uc *ProductUseCase) GetByIndex(index int) (*dto.ProductResponse, error) {
	product, ok := uc.repo.Get(index)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(index, product), nil
}

// parseProduct convierte la entrada cruda en un Product válido.
// Orden de chequeo: campos vacíos, precio numérico, cantidad entera y luego rangos (entity.NewProduct).
func parseProduct(in dto.RegisterProductRequest) (entity.Product, error) {
	fields := []struct {
		name  string
		value string
	}{
		{entity.FieldName, string(in.Name)},
		{entity.FieldCategory, string(in.Category)},
		{entity.FieldPrice, string(in.Price)},
		{entity.FieldQuantity, string(in.Quantity)},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return entity.Product{}, domain.NewValidationError(f.name, "campo requerido")
		}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(string(in.Price)))
	if err != nil {
		return entity.Product{}, domain.NewValidationError(entity.FieldPrice, "debe ser un número")
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(string(in.Quantity)))
	if err != nil {
		return entity.Product{}, domain.NewValidationError(entity.FieldQuantity, "debe ser un número entero")
	}
	return entity.NewProduct(string(in.Name), string(in.Category), price, quantity)
}

func toProductResponse(index int, p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Index:    index,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}
