// Package memory implementa el inventario en memoria del proceso.
// El contenido vive mientras viva el proceso; no hay persistencia.
package memory

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-simple/internal/domain/entity"
	"github.com/jhoicas/inventario-simple/internal/domain/inventory"
)

// ProductStore implementa repository.ProductRepository sobre un slice protegido por RWMutex.
// Add toma el lock exclusivo; las lecturas el compartido, así nunca se observa un registro a medias.
type ProductStore struct {
	mu       sync.RWMutex
	products []entity.Product
}

// NewProductStore crea un inventario vacío.
func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// Add agrega el producto al final de la secuencia y devuelve su posición.
func (s *ProductStore) Add(product entity.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
	return len(s.products) - 1
}

// List devuelve una copia en orden de inserción; modificarla no afecta al store.
func (s *ProductStore) List() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get devuelve el producto en la posición index.
func (s *ProductStore) Get(index int) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.products) {
		return entity.Product{}, false
	}
	return s.products[index], true
}

func (s *ProductStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// TotalValue suma price*quantity de todo el inventario.
func (s *ProductStore) TotalValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return inventory.TotalValue(s.products)
}

// TotalQuantity suma las unidades de todo el inventario.
func (s *ProductStore) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return inventory.TotalQuantity(s.products)
}
