// Package metrics expone contadores y gauges del inventario en formato Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-simple/internal/domain/repository"
)

// Registry implementa ports.InventoryMetrics sobre un registro Prometheus propio.
// Los gauges se leen del inventario en cada scrape.
type Registry struct {
	reg        *prometheus.Registry
	registered prometheus.Counter
	rejected   *prometheus.CounterVec
}

// NewRegistry registra las métricas del inventario.
func NewRegistry(repo repository.ProductRepository) *Registry {
	r := prometheus.NewRegistry()
	registered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inventory_products_registered_total",
		Help: "Productos registrados con éxito.",
	})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_registrations_rejected_total",
		Help: "Registros rechazados por validación, por campo.",
	}, []string{"field"})
	products := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "inventory_products",
		Help: "Productos en el inventario.",
	}, func() float64 { return float64(repo.Count()) })
	quantity := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "inventory_total_quantity",
		Help: "Suma de unidades en stock.",
	}, func() float64 { return float64(repo.TotalQuantity()) })
	value := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "inventory_total_value",
		Help: "Suma de price * quantity.",
	}, func() float64 {
		f, _ := repo.TotalValue().Float64()
		return f
	})

	r.MustRegister(registered, rejected, products, quantity, value)
	return &Registry{reg: r, registered: registered, rejected: rejected}
}

func (r *Registry) ProductRegistered() { r.registered.Inc() }

func (r *Registry) RegistrationRejected(field string) { r.rejected.WithLabelValues(field).Inc() }

// Handler devuelve el handler HTTP de exposición.
func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
