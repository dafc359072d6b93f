package ports

// InventoryMetrics puerto de salida para contadores del registro de productos.
// Los adaptadores (Prometheus, mock) implementan esta interfaz; los casos de uso no conocen la librería.
type InventoryMetrics interface {
	ProductRegistered()
	// RegistrationRejected recibe el campo que invalidó la entrada.
	RegistrationRejected(field string)
}

// NoopMetrics descarta todas las métricas.
type NoopMetrics struct{}

func (NoopMetrics) ProductRegistered()          {}
func (NoopMetrics) RegistrationRejected(string) {}
