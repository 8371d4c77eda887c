package inventory

import "github.com/shopspring/decimal"

// StockStatus clasifica el nivel de stock de un producto para alertas y
// reportes.
type StockStatus string

const (
	StatusOK       StockStatus = "OK"
	StatusLow      StockStatus = "LOW"      // llegó al umbral mínimo
	StatusCritical StockStatus = "CRITICAL" // sin stock
)

// StatusFor calcula el estado a partir de la cantidad disponible y el umbral
// mínimo del producto (0 = sin alerta de mínimo).
func StatusFor(available, minStock decimal.Decimal) StockStatus {
	if available.IsZero() {
		return StatusCritical
	}
	if minStock.IsPositive() && available.LessThanOrEqual(minStock) {
		return StatusLow
	}
	return StatusOK
}
