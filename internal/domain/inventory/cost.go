package inventory

import "github.com/shopspring/decimal"

// AllocatedCost costo asignado a una extracción parcial de un lote
// (servicio de dominio). CostoAsignado = CantExtraída * (CostoTotal / CantInicial)
func AllocatedCost(drainedQty, totalCost, initialQty decimal.Decimal) decimal.Decimal {
	if initialQty.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return drainedQty.Mul(totalCost.Div(initialQty))
}
