package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/stokos/stokos-api/internal/domain/entity"
)

// SalesHistory es la bitácora de ventas liquidadas: solo se agrega al final,
// en orden de inserción, y los registros nunca se mutan después.
type SalesHistory struct {
	Records []*entity.SaleRecord
}

// NewSalesHistory crea un historial vacío.
func NewSalesHistory() *SalesHistory {
	return &SalesHistory{Records: make([]*entity.SaleRecord, 0)}
}

// Append agrega un registro al final.
func (h *SalesHistory) Append(r *entity.SaleRecord) {
	h.Records = append(h.Records, r)
}

// TotalSoldFor suma la cantidad vendida del producto en todo el historial.
func (h *SalesHistory) TotalSoldFor(barcode string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range h.Records {
		if r.Barcode == barcode {
			total = total.Add(r.Quantity)
		}
	}
	return total
}

// TotalProfitFor suma la ganancia del producto en todo el historial.
func (h *SalesHistory) TotalProfitFor(barcode string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range h.Records {
		if r.Barcode == barcode {
			total = total.Add(r.Profit)
		}
	}
	return total
}
