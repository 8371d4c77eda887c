package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecord es la fotografía inmutable de una venta liquidada: precio, costo
// y ganancia quedan congelados al momento de la transacción. Nunca se muta
// después de agregarse al historial.
type SaleRecord struct {
	ID          string
	Barcode     string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal // precio unitario al momento de la venta
	TotalCost   decimal.Decimal // costo asignado desde los lotes consumidos
	Profit      decimal.Decimal
	Date        time.Time
}

// NewSaleRecord construye el registro delegando el cálculo de ganancia a la
// variante del producto: el registro no conoce la regla, solo el resultado.
func NewSaleRecord(product *Product, qty, totalCost decimal.Decimal, date time.Time) *SaleRecord {
	return &SaleRecord{
		ID:          uuid.New().String(),
		Barcode:     product.Barcode,
		ProductName: product.Name,
		Quantity:    qty,
		UnitPrice:   product.Price,
		TotalCost:   totalCost,
		Profit:      product.CalculateProfit(qty, product.Price, totalCost),
		Date:        date,
	}
}
