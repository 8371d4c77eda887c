package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddBatchRequest recepción de un lote. Si Perishable es true, ExpiryDate es
// obligatoria. Supplier y TotalCost son opcionales (quedan "no informado" y 0).
type AddBatchRequest struct {
	Barcode    string           `json:"barcode"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Perishable bool             `json:"perishable"`
	ExpiryDate *time.Time       `json:"expiry_date,omitempty"`
	Supplier   string           `json:"supplier,omitempty"`
	TotalCost  *decimal.Decimal `json:"total_cost,omitempty"`
}

// BatchResponse lote en el ledger.
type BatchResponse struct {
	ID              int64           `json:"id"`
	Barcode         string          `json:"barcode"`
	Kind            string          `json:"kind"`
	Quantity        decimal.Decimal `json:"quantity"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	Supplier        string          `json:"supplier"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	ReceivedAt      time.Time       `json:"received_at"`
}

// BatchListResponse lotes vivos del ledger.
type BatchListResponse struct {
	Items []BatchResponse `json:"items"`
	Total int             `json:"total"`
}

// StockResponse cantidad disponible de un producto.
type StockResponse struct {
	Barcode   string          `json:"barcode"`
	Available decimal.Decimal `json:"available"`
}

// SaleRequest liquidación de una venta.
type SaleRequest struct {
	Barcode  string          `json:"barcode"`
	Quantity decimal.Decimal `json:"quantity"`
}

// SaleRecordResponse fotografía de la venta liquidada.
type SaleRecordResponse struct {
	ID          string          `json:"id"`
	Barcode     string          `json:"barcode"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Profit      decimal.Decimal `json:"profit"`
	Date        time.Time       `json:"date"`
}

// DiscardRequest baja de mercadería sin venta.
type DiscardRequest struct {
	Barcode  string          `json:"barcode"`
	Quantity decimal.Decimal `json:"quantity"`
}
