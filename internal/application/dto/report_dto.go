package dto

import "github.com/shopspring/decimal"

// AlertResponse aviso generado por la pasada de alertas.
// Type: OUT_OF_STOCK, LOW_STOCK, EXPIRED o NEAR_EXPIRY.
type AlertResponse struct {
	Type        string           `json:"type"`
	Barcode     string           `json:"barcode"`
	ProductName string           `json:"product_name"`
	Message     string           `json:"message"`
	Available   *decimal.Decimal `json:"available,omitempty"`
	MinStock    *decimal.Decimal `json:"min_stock,omitempty"`
	Days        *int             `json:"days,omitempty"`
}

// ProductReportRow fila del reporte por producto.
type ProductReportRow struct {
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Available   decimal.Decimal `json:"available"`
	SoldQty     decimal.Decimal `json:"sold_qty"`
	Discarded   decimal.Decimal `json:"discarded_qty"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	Status      string          `json:"status"`
}

// SalesTotalsResponse agregados del historial para un producto.
type SalesTotalsResponse struct {
	Barcode     string          `json:"barcode"`
	TotalSold   decimal.Decimal `json:"total_sold"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}
