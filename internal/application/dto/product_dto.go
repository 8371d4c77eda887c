package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en el catálogo.
// Kind: "PLAIN" o "TAXED"; TaxRate solo aplica a TAXED, en [0,1].
// Unit: "WEIGHT", "UNIT" o "VOLUME" (fija tras la creación).
type CreateProductRequest struct {
	Barcode  string           `json:"barcode"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Unit     string           `json:"unit"`
	Price    decimal.Decimal  `json:"price"`
	MinStock *decimal.Decimal `json:"min_stock,omitempty"`
	Kind     string           `json:"kind"`
	TaxRate  *decimal.Decimal `json:"tax_rate,omitempty"`
}

// UpdateProductRequest modificación parcial de la ficha. El código de barras
// no se toca aquí: tiene su propia operación de renombre.
type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty"`
	Category *string          `json:"category,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	MinStock *decimal.Decimal `json:"min_stock,omitempty"`
	TaxRate  *decimal.Decimal `json:"tax_rate,omitempty"`
}

// ChangeBarcodeRequest renombre explícito del código de barras.
type ChangeBarcodeRequest struct {
	NewBarcode string `json:"new_barcode"`
}

// ProductResponse ficha de producto.
type ProductResponse struct {
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	MinStock     decimal.Decimal `json:"min_stock"`
	Kind         string          `json:"kind"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	SoldQty      decimal.Decimal `json:"sold_qty"`
	DiscardedQty decimal.Decimal `json:"discarded_qty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado de fichas.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
