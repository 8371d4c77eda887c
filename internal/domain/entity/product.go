package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stokos/stokos-api/internal/domain"
)

// UnitMeasure es la magnitud en la que se mide un producto.
// Se fija al crear el producto y no cambia después.
type UnitMeasure string

const (
	UnitWeight UnitMeasure = "WEIGHT" // carne (kg), frutas (g)
	UnitUnit   UnitMeasure = "UNIT"   // artículos contables
	UnitVolume UnitMeasure = "VOLUME" // leche (litros), pintura (ml)
)

// Valid indica si la magnitud es una de las soportadas.
func (u UnitMeasure) Valid() bool {
	switch u {
	case UnitWeight, UnitUnit, UnitVolume:
		return true
	}
	return false
}

// ProductKind discrimina la variante de producto. El conjunto es cerrado:
// la regla de cálculo de ganancia se despacha según este campo.
type ProductKind string

const (
	// ProductPlain ganancia = ingreso − costo asignado.
	ProductPlain ProductKind = "PLAIN"
	// ProductTaxed ganancia = ingreso − costo asignado − ingreso×tasa.
	ProductTaxed ProductKind = "TAXED"
)

// Product es la ficha de catálogo de un producto, identificada por su código
// de barras (único; solo cambia vía renombre explícito en el catálogo).
// SoldQty y DiscardedQty son acumulados que solo crecen, a través de
// RegisterSale y RegisterDiscard.
type Product struct {
	Barcode      string
	Name         string
	Category     string
	Unit         UnitMeasure
	Price        decimal.Decimal // precio de venta por unidad (≥ 0)
	MinStock     decimal.Decimal // umbral de alerta; 0 = sin alerta
	Kind         ProductKind
	TaxRate      decimal.Decimal // solo TAXED; en [0,1]
	SoldQty      decimal.Decimal
	DiscardedQty decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPlainProduct crea un producto sin impuesto.
func NewPlainProduct(barcode, name string, price decimal.Decimal, unit UnitMeasure) (*Product, error) {
	return newProduct(barcode, name, price, unit, ProductPlain, decimal.Zero)
}

// NewTaxedProduct crea un producto con impuesto porcentual sobre el ingreso.
func NewTaxedProduct(barcode, name string, price decimal.Decimal, unit UnitMeasure, taxRate decimal.Decimal) (*Product, error) {
	return newProduct(barcode, name, price, unit, ProductTaxed, taxRate)
}

func newProduct(barcode, name string, price decimal.Decimal, unit UnitMeasure, kind ProductKind, taxRate decimal.Decimal) (*Product, error) {
	if barcode == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !unit.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if kind == ProductTaxed && !validTaxRate(taxRate) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	return &Product{
		Barcode:      barcode,
		Name:         name,
		Unit:         unit,
		Price:        price,
		MinStock:     decimal.Zero,
		Kind:         kind,
		TaxRate:      taxRate,
		SoldQty:      decimal.Zero,
		DiscardedQty: decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func validTaxRate(rate decimal.Decimal) bool {
	one := decimal.NewFromInt(1)
	return !rate.IsNegative() && rate.LessThanOrEqual(one)
}

// CalculateProfit calcula la ganancia de una venta según la variante.
// Es una función pura de sus argumentos: no consulta el stock ni muta nada.
// Agregar una nueva política de precios solo requiere una nueva variante aquí.
func (p *Product) CalculateProfit(qty, unitPrice, allocatedCost decimal.Decimal) decimal.Decimal {
	revenue := qty.Mul(unitPrice)
	switch p.Kind {
	case ProductTaxed:
		tax := revenue.Mul(p.TaxRate)
		return revenue.Sub(allocatedCost).Sub(tax)
	default:
		return revenue.Sub(allocatedCost)
	}
}

// RegisterSale acumula la cantidad vendida. Rechaza deltas no positivos.
func (p *Product) RegisterSale(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	p.SoldQty = p.SoldQty.Add(qty)
	p.UpdatedAt = time.Now()
	return nil
}

// RegisterDiscard acumula la cantidad descartada. Rechaza deltas no positivos.
func (p *Product) RegisterDiscard(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	p.DiscardedQty = p.DiscardedQty.Add(qty)
	p.UpdatedAt = time.Now()
	return nil
}

// SetPrice actualiza el precio unitario. Nunca negativo.
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.ErrInvalidInput
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// SetMinStock actualiza el umbral de stock mínimo. Nunca negativo.
func (p *Product) SetMinStock(min decimal.Decimal) error {
	if min.IsNegative() {
		return domain.ErrInvalidInput
	}
	p.MinStock = min
	p.UpdatedAt = time.Now()
	return nil
}

// SetTaxRate actualiza la tasa de impuesto. Solo aplica a la variante TAXED.
func (p *Product) SetTaxRate(rate decimal.Decimal) error {
	if p.Kind != ProductTaxed {
		return domain.ErrInvalidInput
	}
	if !validTaxRate(rate) {
		return domain.ErrInvalidInput
	}
	p.TaxRate = rate
	p.UpdatedAt = time.Now()
	return nil
}
