package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stokos/stokos-api/internal/domain"
)

// BatchKind discrimina la variante de lote. Conjunto cerrado: la política de
// vencimiento (y el orden de consumo en ventas) se despacha según este campo.
type BatchKind string

const (
	BatchNonPerishable BatchKind = "NON_PERISHABLE"
	BatchPerishable    BatchKind = "PERISHABLE"
)

// DefaultSupplier valor cuando el proveedor no se informa al recibir el lote.
const DefaultSupplier = "no informado"

// Batch representa una remesa física de un producto recibida en un momento
// dado, con su propia cantidad, costo y proveedor. El producto se referencia
// por código de barras; la resolución se hace contra el catálogo.
// Quantity solo decrece (vía RemoveQuantity) y nunca supera InitialQuantity,
// que es la base del costo por unidad.
type Batch struct {
	ID              int64
	Barcode         string
	Kind            BatchKind
	Quantity        decimal.Decimal
	InitialQuantity decimal.Decimal
	Supplier        string
	TotalCost       decimal.Decimal
	ExpiryDate      time.Time // cero para no perecederos
	ReceivedAt      time.Time
}

// NewNonPerishableBatch crea un lote que nunca vence.
func NewNonPerishableBatch(id int64, barcode string, qty decimal.Decimal) (*Batch, error) {
	return newBatch(id, barcode, qty, BatchNonPerishable, time.Time{})
}

// NewPerishableBatch crea un lote con fecha de vencimiento inmutable.
func NewPerishableBatch(id int64, barcode string, qty decimal.Decimal, expiry time.Time) (*Batch, error) {
	if expiry.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	return newBatch(id, barcode, qty, BatchPerishable, expiry)
}

func newBatch(id int64, barcode string, qty decimal.Decimal, kind BatchKind, expiry time.Time) (*Batch, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	if !qty.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	return &Batch{
		ID:              id,
		Barcode:         barcode,
		Kind:            kind,
		Quantity:        qty,
		InitialQuantity: qty,
		Supplier:        DefaultSupplier,
		TotalCost:       decimal.Zero,
		ExpiryDate:      expiry,
		ReceivedAt:      time.Now(),
	}, nil
}

// RemoveQuantity descuenta cantidad del lote. Rechaza cantidades no positivas
// o mayores que la cantidad disponible.
func (b *Batch) RemoveQuantity(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	if qty.GreaterThan(b.Quantity) {
		return domain.ErrInvalidQuantity
	}
	b.Quantity = b.Quantity.Sub(qty)
	return nil
}

// IsEmpty indica si el lote quedó en cero y puede podarse.
func (b *Batch) IsEmpty() bool {
	return b.Quantity.IsZero()
}

// UnitCost costo por unidad: costo total sobre cantidad inicial.
func (b *Batch) UnitCost() decimal.Decimal {
	if b.InitialQuantity.IsZero() {
		return decimal.Zero
	}
	return b.TotalCost.Div(b.InitialQuantity)
}

// IsExpired indica si el lote está vencido al día de hoy.
// Un lote no perecedero nunca vence.
func (b *Batch) IsExpired(today time.Time) bool {
	if b.Kind != BatchPerishable {
		return false
	}
	return civilDate(today).After(civilDate(b.ExpiryDate))
}

// DaysUntilExpiry días calendario hasta el vencimiento; negativo si ya pasó.
// Solo tiene sentido para lotes perecederos.
func (b *Batch) DaysUntilExpiry(today time.Time) int {
	diff := civilDate(b.ExpiryDate).Sub(civilDate(today))
	return int(diff.Hours() / 24)
}

// IsNearExpiry indica si el lote vence dentro de la ventana de alerta.
// Un lote ya vencido no cuenta como "por vencer".
func (b *Batch) IsNearExpiry(today time.Time, windowDays int) bool {
	if b.Kind != BatchPerishable {
		return false
	}
	if b.IsExpired(today) {
		return false
	}
	return b.DaysUntilExpiry(today) <= windowDays
}

// civilDate trunca a fecha calendario en UTC para comparar por día.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
