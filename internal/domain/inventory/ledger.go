package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stokos/stokos-api/internal/domain"
	"github.com/stokos/stokos-api/internal/domain/entity"
)

// Ledger es la colección viva de lotes que representa el stock físico.
// Valida contra el catálogo al recibir lotes y ejecuta la liquidación de
// ventas consumiendo lotes en orden de política: FEFO para perecederos
// (vence primero, sale primero), FIFO para no perecederos (id más viejo
// primero). El catálogo se pasa por parámetro en cada operación; el agregado
// completo se serializa por gob y guardar una referencia cruzada duplicaría
// el catálogo al decodificar.
type Ledger struct {
	Batches []*entity.Batch
	IDs     BatchIDAllocator
}

// NewLedger crea un ledger vacío.
func NewLedger() *Ledger {
	return &Ledger{Batches: make([]*entity.Batch, 0)}
}

// NextBatchID asigna el id para un lote nuevo.
func (l *Ledger) NextBatchID() int64 {
	return l.IDs.Next()
}

// AddBatch agrega un lote al ledger. Falla si el producto no está registrado
// en el catálogo, o si el producto ya tiene lotes de la otra variante:
// mezclar lotes perecederos y no perecederos del mismo producto dejaría
// ambigua la política de consumo, así que se prohíbe en la recepción.
func (l *Ledger) AddBatch(catalog *Catalog, b *entity.Batch) error {
	if b == nil {
		return domain.ErrInvalidInput
	}
	if !catalog.IsRegistered(b.Barcode) {
		return domain.ErrProductNotFound
	}
	for _, existing := range l.Batches {
		if existing.Barcode == b.Barcode && existing.Kind != b.Kind {
			return domain.ErrBatchKindMismatch
		}
	}
	l.Batches = append(l.Batches, b)
	return nil
}

// AvailableQuantity suma la cantidad de todos los lotes del producto.
// Cero si no hay ninguno.
func (l *Ledger) AvailableQuantity(barcode string) decimal.Decimal {
	total := decimal.Zero
	for _, b := range l.Batches {
		if b.Barcode == barcode {
			total = total.Add(b.Quantity)
		}
	}
	return total
}

// BatchesFor devuelve los lotes del producto en orden de inserción.
func (l *Ledger) BatchesFor(barcode string) []*entity.Batch {
	matches := make([]*entity.Batch, 0)
	for _, b := range l.Batches {
		if b.Barcode == barcode {
			matches = append(matches, b)
		}
	}
	return matches
}

// SettleSale liquida una venta: verifica disponibilidad total ANTES de tocar
// cualquier lote (todo o nada), consume los lotes en orden de política
// acumulando el costo asignado, registra el acumulado vendido en el producto,
// poda los lotes vacíos y agrega al historial el registro con la ganancia
// calculada por la variante del producto.
func (l *Ledger) SettleSale(catalog *Catalog, history *SalesHistory, barcode string, qty decimal.Decimal, now time.Time) (*entity.SaleRecord, error) {
	if !qty.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	product := catalog.Find(barcode)
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if l.AvailableQuantity(barcode).LessThan(qty) {
		return nil, domain.ErrInsufficientStock
	}

	batches := l.BatchesFor(barcode)
	sortByPolicy(batches)

	totalCost, err := l.drain(batches, qty)
	if err != nil {
		return nil, err
	}
	if err := product.RegisterSale(qty); err != nil {
		return nil, err
	}
	l.PruneEmptyBatches()

	record := entity.NewSaleRecord(product, qty, totalCost, now)
	history.Append(record)
	return record, nil
}

// RegisterDiscard da de baja mercadería sin venta (rotura, vencimiento):
// consume lotes en el mismo orden de política y acumula lo descartado en el
// producto. No genera registro de venta.
func (l *Ledger) RegisterDiscard(catalog *Catalog, barcode string, qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	product := catalog.Find(barcode)
	if product == nil {
		return domain.ErrProductNotFound
	}
	if l.AvailableQuantity(barcode).LessThan(qty) {
		return domain.ErrInsufficientStock
	}

	batches := l.BatchesFor(barcode)
	sortByPolicy(batches)

	if _, err := l.drain(batches, qty); err != nil {
		return err
	}
	if err := product.RegisterDiscard(qty); err != nil {
		return err
	}
	l.PruneEmptyBatches()
	return nil
}

// drain recorre los lotes ya ordenados agotando cada uno por completo antes
// de pasar al siguiente, hasta cubrir la cantidad pedida. Devuelve el costo
// asignado acumulado. El llamador ya verificó disponibilidad total.
func (l *Ledger) drain(batches []*entity.Batch, qty decimal.Decimal) (decimal.Decimal, error) {
	remaining := qty
	totalCost := decimal.Zero
	for _, b := range batches {
		if !remaining.IsPositive() {
			break
		}
		take := b.Quantity
		if take.GreaterThan(remaining) {
			take = remaining
		}
		if err := b.RemoveQuantity(take); err != nil {
			return decimal.Zero, err
		}
		totalCost = totalCost.Add(AllocatedCost(take, b.TotalCost, b.InitialQuantity))
		remaining = remaining.Sub(take)
	}
	return totalCost, nil
}

// PruneEmptyBatches elimina todo lote con cantidad cero. Idempotente: un lote
// en cero sigue siendo válido hasta que se poda.
func (l *Ledger) PruneEmptyBatches() {
	kept := l.Batches[:0]
	for _, b := range l.Batches {
		if !b.IsEmpty() {
			kept = append(kept, b)
		}
	}
	l.Batches = kept
}

// RenameBarcode repunta los lotes al nuevo código de barras cuando el
// catálogo renombra un producto. Los registros del historial conservan el
// código original (son fotografías).
func (l *Ledger) RenameBarcode(oldBarcode, newBarcode string) {
	for _, b := range l.Batches {
		if b.Barcode == oldBarcode {
			b.Barcode = newBarcode
		}
	}
}

// ResyncIDs resiembra el asignador con el mayor id presente. Se invoca
// después de cargar un snapshot.
func (l *Ledger) ResyncIDs() {
	var max int64
	for _, b := range l.Batches {
		if b.ID > max {
			max = b.ID
		}
	}
	l.IDs.Resync(max)
}

// sortByPolicy ordena los lotes de un mismo producto para el consumo:
// FEFO por fecha de vencimiento si son perecederos, FIFO por id si no.
// Como AddBatch prohíbe mezclar variantes, basta inspeccionar el primero.
func sortByPolicy(batches []*entity.Batch) {
	if len(batches) == 0 {
		return
	}
	if batches[0].Kind == entity.BatchPerishable {
		sort.SliceStable(batches, func(i, j int) bool {
			if batches[i].ExpiryDate.Equal(batches[j].ExpiryDate) {
				return batches[i].ID < batches[j].ID
			}
			return batches[i].ExpiryDate.Before(batches[j].ExpiryDate)
		})
		return
	}
	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].ID < batches[j].ID
	})
}
