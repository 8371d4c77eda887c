package usecase

import (
	"time"

	"github.com/stokos/stokos-api/internal/application/dto"
	"github.com/stokos/stokos-api/internal/domain"
	"github.com/stokos/stokos-api/internal/domain/entity"
	"github.com/stokos/stokos-api/internal/domain/inventory"
	"github.com/stokos/stokos-api/internal/infrastructure/memory"
)

// InventoryUseCase casos de uso sobre el ledger: recepción de lotes,
// consultas de stock, liquidación de ventas, descartes y poda.
type InventoryUseCase struct {
	store *memory.Store
	now   func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(store *memory.Store) *InventoryUseCase {
	return &InventoryUseCase{store: store, now: time.Now}
}

// AddBatch recibe un lote nuevo. El id lo asigna el ledger; valida que el
// producto exista en el catálogo y que no se mezclen variantes de lote.
func (uc *InventoryUseCase) AddBatch(in dto.AddBatchRequest) (*dto.BatchResponse, error) {
	var batch *entity.Batch
	err := uc.store.Update(func(data *inventory.SystemData) error {
		id := data.Ledger.NextBatchID()
		var b *entity.Batch
		var err error
		if in.Perishable {
			if in.ExpiryDate == nil {
				return domain.ErrInvalidInput
			}
			b, err = entity.NewPerishableBatch(id, in.Barcode, in.Quantity, *in.ExpiryDate)
		} else {
			b, err = entity.NewNonPerishableBatch(id, in.Barcode, in.Quantity)
		}
		if err != nil {
			return err
		}
		if in.Supplier != "" {
			b.Supplier = in.Supplier
		}
		if in.TotalCost != nil {
			if in.TotalCost.IsNegative() {
				return domain.ErrInvalidInput
			}
			b.TotalCost = *in.TotalCost
		}
		if err := data.Ledger.AddBatch(data.Catalog, b); err != nil {
			return err
		}
		batch = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// ListBatches devuelve los lotes vivos del ledger.
func (uc *InventoryUseCase) ListBatches() (*dto.BatchListResponse, error) {
	items := make([]dto.BatchResponse, 0)
	err := uc.store.View(func(data *inventory.SystemData) error {
		for _, b := range data.Ledger.Batches {
			items = append(items, *toBatchResponse(b))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.BatchListResponse{Items: items, Total: len(items)}, nil
}

// StockFor consulta la cantidad disponible de un producto registrado.
func (uc *InventoryUseCase) StockFor(barcode string) (*dto.StockResponse, error) {
	var out *dto.StockResponse
	err := uc.store.View(func(data *inventory.SystemData) error {
		if !data.Catalog.IsRegistered(barcode) {
			return domain.ErrProductNotFound
		}
		out = &dto.StockResponse{
			Barcode:   barcode,
			Available: data.Ledger.AvailableQuantity(barcode),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SettleSale liquida una venta completa (todo o nada) y devuelve la
// fotografía registrada en el historial.
func (uc *InventoryUseCase) SettleSale(in dto.SaleRequest) (*dto.SaleRecordResponse, error) {
	var record *entity.SaleRecord
	err := uc.store.Update(func(data *inventory.SystemData) error {
		r, err := data.Ledger.SettleSale(data.Catalog, data.History, in.Barcode, in.Quantity, uc.now())
		if err != nil {
			return err
		}
		record = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleRecordResponse(record), nil
}

// RegisterDiscard da de baja mercadería sin venta.
func (uc *InventoryUseCase) RegisterDiscard(in dto.DiscardRequest) error {
	return uc.store.Update(func(data *inventory.SystemData) error {
		return data.Ledger.RegisterDiscard(data.Catalog, in.Barcode, in.Quantity)
	})
}

// Prune poda los lotes en cero. Idempotente.
func (uc *InventoryUseCase) Prune() error {
	return uc.store.Update(func(data *inventory.SystemData) error {
		data.Ledger.PruneEmptyBatches()
		return nil
	})
}

func toBatchResponse(b *entity.Batch) *dto.BatchResponse {
	if b == nil {
		return nil
	}
	out := &dto.BatchResponse{
		ID:              b.ID,
		Barcode:         b.Barcode,
		Kind:            string(b.Kind),
		Quantity:        b.Quantity,
		InitialQuantity: b.InitialQuantity,
		Supplier:        b.Supplier,
		TotalCost:       b.TotalCost,
		ReceivedAt:      b.ReceivedAt,
	}
	if b.Kind == entity.BatchPerishable {
		expiry := b.ExpiryDate
		out.ExpiryDate = &expiry
	}
	return out
}

func toSaleRecordResponse(r *entity.SaleRecord) *dto.SaleRecordResponse {
	if r == nil {
		return nil
	}
	return &dto.SaleRecordResponse{
		ID:          r.ID,
		Barcode:     r.Barcode,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TotalCost:   r.TotalCost,
		Profit:      r.Profit,
		Date:        r.Date,
	}
}
