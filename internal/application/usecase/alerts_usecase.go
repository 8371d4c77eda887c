package usecase

import (
	"fmt"
	"time"

	"github.com/stokos/stokos-api/internal/application/dto"
	"github.com/stokos/stokos-api/internal/domain/entity"
	"github.com/stokos/stokos-api/internal/domain/inventory"
	"github.com/stokos/stokos-api/internal/infrastructure/memory"
)

// Tipos de alerta.
const (
	AlertOutOfStock = "OUT_OF_STOCK"
	AlertLowStock   = "LOW_STOCK"
	AlertExpired    = "EXPIRED"
	AlertNearExpiry = "NEAR_EXPIRY"
)

// AlertsUseCase pasada de solo lectura sobre catálogo y ledger que emite los
// avisos de stock y vencimiento. No tiene estado propio.
type AlertsUseCase struct {
	store      *memory.Store
	windowDays int // ventana de "por vencer" en días
	now        func() time.Time
}

// NewAlertsUseCase construye el caso de uso con la ventana configurada.
func NewAlertsUseCase(store *memory.Store, windowDays int) *AlertsUseCase {
	return &AlertsUseCase{store: store, windowDays: windowDays, now: time.Now}
}

// List genera los avisos:
//   - por producto sin stock: OUT_OF_STOCK; con stock bajo el umbral: LOW_STOCK;
//   - por producto con algún lote vencido: un único EXPIRED, sin importar
//     cuántos lotes vencidos haya;
//   - por producto con lotes por vencer: un único NEAR_EXPIRY con los días del
//     lote que vence antes.
func (uc *AlertsUseCase) List() ([]dto.AlertResponse, error) {
	alerts := make([]dto.AlertResponse, 0)
	today := uc.now()

	err := uc.store.View(func(data *inventory.SystemData) error {
		for _, p := range data.Catalog.Products {
			available := data.Ledger.AvailableQuantity(p.Barcode)
			if available.IsZero() {
				av := available
				alerts = append(alerts, dto.AlertResponse{
					Type:        AlertOutOfStock,
					Barcode:     p.Barcode,
					ProductName: p.Name,
					Message:     fmt.Sprintf("el producto '%s' no tiene stock", p.Name),
					Available:   &av,
				})
			} else if p.MinStock.IsPositive() && available.LessThanOrEqual(p.MinStock) {
				av, min := available, p.MinStock
				alerts = append(alerts, dto.AlertResponse{
					Type:        AlertLowStock,
					Barcode:     p.Barcode,
					ProductName: p.Name,
					Message: fmt.Sprintf("el producto '%s' está con stock bajo (%s / %s)",
						p.Name, available.String(), p.MinStock.String()),
					Available: &av,
					MinStock:  &min,
				})
			}

			expired, nearest := uc.expiryScan(data.Ledger.BatchesFor(p.Barcode), today)
			if expired {
				alerts = append(alerts, dto.AlertResponse{
					Type:        AlertExpired,
					Barcode:     p.Barcode,
					ProductName: p.Name,
					Message:     fmt.Sprintf("hay uno o más lotes vencidos del producto '%s'", p.Name),
				})
			}
			if nearest != nil {
				days := *nearest
				alerts = append(alerts, dto.AlertResponse{
					Type:        AlertNearExpiry,
					Barcode:     p.Barcode,
					ProductName: p.Name,
					Message:     fmt.Sprintf("el producto '%s' tiene un lote que vence en %d día(s)", p.Name, days),
					Days:        &days,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// expiryScan recorre los lotes de un producto y devuelve si hay alguno
// vencido y, de los que están por vencer, los días del que vence antes.
func (uc *AlertsUseCase) expiryScan(batches []*entity.Batch, today time.Time) (expired bool, nearest *int) {
	for _, b := range batches {
		if b.IsExpired(today) {
			expired = true
			continue
		}
		if b.IsNearExpiry(today, uc.windowDays) {
			days := b.DaysUntilExpiry(today)
			if nearest == nil || days < *nearest {
				nearest = &days
			}
		}
	}
	return expired, nearest
}
