package usecase

import (
	"github.com/stokos/stokos-api/internal/application/dto"
	"github.com/stokos/stokos-api/internal/domain/inventory"
	"github.com/stokos/stokos-api/internal/infrastructure/memory"
)

// ReportUseCase consultas agregadas para reportes: filas por producto y
// totales del historial de ventas.
type ReportUseCase struct {
	store *memory.Store
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(store *memory.Store) *ReportUseCase {
	return &ReportUseCase{store: store}
}

// ProductReport arma una fila por producto del catálogo con disponibilidad,
// acumulados, ganancia total del historial y estado de stock.
func (uc *ReportUseCase) ProductReport() ([]dto.ProductReportRow, error) {
	rows := make([]dto.ProductReportRow, 0)
	err := uc.store.View(func(data *inventory.SystemData) error {
		for _, p := range data.Catalog.Products {
			available := data.Ledger.AvailableQuantity(p.Barcode)
			rows = append(rows, dto.ProductReportRow{
				Barcode:     p.Barcode,
				Name:        p.Name,
				Category:    p.Category,
				Unit:        string(p.Unit),
				Available:   available,
				SoldQty:     p.SoldQty,
				Discarded:   p.DiscardedQty,
				TotalProfit: data.History.TotalProfitFor(p.Barcode),
				Status:      string(inventory.StatusFor(available, p.MinStock)),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReportHeader encabezado de las columnas del reporte por producto, en el
// mismo orden que ReportRowValues.
func ReportHeader() []string {
	return []string{"barcode", "name", "category", "unit", "available", "sold", "discarded", "total_profit", "status"}
}

// ReportRowValues aplana una fila para exportarla como tabla.
func ReportRowValues(r dto.ProductReportRow) []string {
	return []string{
		r.Barcode, r.Name, r.Category, r.Unit,
		r.Available.String(), r.SoldQty.String(), r.Discarded.String(),
		r.TotalProfit.String(), r.Status,
	}
}

// SalesTotals calcula cantidad vendida y ganancia total de un producto a
// partir del historial. Funciona también para productos ya eliminados del
// catálogo: los registros son fotografías.
func (uc *ReportUseCase) SalesTotals(barcode string) (*dto.SalesTotalsResponse, error) {
	var out *dto.SalesTotalsResponse
	err := uc.store.View(func(data *inventory.SystemData) error {
		out = &dto.SalesTotalsResponse{
			Barcode:     barcode,
			TotalSold:   data.History.TotalSoldFor(barcode),
			TotalProfit: data.History.TotalProfitFor(barcode),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
