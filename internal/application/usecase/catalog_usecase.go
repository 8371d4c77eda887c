package usecase

import (
	"github.com/stokos/stokos-api/internal/application/dto"
	"github.com/stokos/stokos-api/internal/domain"
	"github.com/stokos/stokos-api/internal/domain/entity"
	"github.com/stokos/stokos-api/internal/domain/inventory"
	"github.com/stokos/stokos-api/internal/infrastructure/memory"
)

// CatalogUseCase casos de uso sobre el catálogo de productos.
type CatalogUseCase struct {
	store *memory.Store
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(store *memory.Store) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

// Create registra un producto nuevo. Falla con ErrProductAlreadyRegistered si
// el código de barras ya existe.
func (uc *CatalogUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.store.Update(func(data *inventory.SystemData) error {
		p, err := buildProduct(in)
		if err != nil {
			return err
		}
		if err := data.Catalog.Register(p); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func buildProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	unit := entity.UnitMeasure(in.Unit)
	var p *entity.Product
	var err error
	switch entity.ProductKind(in.Kind) {
	case entity.ProductPlain, "":
		p, err = entity.NewPlainProduct(in.Barcode, in.Name, in.Price, unit)
	case entity.ProductTaxed:
		if in.TaxRate == nil {
			return nil, domain.ErrInvalidInput
		}
		p, err = entity.NewTaxedProduct(in.Barcode, in.Name, in.Price, unit, *in.TaxRate)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	p.Category = in.Category
	if in.MinStock != nil {
		if err := p.SetMinStock(*in.MinStock); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// GetByBarcode busca una ficha. Devuelve ErrProductNotFound si no existe.
func (uc *CatalogUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.store.View(func(data *inventory.SystemData) error {
		p := data.Catalog.Find(barcode)
		if p == nil {
			return domain.ErrProductNotFound
		}
		out = toProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve todas las fichas del catálogo.
func (uc *CatalogUseCase) List() (*dto.ProductListResponse, error) {
	return uc.collect(func(data *inventory.SystemData) []*entity.Product {
		return data.Catalog.Products
	})
}

// Search busca por subcadena del nombre (sin distinguir mayúsculas).
func (uc *CatalogUseCase) Search(term string) (*dto.ProductListResponse, error) {
	return uc.collect(func(data *inventory.SystemData) []*entity.Product {
		return data.Catalog.SearchByName(term)
	})
}

func (uc *CatalogUseCase) collect(pick func(*inventory.SystemData) []*entity.Product) (*dto.ProductListResponse, error) {
	items := make([]dto.ProductResponse, 0)
	err := uc.store.View(func(data *inventory.SystemData) error {
		for _, p := range pick(data) {
			items = append(items, *toProductResponse(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update modifica la ficha: nombre, categoría, precio, stock mínimo y tasa de
// impuesto (solo variante TAXED).
func (uc *CatalogUseCase) Update(barcode string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.store.Update(func(data *inventory.SystemData) error {
		p := data.Catalog.Find(barcode)
		if p == nil {
			return domain.ErrProductNotFound
		}
		if in.Name != nil {
			if *in.Name == "" {
				return domain.ErrInvalidInput
			}
			p.Name = *in.Name
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Price != nil {
			if err := p.SetPrice(*in.Price); err != nil {
				return err
			}
		}
		if in.MinStock != nil {
			if err := p.SetMinStock(*in.MinStock); err != nil {
				return err
			}
		}
		if in.TaxRate != nil {
			if err := p.SetTaxRate(*in.TaxRate); err != nil {
				return err
			}
		}
		out = toProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ChangeBarcode renombra el código de barras y repunta los lotes del ledger
// al código nuevo, en la misma sección crítica.
func (uc *CatalogUseCase) ChangeBarcode(barcode string, in dto.ChangeBarcodeRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.store.Update(func(data *inventory.SystemData) error {
		if err := data.Catalog.ChangeBarcode(barcode, in.NewBarcode); err != nil {
			return err
		}
		data.Ledger.RenameBarcode(barcode, in.NewBarcode)
		out = toProductResponse(data.Catalog.Find(in.NewBarcode))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina la ficha. Falla con ErrProductHasStock si el ledger todavía
// reporta cantidad disponible.
func (uc *CatalogUseCase) Delete(barcode string) error {
	return uc.store.Update(func(data *inventory.SystemData) error {
		return data.Catalog.Remove(barcode, data.Ledger)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		Barcode:      p.Barcode,
		Name:         p.Name,
		Category:     p.Category,
		Unit:         string(p.Unit),
		Price:        p.Price,
		MinStock:     p.MinStock,
		Kind:         string(p.Kind),
		TaxRate:      p.TaxRate,
		SoldQty:      p.SoldQty,
		DiscardedQty: p.DiscardedQty,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
