package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stokos/stokos-api/internal/domain"
	"github.com/stokos/stokos-api/internal/domain/entity"
)

// StockChecker responde la cantidad disponible de un producto. Lo implementa
// el Ledger; el catálogo lo consulta al eliminar un producto para impedir
// borrar fichas con stock vivo.
type StockChecker interface {
	AvailableQuantity(barcode string) decimal.Decimal
}

// Catalog es el registro autoritativo de fichas de producto, único por código
// de barras. No garantiza orden en la colección subyacente.
type Catalog struct {
	Products []*entity.Product
}

// NewCatalog crea un catálogo vacío.
func NewCatalog() *Catalog {
	return &Catalog{Products: make([]*entity.Product, 0)}
}

// Register agrega un producto. Falla si el código de barras ya existe.
func (c *Catalog) Register(p *entity.Product) error {
	if p == nil || p.Barcode == "" {
		return domain.ErrInvalidInput
	}
	if c.Find(p.Barcode) != nil {
		return domain.ErrProductAlreadyRegistered
	}
	c.Products = append(c.Products, p)
	return nil
}

// Remove elimina un producto del catálogo. Falla si no existe o si el ledger
// reporta stock disponible distinto de cero (invariante entre entidades,
// verificada al momento de eliminar).
func (c *Catalog) Remove(barcode string, stock StockChecker) error {
	idx := c.indexOf(barcode)
	if idx < 0 {
		return domain.ErrProductNotFound
	}
	if stock.AvailableQuantity(barcode).IsPositive() {
		return domain.ErrProductHasStock
	}
	c.Products = append(c.Products[:idx], c.Products[idx+1:]...)
	return nil
}

// Find busca por código de barras. Devuelve nil si no existe; quien llama
// decide si eso es un error.
func (c *Catalog) Find(barcode string) *entity.Product {
	if idx := c.indexOf(barcode); idx >= 0 {
		return c.Products[idx]
	}
	return nil
}

// IsRegistered indica si el código de barras está en el catálogo.
func (c *Catalog) IsRegistered(barcode string) bool {
	return c.indexOf(barcode) >= 0
}

// SearchByName busca por subcadena del nombre, sin distinguir mayúsculas.
// Se usa para desambiguar cuando hay varias coincidencias.
func (c *Catalog) SearchByName(term string) []*entity.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	matches := make([]*entity.Product, 0)
	if term == "" {
		return matches
	}
	for _, p := range c.Products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matches = append(matches, p)
		}
	}
	return matches
}

// ChangeBarcode renombra el código de barras de un producto manteniendo la
// unicidad: falla si el viejo no existe o el nuevo ya está tomado.
func (c *Catalog) ChangeBarcode(oldBarcode, newBarcode string) error {
	if newBarcode == "" {
		return domain.ErrInvalidInput
	}
	p := c.Find(oldBarcode)
	if p == nil {
		return domain.ErrProductNotFound
	}
	if oldBarcode == newBarcode {
		return nil
	}
	if c.Find(newBarcode) != nil {
		return domain.ErrProductAlreadyRegistered
	}
	p.Barcode = newBarcode
	return nil
}

func (c *Catalog) indexOf(barcode string) int {
	for i, p := range c.Products {
		if p.Barcode == barcode {
			return i
		}
	}
	return -1
}
