package snapshot_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokos/stokos-api/internal/domain/entity"
	"github.com/stokos/stokos-api/internal/domain/inventory"
	"github.com/stokos/stokos-api/internal/infrastructure/snapshot"
)

func buildState(t *testing.T) *inventory.SystemData {
	t.Helper()
	data := inventory.NewSystemData()

	p, err := entity.NewTaxedProduct("123", "Vino tinto", decimal.NewFromFloat(9.50), entity.UnitUnit, decimal.NewFromFloat(0.10))
	require.NoError(t, err)
	require.NoError(t, data.Catalog.Register(p))

	b, err := entity.NewPerishableBatch(data.Ledger.NextBatchID(), "123", decimal.NewFromInt(6),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b.TotalCost = decimal.NewFromFloat(30.00)
	require.NoError(t, data.Ledger.AddBatch(data.Catalog, b))

	_, err = data.Ledger.SettleSale(data.Catalog, data.History, "123", decimal.NewFromInt(2),
		time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return data
}

func TestFileStore_GuardarYCargar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estado.stk")
	store := snapshot.NewFileStore(path)

	require.NoError(t, store.Save(buildState(t)))

	loaded, err := store.Load()
	require.NoError(t, err)

	// Catálogo
	p := loaded.Catalog.Find("123")
	require.NotNil(t, p)
	assert.Equal(t, entity.ProductTaxed, p.Kind)
	assert.True(t, decimal.NewFromFloat(0.10).Equal(p.TaxRate))
	assert.True(t, decimal.NewFromInt(2).Equal(p.SoldQty))

	// Ledger
	assert.True(t, decimal.NewFromInt(4).Equal(loaded.Ledger.AvailableQuantity("123")))
	batches := loaded.Ledger.BatchesFor("123")
	require.Len(t, batches, 1)
	assert.Equal(t, entity.BatchPerishable, batches[0].Kind)
	assert.True(t, decimal.NewFromFloat(30.00).Equal(batches[0].TotalCost))

	// Historial
	require.Len(t, loaded.History.Records, 1)
	assert.True(t, decimal.NewFromInt(2).Equal(loaded.History.Records[0].Quantity))
}

func TestFileStore_ArchivoInexistenteDevuelveVacio(t *testing.T) {
	store := snapshot.NewFileStore(filepath.Join(t.TempDir(), "no-existe.stk"))

	data, err := store.Load()
	require.NoError(t, err, "el primer arranque no debe fallar por falta de archivo")
	assert.Empty(t, data.Catalog.Products)
	assert.Empty(t, data.Ledger.Batches)
	assert.Empty(t, data.History.Records)
}

// Tras cargar, el asignador de ids debe continuar después del mayor id
// presente en los lotes guardados.
func TestFileStore_ResiembraIdsAlCargar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estado.stk")
	store := snapshot.NewFileStore(path)
	require.NoError(t, store.Save(buildState(t)))

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(2), loaded.Ledger.NextBatchID())
}

func TestFileStore_GuardarSobrescribeAtomicamente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estado.stk")
	store := snapshot.NewFileStore(path)

	require.NoError(t, store.Save(buildState(t)))
	require.NoError(t, store.Save(inventory.NewSystemData()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Catalog.Products, "el segundo guardado debe reemplazar al primero")
}
