package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokos/stokos-api/internal/domain"
	"github.com/stokos/stokos-api/internal/domain/entity"
)

// today fija el reloj de los tests de vencimiento.
var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func daysFromToday(n int) time.Time {
	return today.AddDate(0, 0, n)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de vencimiento (ventana = 3 días)
//
//	vence exactamente en 3 días  → por vencer
//	vence en 4 días              → fuera de la ventana
//	venció ayer                  → vencido, NO "por vencer"
//	vence hoy                    → por vencer (día 0 cuenta)
// ──────────────────────────────────────────────────────────────────────────────

func TestIsNearExpiry_LimiteDeVentana(t *testing.T) {
	const window = 3

	onEdge, err := entity.NewPerishableBatch(1, "123", decimal.NewFromInt(5), daysFromToday(window))
	require.NoError(t, err)
	assert.True(t, onEdge.IsNearExpiry(today, window),
		"un lote que vence exactamente en la ventana debe contar como por vencer")

	justOutside, err := entity.NewPerishableBatch(2, "123", decimal.NewFromInt(5), daysFromToday(window+1))
	require.NoError(t, err)
	assert.False(t, justOutside.IsNearExpiry(today, window),
		"un lote que vence un día después de la ventana no debe alertar")

	expiresToday, err := entity.NewPerishableBatch(3, "123", decimal.NewFromInt(5), daysFromToday(0))
	require.NoError(t, err)
	assert.True(t, expiresToday.IsNearExpiry(today, window), "vencer hoy cuenta como por vencer")
	assert.False(t, expiresToday.IsExpired(today), "vencer hoy no es estar vencido")
}

func TestIsNearExpiry_VencidoNoCuentaComoPorVencer(t *testing.T) {
	expired, err := entity.NewPerishableBatch(1, "123", decimal.NewFromInt(5), daysFromToday(-1))
	require.NoError(t, err)

	assert.True(t, expired.IsExpired(today))
	assert.False(t, expired.IsNearExpiry(today, 3),
		"vencido y por vencer son estados mutuamente excluyentes")
}

func TestIsExpired_ComparaPorDiaCalendario(t *testing.T) {
	// Vence hoy a las 00:00; el reloj de hoy marca las 15:30. Se compara por
	// fecha, no por instante, así que todavía no está vencido.
	b, err := entity.NewPerishableBatch(1, "123", decimal.NewFromInt(5),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.False(t, b.IsExpired(today))
	assert.Equal(t, 0, b.DaysUntilExpiry(today))
}

func TestNoPerecedero_NuncaVence(t *testing.T) {
	b, err := entity.NewNonPerishableBatch(1, "123", decimal.NewFromInt(5))
	require.NoError(t, err)

	assert.False(t, b.IsExpired(today))
	assert.False(t, b.IsNearExpiry(today, 365))
}

// ── Creación y consumo ────────────────────────────────────────────────────────

func TestNewBatch_Validaciones(t *testing.T) {
	_, err := entity.NewNonPerishableBatch(1, "", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote sin código de barras debe rechazarse")

	_, err = entity.NewNonPerishableBatch(1, "123", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "lote con cantidad cero debe rechazarse")

	_, err = entity.NewPerishableBatch(1, "123", decimal.NewFromInt(5), time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote perecedero sin fecha debe rechazarse")
}

func TestRemoveQuantity_LimitesYVaciado(t *testing.T) {
	b, err := entity.NewNonPerishableBatch(1, "123", decimal.NewFromInt(5))
	require.NoError(t, err)

	assert.ErrorIs(t, b.RemoveQuantity(decimal.Zero), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, b.RemoveQuantity(decimal.NewFromInt(6)), domain.ErrInvalidQuantity,
		"no se puede extraer más de lo disponible")
	assert.True(t, decimal.NewFromInt(5).Equal(b.Quantity), "un rechazo no debe alterar la cantidad")

	require.NoError(t, b.RemoveQuantity(decimal.NewFromInt(5)))
	assert.True(t, b.IsEmpty())
	assert.True(t, decimal.NewFromInt(5).Equal(b.InitialQuantity),
		"la cantidad inicial es la base del costo y no cambia al consumir")
}

func TestUnitCost_SobreCantidadInicial(t *testing.T) {
	b, err := entity.NewNonPerishableBatch(1, "123", decimal.NewFromInt(10))
	require.NoError(t, err)
	b.TotalCost = decimal.NewFromFloat(25.00)

	require.NoError(t, b.RemoveQuantity(decimal.NewFromInt(6)))
	assert.True(t, decimal.NewFromFloat(2.5).Equal(b.UnitCost()),
		"el costo unitario se calcula sobre la cantidad inicial, no la restante")
}
