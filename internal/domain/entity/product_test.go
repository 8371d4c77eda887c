package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokos/stokos-api/internal/domain"
	"github.com/stokos/stokos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cálculo de ganancia por variante
//
// Vector de referencia: venta de 10 unidades a $2.00 con costo asignado $12.00.
//
//	PLAIN: ganancia = 10×2.00 − 12.00            = 8.00
//	TAXED (10%): ganancia = 20.00 − 12.00 − 2.00 = 6.00
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateProfit_ProductoComun(t *testing.T) {
	p, err := entity.NewPlainProduct("7891000100103", "Arroz 1kg", decimal.NewFromFloat(2.00), entity.UnitUnit)
	require.NoError(t, err)

	profit := p.CalculateProfit(
		decimal.NewFromInt(10),
		decimal.NewFromFloat(2.00),
		decimal.NewFromFloat(12.00),
	)

	assert.True(t, decimal.NewFromFloat(8.00).Equal(profit),
		"ganancia PLAIN debe ser ingreso menos costo: esperaba 8.00, obtuvo %s", profit)
}

func TestCalculateProfit_ProductoConImpuesto(t *testing.T) {
	p, err := entity.NewTaxedProduct("7891000100104", "Vino tinto", decimal.NewFromFloat(2.00), entity.UnitUnit, decimal.NewFromFloat(0.10))
	require.NoError(t, err)

	profit := p.CalculateProfit(
		decimal.NewFromInt(10),
		decimal.NewFromFloat(2.00),
		decimal.NewFromFloat(12.00),
	)

	assert.True(t, decimal.NewFromFloat(6.00).Equal(profit),
		"ganancia TAXED debe descontar ingreso×tasa: esperaba 6.00, obtuvo %s", profit)
}

// La ganancia puede ser negativa si el costo supera el ingreso; el cálculo no
// la recorta a cero.
func TestCalculateProfit_PerdidaNoSeRecorta(t *testing.T) {
	p, err := entity.NewPlainProduct("7891000100105", "Remate", decimal.NewFromFloat(1.00), entity.UnitUnit)
	require.NoError(t, err)

	profit := p.CalculateProfit(
		decimal.NewFromInt(2),
		decimal.NewFromFloat(1.00),
		decimal.NewFromFloat(5.00),
	)

	assert.True(t, profit.IsNegative(), "la pérdida debe reportarse como ganancia negativa")
	assert.True(t, decimal.NewFromFloat(-3.00).Equal(profit))
}

// ── Validaciones de creación ──────────────────────────────────────────────────

func TestNewProduct_Validaciones(t *testing.T) {
	price := decimal.NewFromFloat(3.50)

	_, err := entity.NewPlainProduct("", "Sin código", price, entity.UnitUnit)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "código de barras vacío debe rechazarse")

	_, err = entity.NewPlainProduct("123", "", price, entity.UnitUnit)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío debe rechazarse")

	_, err = entity.NewPlainProduct("123", "Precio negativo", decimal.NewFromFloat(-1), entity.UnitUnit)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo debe rechazarse")

	_, err = entity.NewPlainProduct("123", "Magnitud inválida", price, entity.UnitMeasure("GALLONS"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "magnitud fuera del conjunto debe rechazarse")
}

func TestNewTaxedProduct_TasaFueraDeRango(t *testing.T) {
	price := decimal.NewFromFloat(3.50)

	_, err := entity.NewTaxedProduct("123", "Tasa negativa", price, entity.UnitUnit, decimal.NewFromFloat(-0.1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewTaxedProduct("123", "Tasa mayor a uno", price, entity.UnitUnit, decimal.NewFromFloat(1.5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Los extremos 0 y 1 son válidos.
	_, err = entity.NewTaxedProduct("123", "Tasa cero", price, entity.UnitUnit, decimal.Zero)
	assert.NoError(t, err)
	_, err = entity.NewTaxedProduct("123", "Tasa uno", price, entity.UnitUnit, decimal.NewFromInt(1))
	assert.NoError(t, err)
}

// ── Acumulados y mutadores ────────────────────────────────────────────────────

func TestRegisterSale_AcumulaYRechazaNoPositivos(t *testing.T) {
	p, err := entity.NewPlainProduct("123", "Arroz", decimal.NewFromFloat(2.00), entity.UnitWeight)
	require.NoError(t, err)

	require.NoError(t, p.RegisterSale(decimal.NewFromFloat(1.5)))
	require.NoError(t, p.RegisterSale(decimal.NewFromFloat(2.5)))
	assert.True(t, decimal.NewFromInt(4).Equal(p.SoldQty))

	assert.ErrorIs(t, p.RegisterSale(decimal.Zero), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, p.RegisterSale(decimal.NewFromInt(-1)), domain.ErrInvalidQuantity)
	assert.True(t, decimal.NewFromInt(4).Equal(p.SoldQty), "un delta rechazado no debe alterar el acumulado")
}

func TestRegisterDiscard_AcumuladoIndependienteDeVentas(t *testing.T) {
	p, err := entity.NewPlainProduct("123", "Leche", decimal.NewFromFloat(1.20), entity.UnitVolume)
	require.NoError(t, err)

	require.NoError(t, p.RegisterSale(decimal.NewFromInt(3)))
	require.NoError(t, p.RegisterDiscard(decimal.NewFromInt(2)))

	assert.True(t, decimal.NewFromInt(3).Equal(p.SoldQty))
	assert.True(t, decimal.NewFromInt(2).Equal(p.DiscardedQty))
}

func TestSetTaxRate_SoloVarianteTaxed(t *testing.T) {
	plain, err := entity.NewPlainProduct("123", "Arroz", decimal.NewFromFloat(2.00), entity.UnitUnit)
	require.NoError(t, err)
	assert.ErrorIs(t, plain.SetTaxRate(decimal.NewFromFloat(0.2)), domain.ErrInvalidInput,
		"un producto PLAIN no admite tasa de impuesto")

	taxed, err := entity.NewTaxedProduct("124", "Vino", decimal.NewFromFloat(9.00), entity.UnitUnit, decimal.NewFromFloat(0.1))
	require.NoError(t, err)
	require.NoError(t, taxed.SetTaxRate(decimal.NewFromFloat(0.2)))
	assert.True(t, decimal.NewFromFloat(0.2).Equal(taxed.TaxRate))
}
