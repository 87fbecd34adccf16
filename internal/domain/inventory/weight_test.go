package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/inventory"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// boxedProduct producto boxed_weight con cajas de boxKg y la caja actual con remainingKg.
func boxedProduct(boxes int, boxKg, remainingKg string) *entity.Product {
	return &entity.Product{
		ID:             "p-1",
		TrackMethod:    entity.TrackMethodBoxedWeight,
		BoxWeightKg:    dec(boxKg),
		BoxesInStock:   boxes,
		BoxRemainingKg: dec(remainingKg),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AvailableWeightKg
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailableWeightKg_CajaActualParcial(t *testing.T) {
	// 3 cajas de 30kg, la actual con 12.5kg: 2×30 + 12.5 = 72.50
	p := boxedProduct(3, "30", "12.5")
	assert.True(t, inventory.AvailableWeightKg(p).Equal(dec("72.50")))
}

// BoxRemainingKg en cero con cajas en stock significa caja actual llena sin abrir.
func TestAvailableWeightKg_CajaActualSinAbrir(t *testing.T) {
	// 3 cajas de 30kg, ninguna abierta: 90.00, no 60.00
	p := boxedProduct(3, "30", "0")
	assert.True(t, inventory.AvailableWeightKg(p).Equal(dec("90.00")))
}

func TestAvailableWeightKg_SinCajas(t *testing.T) {
	p := boxedProduct(0, "30", "0")
	assert.True(t, inventory.AvailableWeightKg(p).IsZero())
}

func TestAvailableWeightKg_ProductoPorUnidades(t *testing.T) {
	p := &entity.Product{TrackMethod: entity.TrackMethodUnit, Quantity: 10}
	assert.True(t, inventory.AvailableWeightKg(p).IsZero())
}

func TestAvailableWeightKg_RedondeaADosDecimales(t *testing.T) {
	p := boxedProduct(2, "12.345", "1.005")
	got := inventory.AvailableWeightKg(p)
	assert.Equal(t, int32(-2), got.Exponent(), "el resultado queda en 2 decimales")
}

// ──────────────────────────────────────────────────────────────────────────────
// ConsumeWeight — consumo FIFO de cajas
// ──────────────────────────────────────────────────────────────────────────────

func TestConsumeWeight_DentroDeLaCajaActual(t *testing.T) {
	p := boxedProduct(3, "30", "20")
	require.NoError(t, inventory.ConsumeWeight(p, dec("5")))

	assert.Equal(t, 3, p.BoxesInStock)
	assert.True(t, p.BoxRemainingKg.Equal(dec("15")), "restante: %s", p.BoxRemainingKg)
}

func TestConsumeWeight_CruzaALaSiguienteCaja(t *testing.T) {
	// 3 cajas de 30kg sin abrir; consumir 35 agota la primera y abre la segunda
	p := boxedProduct(3, "30", "0")
	require.NoError(t, inventory.ConsumeWeight(p, dec("35")))

	assert.Equal(t, 2, p.BoxesInStock)
	assert.True(t, p.BoxRemainingKg.Equal(dec("25")), "restante: %s", p.BoxRemainingKg)
	assert.True(t, inventory.AvailableWeightKg(p).Equal(dec("55.00")))
}

func TestConsumeWeight_AgotaExactamenteUnaCaja(t *testing.T) {
	p := boxedProduct(2, "30", "10")
	require.NoError(t, inventory.ConsumeWeight(p, dec("10")))

	// La caja actual se agotó: pasa a la siguiente, llena
	assert.Equal(t, 1, p.BoxesInStock)
	assert.True(t, p.BoxRemainingKg.Equal(dec("30")))
}

func TestConsumeWeight_ConsumeTodoElStock(t *testing.T) {
	p := boxedProduct(3, "30", "0")
	require.NoError(t, inventory.ConsumeWeight(p, dec("90")))

	assert.Equal(t, 0, p.BoxesInStock)
	assert.True(t, p.BoxRemainingKg.IsZero())
	assert.True(t, inventory.AvailableWeightKg(p).IsZero())
}

func TestConsumeWeight_ExcesoRechazadoSinMutar(t *testing.T) {
	p := boxedProduct(2, "30", "10")

	err := inventory.ConsumeWeight(p, dec("40.01")) // disponible: 40
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El producto queda intacto
	assert.Equal(t, 2, p.BoxesInStock)
	assert.True(t, p.BoxRemainingKg.Equal(dec("10")))
}

func TestConsumeWeight_GuardaNoRedondeaElDisponible(t *testing.T) {
	// Última caja con 10.005kg: redondeado a 2 decimales daría 10.01, pero
	// retirar 10.01 excede lo que hay y debe rechazarse
	p := boxedProduct(1, "30", "10.005")

	err := inventory.ConsumeWeight(p, dec("10.01"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Sin caja fantasma: el producto queda exactamente como estaba
	assert.Equal(t, 1, p.BoxesInStock)
	assert.True(t, p.BoxRemainingKg.Equal(dec("10.005")), "restante: %s", p.BoxRemainingKg)

	// El disponible exacto sí se puede retirar y agota el stock
	require.NoError(t, inventory.ConsumeWeight(p, dec("10.005")))
	assert.Equal(t, 0, p.BoxesInStock)
	assert.True(t, p.BoxRemainingKg.IsZero())
}

func TestConsumeWeight_KgNoPositivoRechazado(t *testing.T) {
	p := boxedProduct(2, "30", "10")
	assert.ErrorIs(t, inventory.ConsumeWeight(p, decimal.Zero), domain.ErrInvalidInput)
	assert.ErrorIs(t, inventory.ConsumeWeight(p, dec("-1")), domain.ErrInvalidInput)
}

func TestConsumeWeight_ProductoPorUnidadesRechazado(t *testing.T) {
	p := &entity.Product{TrackMethod: entity.TrackMethodUnit, Quantity: 5}
	assert.ErrorIs(t, inventory.ConsumeWeight(p, dec("1")), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReceiveBoxes
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiveBoxes_SumaCajas(t *testing.T) {
	p := boxedProduct(1, "30", "12")
	require.NoError(t, inventory.ReceiveBoxes(p, 4))

	assert.Equal(t, 5, p.BoxesInStock)
	// La caja actual no cambia
	assert.True(t, p.BoxRemainingKg.Equal(dec("12")))
	assert.True(t, inventory.AvailableWeightKg(p).Equal(dec("132.00")))
}

func TestReceiveBoxes_CantidadInvalida(t *testing.T) {
	p := boxedProduct(1, "30", "0")
	assert.ErrorIs(t, inventory.ReceiveBoxes(p, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, inventory.ReceiveBoxes(p, -2), domain.ErrInvalidInput)
}
