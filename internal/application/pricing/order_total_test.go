package pricing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/barf-backoffice/internal/application/pricing"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// El calculador de totales es tolerante a fallas parciales: un renglón sin
// precio se marca y se excluye, nunca aborta el pedido completo. El total
// resultante es provisorio cuando UnresolvedCount > 0.
// ──────────────────────────────────────────────────────────────────────────────

func calculadorConLibro(t *testing.T) *pricing.OrderTotalCalculator {
	t.Helper()
	creado := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakePriceRepo{records: []entity.PriceRecord{
		registro("PERRO", "POLLO", "5KG", entity.TierEfectivo, 100, fecha(2024, time.January, 1), creado),
		registro("PERRO", "VACA", "10KG", entity.TierEfectivo, 180, fecha(2024, time.January, 1), creado),
		registro("OTROS", "HUESOS CARNOSOS 5KG", "", entity.TierEfectivo, 80, fecha(2024, time.January, 1), creado),
		registro("PERRO", "BIG DOG VACA", "15KG", entity.TierEfectivo, 300, fecha(2024, time.January, 1), creado),
		registro("PERRO", "SALMON AHUMADO", "", entity.TierEfectivo, 60, fecha(2024, time.January, 1), creado),
	}}
	return pricing.NewOrderTotalCalculator(pricing.NewResolver(repo, logger.Nop()), logger.Nop())
}

func TestCalculate_TotalConRenglonSinPrecio(t *testing.T) {
	calc := calculadorConLibro(t)

	items := []entity.OrderLineItem{
		{Name: "PERRO - POLLO - 5KG", Quantity: 2},        // 200
		{Name: "PERRO - CONEJO - 5KG", Quantity: 1},       // sin registro, se excluye
		{Name: "OTROS - HUESOS CARNOSOS - 5KG", Quantity: 1}, // 80
	}

	result := calc.Calculate(context.Background(), items, entity.BuyerMinorista, entity.PaymentEfectivo, fecha(2024, time.June, 1))

	assert.True(t, decimal.NewFromInt(280).Equal(result.Total), "el total excluye el renglón sin precio")
	assert.Equal(t, 1, result.UnresolvedCount)
	require.Len(t, result.PerItem, 3)

	assert.True(t, result.PerItem[0].Resolved)
	assert.True(t, decimal.NewFromInt(200).Equal(result.PerItem[0].Subtotal))

	assert.False(t, result.PerItem[1].Resolved)
	assert.NotEmpty(t, result.PerItem[1].FailureReason)

	assert.True(t, result.PerItem[2].Resolved)
	assert.True(t, decimal.NewFromInt(80).Equal(result.PerItem[2].Subtotal))
}

// TestCalculate_EtiquetaLegada: un renglón sin descriptor estructurado cae al
// camino legado que deduce la sección y extrae el peso del nombre libre.
func TestCalculate_EtiquetaLegada(t *testing.T) {
	calc := calculadorConLibro(t)

	items := []entity.OrderLineItem{
		{Name: "BIG DOG VACA 15KG", Quantity: 1},
	}
	result := calc.Calculate(context.Background(), items, entity.BuyerMinorista, entity.PaymentEfectivo, fecha(2024, time.June, 1))

	require.Equal(t, 0, result.UnresolvedCount)
	assert.True(t, decimal.NewFromInt(300).Equal(result.Total))
	assert.False(t, result.PerItem[0].LowConfidence, "BIG DOG es un token conocido de la tabla de deducción")
}

// TestCalculate_DeduccionDeBajaConfianza: un nombre fuera del vocabulario cae en
// la cola heurística (sección PERRO) y el renglón queda marcado para revisión.
func TestCalculate_DeduccionDeBajaConfianza(t *testing.T) {
	calc := calculadorConLibro(t)

	items := []entity.OrderLineItem{
		{Name: "SALMON AHUMADO", Quantity: 2},
	}
	result := calc.Calculate(context.Background(), items, entity.BuyerMinorista, entity.PaymentEfectivo, fecha(2024, time.June, 1))

	require.Equal(t, 0, result.UnresolvedCount)
	assert.True(t, result.PerItem[0].LowConfidence)
	assert.True(t, decimal.NewFromInt(120).Equal(result.Total))
}

func TestCalculate_CantidadDesdeOpcion(t *testing.T) {
	calc := calculadorConLibro(t)

	items := []entity.OrderLineItem{
		{Name: "PERRO - POLLO - 5KG", Options: []entity.ItemOption{{Name: "5KG", Quantity: 3}}},
	}
	result := calc.Calculate(context.Background(), items, entity.BuyerMinorista, entity.PaymentEfectivo, fecha(2024, time.June, 1))

	require.Len(t, result.PerItem, 1)
	assert.Equal(t, 3, result.PerItem[0].Quantity)
	assert.True(t, decimal.NewFromInt(300).Equal(result.Total))
}

func TestCalculate_PedidoVacio(t *testing.T) {
	calc := calculadorConLibro(t)

	result := calc.Calculate(context.Background(), nil, entity.BuyerMinorista, entity.PaymentEfectivo, fecha(2024, time.June, 1))

	assert.True(t, decimal.Zero.Equal(result.Total))
	assert.Empty(t, result.PerItem)
	assert.Zero(t, result.UnresolvedCount)
}
