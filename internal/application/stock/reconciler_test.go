package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/barf-backoffice/internal/application/stock"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// La reconciliación nunca confía en contadores guardados: el cierre del día
// previo se recalcula desde los pedidos crudos y "pedidos de hoy" se deriva del
// matcher. Estos tests fijan ese contrato: idempotencia, preservación del
// llevamos cargado a mano y autocorrección frente a contadores adulterados.
// ──────────────────────────────────────────────────────────────────────────────

const sede = "PALERMO"

var (
	dia10 = entity.NewDate(2024, time.June, 10)
	dia11 = entity.NewDate(2024, time.June, 11)

	clavePollo = entity.StockKey{Section: entity.SectionPerro, Product: "POLLO", Weight: "5KG"}
)

func filaPollo(date entity.Date, opening, replenishment, orders int) entity.StockCounter {
	fila := entity.StockCounter{
		ID:            "fila-" + date.String(),
		Location:      sede,
		Section:       entity.SectionPerro,
		Product:       "POLLO",
		Weight:        "5KG",
		Date:          date,
		OpeningStock:  opening,
		Replenishment: replenishment,
		OrdersToday:   orders,
	}
	fila.Recompute()
	return fila
}

func pedidoPollo(date entity.Date, qty int) entity.Order {
	return entity.Order{
		ID:           "pedido-" + date.String(),
		Location:     sede,
		DeliveryDate: date,
		Items: []entity.OrderLineItem{
			{Name: "BOX PERRO POLLO - 5KG", Quantity: qty},
		},
	}
}

func nuevoReconciler(stockRepo *fakeStockRepo, orderRepo *fakeOrderRepo) *stock.Reconciler {
	return stock.NewReconciler(stockRepo, orderRepo, &fakeTxRunner{stockRepo: stockRepo}, logger.Nop())
}

func TestReconcile_ArrastreDesdeElDiaPrevio(t *testing.T) {
	// Día 10: apertura 10, llevamos 4, 2 pedidos -> cierre verdadero 12.
	stockRepo := &fakeStockRepo{rows: []entity.StockCounter{filaPollo(dia10, 10, 4, 2)}}
	orderRepo := &fakeOrderRepo{orders: []entity.Order{
		pedidoPollo(dia10, 2),
		pedidoPollo(dia11, 2),
	}}
	rec := nuevoReconciler(stockRepo, orderRepo)

	result, err := rec.ReconcileStockForDate(context.Background(), sede, dia11)
	require.NoError(t, err)
	assert.False(t, result.NoOp)
	assert.Equal(t, 1, result.UpdatedCount)
	assert.Equal(t, dia10, result.CarriedFrom)

	fila := stockRepo.find(sede, dia11, clavePollo)
	require.NotNil(t, fila)
	assert.Equal(t, 12, fila.OpeningStock, "la apertura es el cierre verdadero del día previo")
	assert.Equal(t, 0, fila.Replenishment)
	assert.Equal(t, 2, fila.OrdersToday)
	assert.Equal(t, 10, fila.ClosingStock)
}

// TestReconcile_Idempotente: correr dos veces con los mismos pedidos produce
// filas idénticas, conservando el ID de la fila existente.
func TestReconcile_Idempotente(t *testing.T) {
	stockRepo := &fakeStockRepo{rows: []entity.StockCounter{filaPollo(dia10, 10, 4, 2)}}
	orderRepo := &fakeOrderRepo{orders: []entity.Order{
		pedidoPollo(dia10, 2),
		pedidoPollo(dia11, 2),
	}}
	rec := nuevoReconciler(stockRepo, orderRepo)

	_, err := rec.ReconcileStockForDate(context.Background(), sede, dia11)
	require.NoError(t, err)
	primera := *stockRepo.find(sede, dia11, clavePollo)

	_, err = rec.ReconcileStockForDate(context.Background(), sede, dia11)
	require.NoError(t, err)
	segunda := *stockRepo.find(sede, dia11, clavePollo)

	assert.Equal(t, primera.ID, segunda.ID, "la segunda corrida reutiliza la fila existente")
	primera.UpdatedAt, segunda.UpdatedAt = time.Time{}, time.Time{}
	assert.Equal(t, primera, segunda)
}

// TestReconcile_PreservaLlevamos: el "llevamos" es el único dato cargado a mano
// en la planilla del día; la reconciliación lo conserva y recalcula el cierre.
func TestReconcile_PreservaLlevamos(t *testing.T) {
	stockRepo := &fakeStockRepo{rows: []entity.StockCounter{
		filaPollo(dia10, 10, 4, 2),
		filaPollo(dia11, 0, 5, 0), // fila de hoy precargada con llevamos=5
	}}
	orderRepo := &fakeOrderRepo{orders: []entity.Order{
		pedidoPollo(dia10, 2),
		pedidoPollo(dia11, 2),
	}}
	rec := nuevoReconciler(stockRepo, orderRepo)

	_, err := rec.ReconcileStockForDate(context.Background(), sede, dia11)
	require.NoError(t, err)

	fila := stockRepo.find(sede, dia11, clavePollo)
	require.NotNil(t, fila)
	assert.Equal(t, 5, fila.Replenishment)
	assert.Equal(t, 12, fila.OpeningStock)
	assert.Equal(t, 15, fila.ClosingStock) // 12 + 5 - 2
}

// TestReconcile_RecalculaElCierrePrevio: un cierre guardado adulterado (o
// desactualizado por una edición retroactiva de pedidos) no contamina el
// arrastre: la apertura sale siempre del recálculo contra los pedidos crudos.
func TestReconcile_RecalculaElCierrePrevio(t *testing.T) {
	filaAdulterada := filaPollo(dia10, 10, 4, 2)
	filaAdulterada.ClosingStock = 99 // guardado mentiroso

	stockRepo := &fakeStockRepo{rows: []entity.StockCounter{filaAdulterada}}
	orderRepo := &fakeOrderRepo{orders: []entity.Order{
		pedidoPollo(dia10, 2),
		pedidoPollo(dia11, 2),
	}}
	rec := nuevoReconciler(stockRepo, orderRepo)

	_, err := rec.ReconcileStockForDate(context.Background(), sede, dia11)
	require.NoError(t, err)

	fila := stockRepo.find(sede, dia11, clavePollo)
	require.NotNil(t, fila)
	assert.Equal(t, 12, fila.OpeningStock, "10 + 4 - 2 desde los pedidos crudos, no el 99 guardado")
}

// TestReconcile_PedidoEditadoRetroactivamente: si un pedido del día previo se
// edita después del cierre, la siguiente corrida corrige el arrastre sola.
func TestReconcile_PedidoEditadoRetroactivamente(t *testing.T) {
	stockRepo := &fakeStockRepo{rows: []entity.StockCounter{filaPollo(dia10, 10, 4, 2)}}
	orderRepo := &fakeOrderRepo{orders: []entity.Order{
		pedidoPollo(dia10, 2),
		pedidoPollo(dia11, 2),
	}}
	rec := nuevoReconciler(stockRepo, orderRepo)

	_, err := rec.ReconcileStockForDate(context.Background(), sede, dia11)
	require.NoError(t, err)
	assert.Equal(t, 12, stockRepo.find(sede, dia11, clavePollo).OpeningStock)

	// El pedido del día 10 sube de 2 a 5 unidades.
	orderRepo.orders[0] = pedidoPollo(dia10, 5)

	_, err = rec.ReconcileStockForDate(context.Background(), sede, dia11)
	require.NoError(t, err)
	assert.Equal(t, 9, stockRepo.find(sede, dia11, clavePollo).OpeningStock, "10 + 4 - 5")
}

func TestReconcile_SinPlanillaPrevia(t *testing.T) {
	stockRepo := &fakeStockRepo{}
	rec := nuevoReconciler(stockRepo, &fakeOrderRepo{})

	result, err := rec.ReconcileStockForDate(context.Background(), sede, dia11)
	require.NoError(t, err)
	assert.True(t, result.NoOp)
	assert.Zero(t, result.UpdatedCount)
	assert.Empty(t, stockRepo.rows, "una corrida no-op no escribe nada")
}

// TestReconcile_SaltaHuecosDeFechas: la planilla previa es la fecha más
// reciente con filas, no necesariamente el día calendario anterior.
func TestReconcile_SaltaHuecosDeFechas(t *testing.T) {
	dia14 := entity.NewDate(2024, time.June, 14)
	stockRepo := &fakeStockRepo{rows: []entity.StockCounter{filaPollo(dia10, 10, 0, 0)}}
	orderRepo := &fakeOrderRepo{}
	rec := nuevoReconciler(stockRepo, orderRepo)

	result, err := rec.ReconcileStockForDate(context.Background(), sede, dia14)
	require.NoError(t, err)
	assert.Equal(t, dia10, result.CarriedFrom)

	fila := stockRepo.find(sede, dia14, clavePollo)
	require.NotNil(t, fila)
	assert.Equal(t, 10, fila.OpeningStock)
}
