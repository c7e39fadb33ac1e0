// Package stock mantiene las planillas diarias de stock por sede: la
// reconciliación recalcula "pedidos de hoy" desde los pedidos crudos y el
// rollover siembra la planilla del día siguiente tras la hora de corte.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/matching"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
	"github.com/tu-usuario/barf-backoffice/pkg/logger"
)

// ReconcileResult resume una corrida de reconciliación. NoOp=true cuando la
// sede no tiene ninguna planilla previa de la cual arrastrar.
type ReconcileResult struct {
	UpdatedCount int
	CarriedFrom  entity.Date
	NoOp         bool
}

// Reconciler deriva la planilla de un día desde el cierre verdadero del día
// anterior y los pedidos del día. Nunca confía en contadores guardados: el
// cierre previo se recalcula desde los pedidos crudos, lo que hace a la corrida
// idempotente y autocorrectiva frente a ediciones retroactivas de pedidos.
type Reconciler struct {
	stockRepo repository.StockCounterRepository
	orderRepo repository.OrderRepository
	txRunner  TxRunner
	log       *logger.Logger
}

// NewReconciler construye el caso de uso de reconciliación.
func NewReconciler(
	stockRepo repository.StockCounterRepository,
	orderRepo repository.OrderRepository,
	txRunner TxRunner,
	log *logger.Logger,
) *Reconciler {
	return &Reconciler{stockRepo: stockRepo, orderRepo: orderRepo, txRunner: txRunner, log: log}
}

// ReconcileStockForDate reconstruye la planilla de (sede, fecha):
//
//  1. lee las filas existentes del día solo para detectar presencia y conservar
//     el "llevamos" cargado a mano (nunca para confiar en sus contadores);
//  2. busca la fecha previa más reciente con planilla; sin previa no hay nada
//     que arrastrar y la corrida es no-op;
//  3. recalcula el cierre verdadero del día previo desde sus pedidos crudos;
//  4. calcula los pedidos del día objetivo por producto;
//  5. reescribe cada fila en una única transacción (last-writer-wins por fila).
//
// Correr dos veces seguidas con los mismos pedidos produce filas idénticas.
func (r *Reconciler) ReconcileStockForDate(ctx context.Context, location string, date entity.Date) (*ReconcileResult, error) {
	runID := uuid.New().String()
	log := r.log.With().Str("run_id", runID).Str("sede", location).Str("fecha", date.String()).Logger()

	existing, err := r.stockRepo.ListByLocationAndDate(ctx, location, date)
	if err != nil {
		return nil, fmt.Errorf("leer planilla del día: %w", err)
	}
	existingByKey := make(map[entity.StockKey]entity.StockCounter, len(existing))
	for _, row := range existing {
		existingByKey[row.ProductKey()] = row
	}

	prior, ok, err := r.stockRepo.LatestDateBefore(ctx, location, date)
	if err != nil {
		return nil, fmt.Errorf("buscar planilla previa: %w", err)
	}
	if !ok {
		log.Info().Msg("sin planilla previa, reconciliación no-op")
		return &ReconcileResult{NoOp: true}, nil
	}

	priorRows, err := r.stockRepo.ListByLocationAndDate(ctx, location, prior)
	if err != nil {
		return nil, fmt.Errorf("leer planilla previa: %w", err)
	}
	priorOrders, err := r.orderRepo.ListByLocationAndDate(ctx, location, prior)
	if err != nil {
		return nil, fmt.Errorf("leer pedidos del día previo: %w", err)
	}
	todayOrders, err := r.orderRepo.ListByLocationAndDate(ctx, location, date)
	if err != nil {
		return nil, fmt.Errorf("leer pedidos del día: %w", err)
	}

	now := time.Now()
	rows := make([]entity.StockCounter, 0, len(priorRows))
	for _, priorRow := range priorRows {
		product := entity.CatalogProduct{
			Section: priorRow.Section,
			Product: priorRow.Product,
			Weight:  priorRow.Weight,
		}

		// Cierre verdadero del día previo, recalculado desde sus pedidos.
		trueSales := matching.MatchedQuantity(product, priorOrders)
		trueClosing := priorRow.OpeningStock + priorRow.Replenishment - trueSales

		row := entity.StockCounter{
			ID:           uuid.New().String(),
			Location:     location,
			Section:      priorRow.Section,
			Product:      priorRow.Product,
			Weight:       priorRow.Weight,
			Date:         date,
			OpeningStock: trueClosing,
			OrdersToday:  matching.MatchedQuantity(product, todayOrders),
			UpdatedAt:    now,
		}
		if prev, found := existingByKey[priorRow.ProductKey()]; found {
			row.ID = prev.ID
			row.Replenishment = prev.Replenishment
		}
		row.Recompute()
		rows = append(rows, row)
	}

	err = r.txRunner.Run(ctx, func(stockRepo repository.StockCounterRepository) error {
		for i := range rows {
			if err := stockRepo.Upsert(ctx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("escribir planilla: %w", err)
	}

	log.Info().
		Str("arrastrado_de", prior.String()).
		Int("filas", len(rows)).
		Msg("reconciliación completa")

	return &ReconcileResult{UpdatedCount: len(rows), CarriedFrom: prior}, nil
}
