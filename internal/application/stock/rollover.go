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

// RolloverResult resume un barrido. FailedLocations lista las sedes cuyo
// rollover falló; el barrido nunca se aborta por una sede.
type RolloverResult struct {
	LocationsProcessed int
	RowsCreated        int
	FailedLocations    []string
}

// Rollover siembra la planilla del siguiente día hábil una vez pasada la hora
// de corte de cada sede. Es una pre-población: la reconciliación (autoritativa)
// puede sobreescribir estas filas cuando el día tenga actividad real.
type Rollover struct {
	locationRepo repository.LocationRepository
	stockRepo    repository.StockCounterRepository
	orderRepo    repository.OrderRepository
	txRunner     TxRunner
	log          *logger.Logger
}

// NewRollover construye el caso de uso de rollover.
func NewRollover(
	locationRepo repository.LocationRepository,
	stockRepo repository.StockCounterRepository,
	orderRepo repository.OrderRepository,
	txRunner TxRunner,
	log *logger.Logger,
) *Rollover {
	return &Rollover{
		locationRepo: locationRepo,
		stockRepo:    stockRepo,
		orderRepo:    orderRepo,
		txRunner:     txRunner,
		log:          log,
	}
}

// RunSweep recorre las sedes con entrega en el día y corte definido. now debe
// venir ya en la zona horaria del negocio (el scheduler la convierte una sola
// vez en el borde). Para cada sede cuyo corte ya pasó y sin planilla del
// siguiente día hábil (domingo salta a lunes), siembra la apertura de mañana
// desde el cierre verdadero de hoy con llevamos=0 y pedidos=0.
func (r *Rollover) RunSweep(ctx context.Context, now time.Time) (*RolloverResult, error) {
	locations, err := r.locationRepo.ListRolloverCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar sedes: %w", err)
	}

	today := entity.DateOf(now)
	result := &RolloverResult{}

	for _, loc := range locations {
		if !loc.CutoffPassed(now) {
			continue
		}
		result.LocationsProcessed++

		created, err := r.rolloverLocation(ctx, loc, today)
		if err != nil {
			result.FailedLocations = append(result.FailedLocations, loc.Name)
			r.log.Error().
				Str("sede", loc.Name).
				Str("fecha", today.String()).
				Err(err).
				Msg("rollover de sede falló, el barrido continúa")
			continue
		}
		result.RowsCreated += created
	}

	return result, nil
}

// rolloverLocation siembra la planilla del siguiente día hábil de una sede.
// Si la planilla de mañana ya existe no toca nada: la siembra nunca pisa filas.
func (r *Rollover) rolloverLocation(ctx context.Context, loc entity.Location, today entity.Date) (int, error) {
	next := today.NextDeliveryDay()

	nextRows, err := r.stockRepo.ListByLocationAndDate(ctx, loc.Name, next)
	if err != nil {
		return 0, fmt.Errorf("leer planilla de %s: %w", next, err)
	}
	if len(nextRows) > 0 {
		return 0, nil
	}

	todayRows, err := r.stockRepo.ListByLocationAndDate(ctx, loc.Name, today)
	if err != nil {
		return 0, fmt.Errorf("leer planilla de hoy: %w", err)
	}
	if len(todayRows) == 0 {
		return 0, nil
	}

	todayOrders, err := r.orderRepo.ListByLocationAndDate(ctx, loc.Name, today)
	if err != nil {
		return 0, fmt.Errorf("leer pedidos de hoy: %w", err)
	}

	now := time.Now()
	seeded := make([]entity.StockCounter, 0, len(todayRows))
	for _, row := range todayRows {
		product := entity.CatalogProduct{Section: row.Section, Product: row.Product, Weight: row.Weight}
		trueSales := matching.MatchedQuantity(product, todayOrders)
		closing := row.OpeningStock + row.Replenishment - trueSales

		seeded = append(seeded, entity.StockCounter{
			ID:           uuid.New().String(),
			Location:     loc.Name,
			Section:      row.Section,
			Product:      row.Product,
			Weight:       row.Weight,
			Date:         next,
			OpeningStock: closing,
			ClosingStock: closing, // sin llevamos ni pedidos todavía
			UpdatedAt:    now,
		})
	}

	err = r.txRunner.Run(ctx, func(stockRepo repository.StockCounterRepository) error {
		for i := range seeded {
			if err := stockRepo.Upsert(ctx, &seeded[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sembrar planilla de %s: %w", next, err)
	}

	r.log.Info().
		Str("sede", loc.Name).
		Str("siguiente", next.String()).
		Int("filas", len(seeded)).
		Msg("planilla del día siguiente sembrada")

	return len(seeded), nil
}
