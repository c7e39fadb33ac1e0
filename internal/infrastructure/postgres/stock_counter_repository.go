package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
)

var _ repository.StockCounterRepository = (*StockCounterRepo)(nil)

// StockCounterRepo implementación del puerto StockCounterRepository sobre
// PostgreSQL (usable con pool o tx). El upsert es last-writer-wins por
// (sede, producto, fecha): la reconciliación reescribe la fila completa.
type StockCounterRepo struct {
	q Querier
}

// NewStockCounterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockCounterRepository(q Querier) *StockCounterRepo {
	return &StockCounterRepo{q: q}
}

// ListByLocationAndDate devuelve la planilla de una sede para una fecha.
func (r *StockCounterRepo) ListByLocationAndDate(ctx context.Context, location string, date entity.Date) ([]entity.StockCounter, error) {
	sql := `
		SELECT id, location, section, product, COALESCE(weight, ''), date,
		       opening_stock, replenishment, orders_today, closing_stock, updated_at
		FROM stock_counters
		WHERE location = $1 AND date = $2
		ORDER BY section, product, weight`

	var counters []entity.StockCounter
	err := withRetry(ctx, 3, func() error {
		rows, err := r.q.Query(ctx, sql, location, date.Time(time.UTC))
		if err != nil {
			return err
		}
		defer rows.Close()

		counters = counters[:0]
		for rows.Next() {
			var c entity.StockCounter
			var day time.Time
			if err := rows.Scan(
				&c.ID, &c.Location, &c.Section, &c.Product, &c.Weight, &day,
				&c.OpeningStock, &c.Replenishment, &c.OrdersToday, &c.ClosingStock, &c.UpdatedAt,
			); err != nil {
				return err
			}
			c.Date = entity.DateOf(day)
			counters = append(counters, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list stock counters %s/%s: %w", location, date, err)
	}
	return counters, nil
}

// LatestDateBefore devuelve la fecha más reciente anterior a date con filas
// para la sede; ok=false si la sede nunca tuvo planilla previa.
func (r *StockCounterRepo) LatestDateBefore(ctx context.Context, location string, date entity.Date) (entity.Date, bool, error) {
	sql := `
		SELECT date FROM stock_counters
		WHERE location = $1 AND date < $2
		ORDER BY date DESC
		LIMIT 1`
	var day time.Time
	err := withRetry(ctx, 3, func() error {
		return r.q.QueryRow(ctx, sql, location, date.Time(time.UTC)).Scan(&day)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Date{}, false, nil
		}
		return entity.Date{}, false, fmt.Errorf("latest stock date %s: %w", location, err)
	}
	return entity.DateOf(day), true, nil
}

// Upsert inserta o reescribe la fila de (sede, sección, producto, peso, fecha).
func (r *StockCounterRepo) Upsert(ctx context.Context, row *entity.StockCounter) error {
	sql := `
		INSERT INTO stock_counters (id, location, section, product, weight, date,
		                            opening_stock, replenishment, orders_today, closing_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (location, section, product, weight, date)
		DO UPDATE SET opening_stock = EXCLUDED.opening_stock,
		              replenishment = EXCLUDED.replenishment,
		              orders_today  = EXCLUDED.orders_today,
		              closing_stock = EXCLUDED.closing_stock,
		              updated_at    = now()`
	_, err := r.q.Exec(ctx, sql,
		row.ID, row.Location, row.Section, row.Product, row.Weight, row.Date.Time(time.UTC),
		row.OpeningStock, row.Replenishment, row.OrdersToday, row.ClosingStock,
	)
	if err != nil {
		return fmt.Errorf("upsert stock counter: %w", err)
	}
	return nil
}
