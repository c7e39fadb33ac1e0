package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// ListRolloverCandidates devuelve las sedes activas con entrega en el día y
// hora de corte configurada.
func (r *LocationRepo) ListRolloverCandidates(ctx context.Context) ([]entity.Location, error) {
	sql := `
		SELECT id, name, same_day_delivery, cutoff_hour, cutoff_minute, active, created_at
		FROM locations
		WHERE active = true AND same_day_delivery = true AND cutoff_hour IS NOT NULL
		ORDER BY name`

	var locations []entity.Location
	err := withRetry(ctx, 3, func() error {
		rows, err := r.q.Query(ctx, sql)
		if err != nil {
			return err
		}
		defer rows.Close()

		locations = locations[:0]
		for rows.Next() {
			loc, err := scanLocation(rows)
			if err != nil {
				return err
			}
			locations = append(locations, loc)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list rollover locations: %w", err)
	}
	return locations, nil
}

// GetByName obtiene una sede por nombre; nil si no existe.
func (r *LocationRepo) GetByName(ctx context.Context, name string) (*entity.Location, error) {
	sql := `
		SELECT id, name, same_day_delivery, cutoff_hour, cutoff_minute, active, created_at
		FROM locations WHERE name = $1`
	loc, err := scanLocation(r.q.QueryRow(ctx, sql, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

// scanLocation mapea cutoff_hour/cutoff_minute NULL a "sin corte" (-1).
func scanLocation(row pgx.Row) (entity.Location, error) {
	var loc entity.Location
	var hour, minute *int
	err := row.Scan(&loc.ID, &loc.Name, &loc.SameDayDelivery, &hour, &minute, &loc.Active, &loc.CreatedAt)
	if err != nil {
		return entity.Location{}, err
	}
	loc.CutoffHour = -1
	if hour != nil {
		loc.CutoffHour = *hour
	}
	if minute != nil {
		loc.CutoffMinute = *minute
	}
	return loc, nil
}
