package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/barf-backoffice/internal/domain"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
)

var _ repository.PriceRecordRepository = (*PriceRecordRepo)(nil)

// PriceRecordRepo implementación del puerto PriceRecordRepository sobre PostgreSQL
// (usable con pool o tx). El libro de precios es append-only: Insert nunca pisa
// registros históricos.
type PriceRecordRepo struct {
	q Querier
}

// NewPriceRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceRecordRepository(q Querier) *PriceRecordRepo {
	return &PriceRecordRepo{q: q}
}

// FindApplicable devuelve el registro activo con mayor effective_date <= AsOf
// para la variante, desempatando por created_at más reciente. nil si no hay.
func (r *PriceRecordRepo) FindApplicable(ctx context.Context, query repository.PriceQuery) (*entity.PriceRecord, error) {
	sql := `
		SELECT id, section, product, COALESCE(weight, ''), price_tier, price, active, effective_date, created_at
		FROM price_records
		WHERE lower(section) = lower($1)
		  AND upper(product) = upper($2)
		  AND price_tier = $3
		  AND active = true
		  AND effective_date <= $4`
	args := []any{query.Section, query.Product, query.Tier, query.AsOf.Time(time.UTC)}

	if !query.IgnoreWeight {
		// Coincide el peso canónico, o el registro no tiene peso cuando la
		// consulta tampoco lo trae.
		sql += ` AND (weight = $5 OR ($5 = '' AND (weight IS NULL OR weight = '')))`
		args = append(args, query.Weight)
	}
	sql += `
		ORDER BY effective_date DESC, created_at DESC
		LIMIT 1`

	var rec entity.PriceRecord
	var effective time.Time
	err := withRetry(ctx, 3, func() error {
		return r.q.QueryRow(ctx, sql, args...).Scan(
			&rec.ID, &rec.Section, &rec.Product, &rec.Weight, &rec.PriceTier,
			&rec.Price, &rec.Active, &effective, &rec.CreatedAt,
		)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find price record: %w", err)
	}
	rec.EffectiveDate = entity.DateOf(effective)
	return &rec, nil
}

// Insert agrega un registro nuevo al libro de precios.
func (r *PriceRecordRepo) Insert(ctx context.Context, record *entity.PriceRecord) error {
	sql := `
		INSERT INTO price_records (id, section, product, weight, price_tier, price, active, effective_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, sql,
		record.ID, record.Section, record.Product, record.Weight, record.PriceTier,
		record.Price, record.Active, record.EffectiveDate.Time(time.UTC), record.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert price record: %w", err)
	}
	return nil
}
