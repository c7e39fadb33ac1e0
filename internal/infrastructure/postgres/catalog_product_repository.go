package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
)

var _ repository.CatalogProductRepository = (*CatalogProductRepo)(nil)

// CatalogProductRepo implementación del puerto CatalogProductRepository sobre
// PostgreSQL (usable con pool o tx).
type CatalogProductRepo struct {
	q Querier
}

// NewCatalogProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogProductRepository(q Querier) *CatalogProductRepo {
	return &CatalogProductRepo{q: q}
}

// ListActive devuelve todas las identidades activas del catálogo, ordenadas
// para que el snapshot sea estable entre recargas.
func (r *CatalogProductRepo) ListActive(ctx context.Context) ([]entity.CatalogProduct, error) {
	sql := `
		SELECT id, section, product, COALESCE(weight, ''), active, created_at
		FROM catalog_products
		WHERE active = true
		ORDER BY section, product, weight`

	var products []entity.CatalogProduct
	err := withRetry(ctx, 3, func() error {
		rows, err := r.q.Query(ctx, sql)
		if err != nil {
			return err
		}
		defer rows.Close()

		products = products[:0]
		for rows.Next() {
			var p entity.CatalogProduct
			if err := rows.Scan(&p.ID, &p.Section, &p.Product, &p.Weight, &p.Active, &p.CreatedAt); err != nil {
				return err
			}
			products = append(products, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list catalog products: %w", err)
	}
	return products, nil
}
