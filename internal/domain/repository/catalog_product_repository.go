package repository

import (
	"context"

	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

// CatalogProductRepository define el puerto de lectura del catálogo de productos.
type CatalogProductRepository interface {
	// ListActive devuelve todas las identidades activas del catálogo.
	ListActive(ctx context.Context) ([]entity.CatalogProduct, error)
}
