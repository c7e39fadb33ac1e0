package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tu-usuario/barf-backoffice/internal/domain"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
	"github.com/tu-usuario/barf-backoffice/pkg/logger"
)

// CatalogSnapshot es una foto inmutable del catálogo activo. Nadie la muta
// después de publicada; Reload publica una nueva completa (swap atómico).
type CatalogSnapshot struct {
	Products []entity.CatalogProduct
	LoadedAt time.Time
}

// CatalogUseCase mantiene el snapshot del catálogo que consumen el resolutor y
// el matcher, con recarga explícita en lugar de estado global mutable.
type CatalogUseCase struct {
	repo     repository.CatalogProductRepository
	log      *logger.Logger
	snapshot atomic.Pointer[CatalogSnapshot]
}

// NewCatalogUseCase construye el caso de uso del catálogo.
func NewCatalogUseCase(repo repository.CatalogProductRepository, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: log}
}

// Reload carga el catálogo activo y publica el snapshot nuevo de una sola vez.
func (uc *CatalogUseCase) Reload(ctx context.Context) error {
	products, err := uc.repo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("recargar catálogo: %w", err)
	}
	uc.snapshot.Store(&CatalogSnapshot{Products: products, LoadedAt: time.Now()})
	uc.log.Info().Int("productos", len(products)).Msg("catálogo recargado")
	return nil
}

// Snapshot devuelve la última foto publicada, o ErrNotFound si nunca se cargó.
func (uc *CatalogUseCase) Snapshot() (*CatalogSnapshot, error) {
	s := uc.snapshot.Load()
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
