package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/barf-backoffice/internal/application/usecase"
	"github.com/tu-usuario/barf-backoffice/internal/domain"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
	"github.com/tu-usuario/barf-backoffice/pkg/logger"
)

type fakeCatalogRepo struct {
	products []entity.CatalogProduct
	err      error
}

func (f *fakeCatalogRepo) ListActive(_ context.Context) ([]entity.CatalogProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

var _ repository.CatalogProductRepository = (*fakeCatalogRepo)(nil)

func TestSnapshot_SinCargaPrevia(t *testing.T) {
	uc := usecase.NewCatalogUseCase(&fakeCatalogRepo{}, logger.Nop())

	_, err := uc.Snapshot()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReload_PublicaElSnapshot(t *testing.T) {
	repo := &fakeCatalogRepo{products: []entity.CatalogProduct{
		{ID: "1", Section: entity.SectionPerro, Product: "POLLO", Weight: "5KG", Active: true},
	}}
	uc := usecase.NewCatalogUseCase(repo, logger.Nop())

	require.NoError(t, uc.Reload(context.Background()))

	snap, err := uc.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Products, 1)
	assert.False(t, snap.LoadedAt.IsZero())
}

// TestReload_ElSnapshotEsInmutable: cambios en el origen no se ven hasta la
// próxima recarga explícita; la foto publicada no cambia por debajo.
func TestReload_ElSnapshotEsInmutable(t *testing.T) {
	repo := &fakeCatalogRepo{products: []entity.CatalogProduct{
		{ID: "1", Section: entity.SectionPerro, Product: "POLLO", Weight: "5KG", Active: true},
	}}
	uc := usecase.NewCatalogUseCase(repo, logger.Nop())
	require.NoError(t, uc.Reload(context.Background()))

	viejo, err := uc.Snapshot()
	require.NoError(t, err)

	// El catálogo crece en la base, pero la foto vigente no se entera.
	repo.products = append(repo.products, entity.CatalogProduct{
		ID: "2", Section: entity.SectionGato, Product: "VACA", Weight: "1KG", Active: true,
	})
	actual, err := uc.Snapshot()
	require.NoError(t, err)
	assert.Len(t, actual.Products, 1)
	assert.Same(t, viejo, actual)

	require.NoError(t, uc.Reload(context.Background()))
	nuevo, err := uc.Snapshot()
	require.NoError(t, err)
	assert.Len(t, nuevo.Products, 2)
}

// TestReload_ConErrorConservaLaFotoAnterior: una recarga fallida no debe dejar
// al resolutor sin catálogo.
func TestReload_ConErrorConservaLaFotoAnterior(t *testing.T) {
	repo := &fakeCatalogRepo{products: []entity.CatalogProduct{
		{ID: "1", Section: entity.SectionPerro, Product: "POLLO", Weight: "5KG", Active: true},
	}}
	uc := usecase.NewCatalogUseCase(repo, logger.Nop())
	require.NoError(t, uc.Reload(context.Background()))

	repo.err = errors.New("base caída")
	require.Error(t, uc.Reload(context.Background()))

	snap, err := uc.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Products, 1, "la foto anterior sigue vigente")
}
