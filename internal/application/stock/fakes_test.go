package stock_test

import (
	"context"
	"fmt"

	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests de reconciliación y rollover.
// Replican la semántica de los repositorios reales (upsert por identidad de
// producto y fecha) sin tocar la base.

type fakeStockRepo struct {
	rows    []entity.StockCounter
	failFor string // sede cuyas lecturas fallan, para simular una sede rota
}

func (f *fakeStockRepo) ListByLocationAndDate(_ context.Context, location string, date entity.Date) ([]entity.StockCounter, error) {
	if location == f.failFor {
		return nil, fmt.Errorf("sede %s fuera de servicio", location)
	}
	var out []entity.StockCounter
	for _, r := range f.rows {
		if r.Location == location && r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) LatestDateBefore(_ context.Context, location string, date entity.Date) (entity.Date, bool, error) {
	var prior entity.Date
	found := false
	for _, r := range f.rows {
		if r.Location != location || !r.Date.Before(date) {
			continue
		}
		if !found || r.Date.After(prior) {
			prior = r.Date
			found = true
		}
	}
	return prior, found, nil
}

func (f *fakeStockRepo) Upsert(_ context.Context, row *entity.StockCounter) error {
	for i := range f.rows {
		r := &f.rows[i]
		if r.Location == row.Location && r.Date.Equal(row.Date) && r.ProductKey() == row.ProductKey() {
			*r = *row
			return nil
		}
	}
	f.rows = append(f.rows, *row)
	return nil
}

// find devuelve la fila de (sede, fecha, producto) o nil.
func (f *fakeStockRepo) find(location string, date entity.Date, key entity.StockKey) *entity.StockCounter {
	for i := range f.rows {
		r := &f.rows[i]
		if r.Location == location && r.Date.Equal(date) && r.ProductKey() == key {
			return r
		}
	}
	return nil
}

var _ repository.StockCounterRepository = (*fakeStockRepo)(nil)

type fakeOrderRepo struct {
	orders []entity.Order
}

func (f *fakeOrderRepo) ListByLocationAndDate(_ context.Context, location string, date entity.Date) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.Location == location && o.DeliveryDate.Equal(date) {
			out = append(out, o)
		}
	}
	return out, nil
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

// fakeTxRunner ejecuta la función directamente sobre el repositorio en memoria:
// la atomicidad real la cubre la implementación de postgres.
type fakeTxRunner struct {
	stockRepo repository.StockCounterRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.StockCounterRepository) error) error {
	return fn(f.stockRepo)
}

type fakeLocationRepo struct {
	locations []entity.Location
}

func (f *fakeLocationRepo) ListRolloverCandidates(_ context.Context) ([]entity.Location, error) {
	return f.locations, nil
}

func (f *fakeLocationRepo) GetByName(_ context.Context, name string) (*entity.Location, error) {
	for _, l := range f.locations {
		if l.Name == name {
			loc := l
			return &loc, nil
		}
	}
	return nil, nil
}

var _ repository.LocationRepository = (*fakeLocationRepo)(nil)
