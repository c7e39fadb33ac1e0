package repository

import (
	"context"

	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

// StockCounterRepository define el puerto de persistencia de las planillas
// diarias de stock. Las escrituras son last-writer-wins por
// (sede, producto, fecha): la reconciliación reescribe la fila completa.
type StockCounterRepository interface {
	ListByLocationAndDate(ctx context.Context, location string, date entity.Date) ([]entity.StockCounter, error)
	// LatestDateBefore devuelve la fecha más reciente anterior a date con filas
	// para la sede; ok=false si no existe ninguna.
	LatestDateBefore(ctx context.Context, location string, date entity.Date) (prior entity.Date, ok bool, err error)
	Upsert(ctx context.Context, row *entity.StockCounter) error
}
