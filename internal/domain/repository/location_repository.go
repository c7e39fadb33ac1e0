package repository

import (
	"context"

	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

// LocationRepository define el puerto de lectura de sedes de entrega.
type LocationRepository interface {
	// ListRolloverCandidates devuelve las sedes activas con entrega en el día y
	// hora de corte definida (las únicas que participan del rollover).
	ListRolloverCandidates(ctx context.Context) ([]entity.Location, error)
	GetByName(ctx context.Context, name string) (*entity.Location, error)
}
