package repository

import (
	"context"

	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

// OrderRepository define el puerto de lectura de pedidos. El motor solo lee:
// los pedidos se crean y editan en el flujo de checkout, fuera de este núcleo.
type OrderRepository interface {
	// ListByLocationAndDate devuelve los pedidos de una sede para una fecha de
	// entrega, con sus renglones y opciones, en un único snapshot consistente.
	ListByLocationAndDate(ctx context.Context, location string, date entity.Date) ([]entity.Order, error)
}
