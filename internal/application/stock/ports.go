package stock

import (
	"context"

	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de planillas atado a esa tx. Garantiza que todas las filas de una
// corrida de reconciliación se escriban juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockCounterRepository) error) error
}
