package repository

import (
	"context"
	"fmt"

	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

// PriceQuery describe una variante de búsqueda de precio. IgnoreWeight habilita
// el fallback flexible: se ignora el peso por completo (catálogos cargados antes
// de que existiera granularidad de peso).
type PriceQuery struct {
	Section      string
	Product      string
	Weight       string
	Tier         string
	AsOf         entity.Date
	IgnoreWeight bool
}

// String devuelve una descripción legible de la variante, usada en
// PriceNotFoundError.Tried para diagnosticar huecos del catálogo.
func (q PriceQuery) String() string {
	if q.IgnoreWeight {
		return fmt.Sprintf("%s/%s tarifa=%s al=%s (sin peso)", q.Section, q.Product, q.Tier, q.AsOf)
	}
	return fmt.Sprintf("%s/%s peso=%q tarifa=%s al=%s", q.Section, q.Product, q.Weight, q.Tier, q.AsOf)
}

// PriceRecordRepository define el puerto de consulta del libro de precios versionado.
type PriceRecordRepository interface {
	// FindApplicable devuelve el registro activo con mayor EffectiveDate <= AsOf
	// que satisface la variante, desempatando por creación más reciente.
	// Devuelve nil (sin error) cuando ninguno aplica.
	FindApplicable(ctx context.Context, q PriceQuery) (*entity.PriceRecord, error)
	// Insert agrega un registro nuevo al libro; nunca muta los históricos.
	Insert(ctx context.Context, record *entity.PriceRecord) error
}
