// Package pricing resuelve precios unitarios contra el libro de precios
// versionado y calcula totales de pedido tolerantes a fallas parciales.
package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/barf-backoffice/internal/domain"
	"github.com/tu-usuario/barf-backoffice/internal/domain/catalog"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/internal/domain/repository"
	"github.com/tu-usuario/barf-backoffice/pkg/logger"
)

// Productos que se venden solo a tarifa mayorista, pida quien pida. Tokens
// sobre el nombre canónico ya normalizado.
var wholesaleOnlyTokens = []string{
	"CORNALITOS",
	"MEDALLONES",
}

// ResolveInput identifica el producto y el contexto comercial de la consulta.
// AsOf debe venir ya calculada en el borde como fecha civil del negocio.
type ResolveInput struct {
	Section       string
	Product       string
	Weight        string
	BuyerType     string
	PaymentMethod string
	AsOf          entity.Date
}

// ResolvedPrice es el resultado con procedencia: el registro que aplicó y si se
// usó el fallback sin peso.
type ResolvedPrice struct {
	Price        decimal.Decimal
	Tier         string
	Record       *entity.PriceRecord
	UsedFallback bool
}

// Resolver resuelve el precio unitario vigente para una identidad de catálogo,
// un tipo de comprador y una fecha.
type Resolver struct {
	prices repository.PriceRecordRepository
	log    *logger.Logger
}

// NewResolver construye el resolutor de precios.
func NewResolver(prices repository.PriceRecordRepository, log *logger.Logger) *Resolver {
	return &Resolver{prices: prices, log: log}
}

// SelectTier elige la tarifa: mayorista manda; si no, efectivo va a EFECTIVO y
// cualquier otro medio a TRANSFERENCIA. Los productos solo-mayorista fuerzan
// MAYORISTA sin importar el comprador.
func SelectTier(product, buyerType, paymentMethod string) string {
	normalized := catalog.Normalize(product)
	for _, token := range wholesaleOnlyTokens {
		if strings.Contains(normalized, token) {
			return entity.TierMayorista
		}
	}
	if strings.EqualFold(buyerType, entity.BuyerMayorista) {
		return entity.TierMayorista
	}
	if strings.EqualFold(paymentMethod, entity.PaymentEfectivo) {
		return entity.TierEfectivo
	}
	return entity.TierTransferencia
}

// Resolve busca el precio vigente a la fecha. Primero intenta la variante con
// peso exacto; si nada aplica reintenta una única vez ignorando el peso
// (catálogos anteriores a la granularidad de peso). Si tampoco aplica devuelve
// PriceNotFoundError con las variantes intentadas.
//
// Los productos de la sección CRUDOS se rechazan de plano para compradores no
// mayoristas: es política comercial, no un hueco del catálogo.
func (r *Resolver) Resolve(ctx context.Context, in ResolveInput) (*ResolvedPrice, error) {
	section := catalog.Normalize(in.Section)
	product := catalog.Normalize(in.Product)

	if section == entity.SectionCrudos && !strings.EqualFold(in.BuyerType, entity.BuyerMayorista) {
		return nil, &domain.RestrictedProductError{
			Section:   section,
			Product:   product,
			BuyerType: in.BuyerType,
		}
	}

	tier := SelectTier(product, in.BuyerType, in.PaymentMethod)

	queries := []repository.PriceQuery{
		{Section: section, Product: product, Weight: in.Weight, Tier: tier, AsOf: in.AsOf},
		{Section: section, Product: product, Tier: tier, AsOf: in.AsOf, IgnoreWeight: true},
	}

	tried := make([]string, 0, len(queries))
	for i, q := range queries {
		record, err := r.prices.FindApplicable(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("buscar precio: %w", err)
		}
		tried = append(tried, q.String())
		if record != nil {
			return &ResolvedPrice{
				Price:        record.Price,
				Tier:         tier,
				Record:       record,
				UsedFallback: i > 0,
			}, nil
		}
	}

	return nil, &domain.PriceNotFoundError{
		Section: section,
		Product: product,
		Weight:  in.Weight,
		Tier:    tier,
		Tried:   tried,
	}
}
