package pricing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/barf-backoffice/internal/domain/catalog"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
	"github.com/tu-usuario/barf-backoffice/pkg/logger"
)

// ItemTotal es el desglose por renglón. Resolved=false marca un renglón cuyo
// precio no se pudo resolver; el total general lo excluye y el caller debe
// tratar el resultado como provisorio.
type ItemTotal struct {
	Name          string
	Quantity      int
	UnitPrice     decimal.Decimal
	Subtotal      decimal.Decimal
	Tier          string
	Resolved      bool
	LowConfidence bool
	FailureReason string
}

// OrderTotalResult es el total del pedido con el conteo de renglones sin resolver.
type OrderTotalResult struct {
	Total           decimal.Decimal
	PerItem         []ItemTotal
	UnresolvedCount int
}

// OrderTotalCalculator aplica el resolutor de precios a cada renglón de un
// pedido. La falla de un renglón se registra y se saltea, nunca aborta el total.
type OrderTotalCalculator struct {
	resolver *Resolver
	log      *logger.Logger
}

// NewOrderTotalCalculator construye el calculador de totales.
func NewOrderTotalCalculator(resolver *Resolver, log *logger.Logger) *OrderTotalCalculator {
	return &OrderTotalCalculator{resolver: resolver, log: log}
}

// Calculate suma precio x cantidad por renglón. Si el nombre del renglón es un
// descriptor canónico se parsea; si no, se cae al camino legado que deduce la
// sección desde tokens del nombre libre (marcando baja confianza cuando aplica).
func (c *OrderTotalCalculator) Calculate(
	ctx context.Context,
	items []entity.OrderLineItem,
	buyerType, paymentMethod string,
	asOf entity.Date,
) OrderTotalResult {
	result := OrderTotalResult{
		Total:   decimal.Zero,
		PerItem: make([]ItemTotal, 0, len(items)),
	}

	for _, item := range items {
		qty := item.EffectiveQuantity()
		entry := ItemTotal{Name: item.Name, Quantity: qty}

		in, lowConfidence := c.resolveInput(item, buyerType, paymentMethod, asOf)
		entry.LowConfidence = lowConfidence

		resolved, err := c.resolver.Resolve(ctx, in)
		if err != nil {
			entry.FailureReason = err.Error()
			result.UnresolvedCount++
			result.PerItem = append(result.PerItem, entry)
			c.log.Warn().
				Str("item", item.Name).
				Str("seccion", in.Section).
				Str("producto", in.Product).
				Err(err).
				Msg("renglón sin precio, excluido del total")
			continue
		}

		entry.UnitPrice = resolved.Price
		entry.Tier = resolved.Tier
		entry.Subtotal = resolved.Price.Mul(decimal.NewFromInt(int64(qty)))
		entry.Resolved = true
		result.Total = result.Total.Add(entry.Subtotal)
		result.PerItem = append(result.PerItem, entry)
	}

	return result
}

// knownSection distingue un descriptor canónico de una etiqueta legada que por
// casualidad contiene un guión: solo las secciones del catálogo cuentan.
func knownSection(s string) bool {
	switch s {
	case entity.SectionPerro, entity.SectionGato, entity.SectionOtros, entity.SectionCrudos:
		return true
	}
	return false
}

// resolveInput arma la consulta de precio de un renglón: descriptor canónico si
// lo hay, deducción heurística de sección si no.
func (c *OrderTotalCalculator) resolveInput(
	item entity.OrderLineItem,
	buyerType, paymentMethod string,
	asOf entity.Date,
) (ResolveInput, bool) {
	if parsed, err := catalog.ParseDescriptor(item.Name); err == nil && knownSection(parsed.Section) {
		return ResolveInput{
			Section:       parsed.Section,
			Product:       parsed.Product,
			Weight:        parsed.Weight,
			BuyerType:     buyerType,
			PaymentMethod: paymentMethod,
			AsOf:          asOf,
		}, false
	}

	// Camino legado: etiqueta escrita a mano, sin descriptor estructurado.
	name := catalog.Normalize(item.Name)
	guess := catalog.DeduceSection(name)

	weight := catalog.ExtractWeightToken(name)
	if weight == "" {
		for _, opt := range item.Options {
			if w := catalog.ExtractWeightToken(catalog.Normalize(opt.Name)); w != "" {
				weight = w
				break
			}
		}
	}

	product := catalog.StripWeight(name)
	if guess.Section == entity.SectionPerro || guess.Section == entity.SectionGato {
		product = catalog.StripPrefixes(product, []string{"BOX PERRO", "BOX GATO", "BOX"})
		product = strings.TrimSpace(product)
	}

	return ResolveInput{
		Section:       guess.Section,
		Product:       product,
		Weight:        weight,
		BuyerType:     buyerType,
		PaymentMethod: paymentMethod,
		AsOf:          asOf,
	}, guess.LowConfidence
}
