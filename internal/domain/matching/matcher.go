// Package matching resuelve cuántas unidades de un producto del catálogo se
// vendieron dentro de un conjunto de pedidos, casando renglones de texto libre
// contra la identidad canónica (sección, producto, peso).
//
// MatchedQuantity es una reducción pura: mismos insumos, misma suma; sin I/O y
// sin dependencia del orden de pedidos o renglones. Un renglón que no casa con
// ninguna estrategia suma cero y se excluye en silencio: la demanda no
// reconocida es invisible para el stock, por decisión del negocio.
package matching

import (
	"strings"

	"github.com/tu-usuario/barf-backoffice/internal/domain/catalog"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

// Prefijos a remover para extraer el "sabor" de un renglón estándar. Los pases
// de fallback agregan prefijos de proveedor (BARF/, MEDALLONES/) que la primera
// pasada no toca.
var prefixPasses = [][]string{
	{"BOX PERRO", "BOX GATO", "BOX", "PERRO", "GATO"},
	{"BARF/", "BARF", "BOX PERRO", "BOX GATO", "BOX", "PERRO", "GATO"},
	{"MEDALLONES/", "MEDALLONES", "BARF/", "BARF", "BOX PERRO", "BOX GATO", "BOX", "PERRO", "GATO"},
}

// MatchedQuantity devuelve el total de unidades de los renglones de orders que
// refieren al producto product. Renglones sin match suman cero; no es un error.
func MatchedQuantity(product entity.CatalogProduct, orders []entity.Order) int {
	total := 0
	for _, order := range orders {
		for _, item := range order.Items {
			if Matches(product, item) {
				total += item.EffectiveQuantity()
			}
		}
	}
	return total
}

// Matches decide si un renglón refiere al producto del catálogo.
func Matches(product entity.CatalogProduct, item entity.OrderLineItem) bool {
	baseName := catalog.Normalize(item.Name)
	if !sectionCompatible(product, baseName) {
		return false
	}
	if product.IsBigDog() {
		return matchBigDog(product, item, baseName)
	}
	return matchRegular(product, item, baseName)
}

// sectionCompatible aplica el filtro de especie y la paridad BIG DOG:
//   - catálogo GATO: el nombre base debe mencionar GATO;
//   - catálogo PERRO: el nombre base no debe mencionar GATO, y un producto
//     BIG DOG solo acumula renglones BIG DOG (y viceversa);
//   - OTROS y CRUDOS no filtran por especie.
func sectionCompatible(product entity.CatalogProduct, baseName string) bool {
	switch product.Section {
	case entity.SectionGato:
		return strings.Contains(baseName, entity.SectionGato)
	case entity.SectionPerro:
		if strings.Contains(baseName, entity.SectionGato) {
			return false
		}
		return strings.Contains(baseName, "BIG DOG") == product.IsBigDog()
	default:
		return true
	}
}

// matchBigDog casa renglones de la línea BIG DOG. El sabor suele venir en una
// opción y no en el nombre base, así que primero se buscan las opciones contra
// el identificador completo del catálogo ("BIG DOG VACA 15KG"). El fallback
// compara nombres limpios con exclusividad de sabor: un SKU a granel sin sabor
// no absorbe ventas saborizadas ni al revés.
func matchBigDog(product entity.CatalogProduct, item entity.OrderLineItem, baseName string) bool {
	identifier := catalog.Normalize(product.Identifier())
	for _, opt := range item.Options {
		if f := FlavorIn(catalog.Normalize(opt.Name)); f != "" && strings.Contains(identifier, f) {
			return true
		}
	}

	cleanItem := catalog.StripWeight(baseName)
	cleanCat := catalog.StripWeight(catalog.Normalize(product.Product))
	catFlavor := FlavorIn(cleanCat)
	if catFlavor != "" {
		if !strings.Contains(cleanItem, catFlavor) {
			return false
		}
	} else if FlavorIn(cleanItem) != "" {
		return false
	}
	if !namesRelated(cleanItem, cleanCat) {
		return false
	}
	return weightsCompatible(product.Weight, itemWeight(item, baseName))
}

// matchRegular casa renglones estándar (box, huesos, complementos). El peso es
// estricto: si cualquiera de los dos lados declara peso, deben coincidir; la
// ausencia en ambos también cuenta como coincidencia. Cuando el catálogo declara
// peso explícito, el sabor extraído debe igualar exactamente al producto (evita
// que "POLLO CON VEGETALES" caiga en la fila "POLLO 10KG"). Las pasadas
// sucesivas relajan los prefijos de proveedor antes de descartar el renglón.
func matchRegular(product entity.CatalogProduct, item entity.OrderLineItem, baseName string) bool {
	catWeight := product.Weight
	if catWeight == "" {
		// Huesos y snacks llevan el peso dentro del nombre canónico.
		catWeight = catalog.ExtractWeightToken(product.Product)
	}
	if !weightsCompatible(catWeight, itemWeight(item, baseName)) {
		return false
	}

	cleanItem := catalog.StripWeight(baseName)
	cleanCat := catalog.StripWeight(catalog.Normalize(product.Product))

	for _, prefixes := range prefixPasses {
		flavor := catalog.StripWeight(catalog.StripPrefixes(cleanItem, prefixes))
		if product.Weight != "" {
			if flavor == cleanCat {
				return true
			}
			continue
		}
		if cleanItem == cleanCat || containsEither(cleanItem, cleanCat) || flavor == cleanCat {
			return true
		}
	}
	return false
}

// itemWeight extrae el token de peso del renglón completo: nombre más opciones.
func itemWeight(item entity.OrderLineItem, baseName string) string {
	if w := catalog.ExtractWeightToken(baseName); w != "" {
		return w
	}
	for _, opt := range item.Options {
		if w := catalog.ExtractWeightToken(catalog.Normalize(opt.Name)); w != "" {
			return w
		}
	}
	return ""
}

// weightsCompatible exige igualdad exacta cuando algún lado declara peso; la
// ausencia en ambos lados es en sí misma una coincidencia.
func weightsCompatible(catWeight, itemW string) bool {
	if catWeight == "" && itemW == "" {
		return true
	}
	return catWeight == itemW
}

func namesRelated(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
