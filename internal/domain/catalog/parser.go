package catalog

import (
	"regexp"
	"strings"

	"github.com/tu-usuario/barf-backoffice/internal/domain"
	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

// ParsedProduct es el resultado de parsear un descriptor "SECCION - PRODUCTO - PESO".
// Weight queda vacío cuando el peso va dentro del nombre (huesos, cornalitos) o
// no aplica (box de complementos).
type ParsedProduct struct {
	Section string
	Product string
	Weight  string
}

// Sufijo visual de cantidad que agregan las tablas ("... - x3", "... - 1U").
var qtySuffixRe = regexp.MustCompile(`(?i)\s*-\s*(X\s*\d+|\d+\s*U)\s*$`)

// parseRule es una regla del parser: un predicado sobre los segmentos y la
// transformación a aplicar. Se evalúan en orden de prioridad; la primera que
// aplica gana. Cada regla es testeable por separado.
type parseRule struct {
	name    string
	applies func(segs []string) bool
	apply   func(segs []string) ParsedProduct
}

var parseRules = []parseRule{
	{
		// "BOX PERRO POLLO - 5KG": la sección real es la especie y el producto
		// viene embebido en el primer segmento; el peso, en el segundo.
		name: "box-especie",
		applies: func(segs []string) bool {
			return strings.Contains(segs[0], "BOX") &&
				(strings.Contains(segs[0], entity.SectionPerro) || strings.Contains(segs[0], entity.SectionGato)) &&
				!strings.Contains(segs[0], "COMPLEMENTOS")
		},
		apply: func(segs []string) ParsedProduct {
			section := entity.SectionPerro
			if strings.Contains(segs[0], entity.SectionGato) {
				section = entity.SectionGato
			}
			product := StripPrefixes(segs[0], []string{"BOX " + section, "BOX", section})
			weight := ExtractWeightToken(strings.Join(segs[1:], " "))
			if product == "" {
				// Forma alternativa "BOX PERRO - POLLO - 5KG": el producto es el
				// segundo segmento.
				product = StripWeight(segs[1])
				weight = ExtractWeightToken(strings.Join(segs[2:], " "))
			}
			return ParsedProduct{Section: section, Product: product, Weight: weight}
		},
	},
	{
		// "OTROS - HUESOS CARNOSOS - 5KG" u "OTROS - HUESOS CARNOSOS 5KG":
		// singular a plural y el peso se pliega dentro del nombre.
		name: "huesos-otros",
		applies: func(segs []string) bool {
			return segs[0] == entity.SectionOtros && isBoneProduct(segs[1])
		},
		apply: func(segs []string) ParsedProduct {
			return ParsedProduct{
				Section: entity.SectionOtros,
				Product: foldBoneWeight(segs[1], segs[2:]),
			}
		},
	},
	{
		// Forma legada sin prefijo OTROS: "HUESOS CARNOSOS - 5KG".
		name: "huesos-legado",
		applies: func(segs []string) bool {
			return isBoneProduct(segs[0])
		},
		apply: func(segs []string) ParsedProduct {
			return ParsedProduct{
				Section: entity.SectionOtros,
				Product: foldBoneWeight(segs[0], segs[1:]),
			}
		},
	},
	{
		// El box de complementos no tiene peso ni variante; el sufijo "1U" es
		// solo visual y se descarta.
		name: "box-complementos",
		applies: func(segs []string) bool {
			return strings.Contains(segs[0], "BOX DE COMPLEMENTOS") ||
				(len(segs) > 1 && strings.Contains(segs[1], "BOX DE COMPLEMENTOS"))
		},
		apply: func(segs []string) ParsedProduct {
			return ParsedProduct{Section: entity.SectionOtros, Product: "BOX DE COMPLEMENTOS"}
		},
	},
	{
		// Cornalitos llevan el peso dentro del nombre: se fuerza Weight vacío
		// aunque el descriptor traiga segmento de peso.
		name: "cornalitos",
		applies: func(segs []string) bool {
			return strings.Contains(segs[1], "CORNALITOS")
		},
		apply: func(segs []string) ParsedProduct {
			return ParsedProduct{Section: segs[0], Product: segs[1]}
		},
	},
}

// ParseDescriptor separa un descriptor formateado "SECCION - PRODUCTO - PESO"
// en sus componentes, aplicando las reglas de casos especiales en orden de
// prioridad. Devuelve MalformedDescriptorError si hay menos de dos segmentos.
func ParseDescriptor(raw string) (ParsedProduct, error) {
	cleaned := qtySuffixRe.ReplaceAllString(Normalize(raw), "")

	var segs []string
	for _, part := range strings.Split(cleaned, "-") {
		if p := strings.TrimSpace(part); p != "" {
			segs = append(segs, p)
		}
	}
	if len(segs) < 2 {
		return ParsedProduct{}, &domain.MalformedDescriptorError{Descriptor: raw}
	}

	for _, rule := range parseRules {
		if rule.applies(segs) {
			return rule.apply(segs), nil
		}
	}

	out := ParsedProduct{Section: segs[0], Product: segs[1]}
	if len(segs) > 2 {
		out.Weight = ExtractWeightToken(segs[2])
	}
	return out, nil
}

// isBoneProduct reconoce "HUESOS CARNOSOS" y el singular legado "HUESO CARNOSO".
func isBoneProduct(s string) bool {
	return strings.Contains(s, "HUESOS CARNOSOS") || strings.Contains(s, "HUESO CARNOSO")
}

// foldBoneWeight normaliza el nombre de hueso a plural y pliega el peso dentro
// del nombre del producto ("HUESOS CARNOSOS 5KG"), dejando Weight vacío.
func foldBoneWeight(product string, rest []string) string {
	out := product
	if !strings.Contains(out, "HUESOS CARNOSOS") {
		out = strings.Replace(out, "HUESO CARNOSO", "HUESOS CARNOSOS", 1)
	}
	if ExtractWeightToken(out) == "" {
		if w := ExtractWeightToken(strings.Join(rest, " ")); w != "" {
			out = out + " " + w
		}
	}
	return out
}
