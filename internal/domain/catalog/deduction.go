package catalog

import (
	"strings"

	"github.com/tu-usuario/barf-backoffice/internal/domain/entity"
)

// DeductionTableVersion se incrementa cada vez que cambia la tabla de deducción,
// para poder auditar con qué reglas se clasificó un pedido legado.
const DeductionTableVersion = 3

// DeductionRule deduce la sección de un producto a partir de un token del nombre
// libre, cuando el renglón no trae descriptor estructurado. Las reglas se evalúan
// en orden; LowConfidence marca deducciones heurísticas que el caller debe
// señalar en vez de aceptar en silencio.
type DeductionRule struct {
	Token         string
	Section       string
	LowConfidence bool
}

// SectionGuess es el resultado de la deducción.
type SectionGuess struct {
	Section       string
	LowConfidence bool
}

var deductionRules = []DeductionRule{
	{Token: "HUESO", Section: entity.SectionOtros},
	{Token: "COMPLEMENTOS", Section: entity.SectionOtros},
	{Token: "CORNALITO", Section: entity.SectionCrudos},
	{Token: "BARF", Section: entity.SectionCrudos},
	{Token: "MEDALLON", Section: entity.SectionCrudos},
	{Token: "BIG DOG", Section: entity.SectionPerro},
	{Token: "GATO", Section: entity.SectionGato},
	{Token: "PERRO", Section: entity.SectionPerro},
	// Cola heurística: nombres de sabor sueltos casi siempre son box de perro,
	// pero un producto nuevo fuera del vocabulario puede caer mal clasificado.
	{Token: "", Section: entity.SectionPerro, LowConfidence: true},
}

// DeduceSection infiere la sección de un nombre libre ya normalizado.
// Solo se usa en el camino legado, cuando el renglón no trae descriptor.
func DeduceSection(normalizedName string) SectionGuess {
	for _, r := range deductionRules {
		if r.Token == "" || strings.Contains(normalizedName, r.Token) {
			return SectionGuess{Section: r.Section, LowConfidence: r.LowConfidence}
		}
	}
	return SectionGuess{Section: entity.SectionPerro, LowConfidence: true}
}
