package matching

import "strings"

// Sabores conocidos de la línea BIG DOG y de los box estándar. El orden importa
// solo para FlavorIn (primer token contenido gana).
var flavorTokens = []string{
	"POLLO",
	"VACA",
	"CORDERO",
	"CERDO",
	"CONEJO",
	"PAVO",
	"MIX",
}

// FlavorIn devuelve el primer sabor conocido contenido en s (ya normalizado),
// o cadena vacía si no hay ninguno.
func FlavorIn(s string) string {
	for _, f := range flavorTokens {
		if strings.Contains(s, f) {
			return f
		}
	}
	return ""
}
