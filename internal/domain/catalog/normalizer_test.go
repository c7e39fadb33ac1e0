package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/barf-backoffice/internal/domain/catalog"
)

// TestNormalize_CanonizaTexto verifica la forma canónica de comparación:
// mayúsculas, sin tildes, espacios colapsados. "JAMÓN" y "jamon" deben comparar
// igual porque los pedidos llegan escritos de cualquier manera.
func TestNormalize_CanonizaTexto(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"  box   perro  pollo ", "BOX PERRO POLLO"},
		{"Jamón de Cerdo", "JAMON DE CERDO"},
		{"BIG DOG (15kg)", "BIG DOG (15KG)"},
		{"salmón  ahumado", "SALMON AHUMADO"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, catalog.Normalize(c.entrada), "entrada: %q", c.entrada)
	}
}

func TestExtractWeightToken_FormasDePeso(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"BOX PERRO POLLO - 5KG", "5KG"},
		{"BIG DOG (15KG)", "15KG"},
		{"CORDERO 7.5 KG", "7.5KG"},
		{"CORDERO 7,5KG", "7.5KG"}, // coma decimal canonizada a punto
		{"BOX DE COMPLEMENTOS", ""},
		{"CORNALITOS 500G", ""}, // gramos no son token de peso
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, catalog.ExtractWeightToken(c.entrada), "entrada: %q", c.entrada)
	}
}

// TestStripWeight_SinSeparadoresColgantes: al quitar el peso no deben quedar
// guiones ni barras sueltas en los bordes, porque el resultado se compara por
// igualdad exacta en el matcher.
func TestStripWeight_SinSeparadoresColgantes(t *testing.T) {
	assert.Equal(t, "BOX PERRO POLLO", catalog.StripWeight("BOX PERRO POLLO - 5KG"))
	assert.Equal(t, "BIG DOG", catalog.StripWeight("BIG DOG (15KG)"))
	assert.Equal(t, "POLLO", catalog.StripWeight("5KG - POLLO - 10KG"), "quita todos los tokens de peso")
	assert.Equal(t, "", catalog.StripWeight("5KG"))
}

func TestStripPrefixes_OrdenYRepeticion(t *testing.T) {
	prefijos := []string{"BOX PERRO", "BOX GATO", "BOX", "PERRO", "GATO"}

	assert.Equal(t, "POLLO", catalog.StripPrefixes("BOX PERRO POLLO", prefijos))
	assert.Equal(t, "VACA", catalog.StripPrefixes("BOX GATO VACA", prefijos))
	// Se quita en forma repetida: "BOX" y luego "PERRO".
	assert.Equal(t, "CORDERO", catalog.StripPrefixes("BOX - PERRO CORDERO", prefijos))
	assert.Equal(t, "SIN PREFIJO", catalog.StripPrefixes("SIN PREFIJO", prefijos))
}

func TestStripPrefixes_PrefijosDeProveedor(t *testing.T) {
	prefijos := []string{"BARF/", "BARF", "BOX PERRO", "BOX"}
	assert.Equal(t, "POLLO", catalog.StripPrefixes("BARF/POLLO", prefijos))
	assert.Equal(t, "POLLO", catalog.StripPrefixes("BARF/ POLLO", prefijos))
}
