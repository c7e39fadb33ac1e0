// Package catalog contiene los servicios de dominio del catálogo: normalización
// de texto libre, parseo de descriptores y deducción de sección legada.
package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// "5KG", "7.5 KG", "(15kg)", con o sin paréntesis.
	weightRe = regexp.MustCompile(`(?i)\(?\s*(\d+(?:[.,]\d+)?)\s*KG\s*\)?`)

	spacesRe = regexp.MustCompile(`\s+`)

	// NFD -> quitar marcas diacríticas -> NFC. "JAMÓN" y "JAMON" comparan igual.
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize lleva el texto a la forma canónica de comparación: mayúsculas,
// sin tildes, sin espacios repetidos ni bordes.
func Normalize(s string) string {
	folded, _, err := transform.String(deaccent, s)
	if err != nil {
		folded = s
	}
	upper := strings.ToUpper(folded)
	return strings.TrimSpace(spacesRe.ReplaceAllString(upper, " "))
}

// StripWeight elimina todos los tokens de peso ("5KG", "(15 kg)") y devuelve el
// resto normalizado en espacios, sin separadores colgantes en los bordes.
// Nunca falla; puede devolver cadena vacía.
func StripWeight(s string) string {
	out := spacesRe.ReplaceAllString(weightRe.ReplaceAllString(s, " "), " ")
	return strings.Trim(out, " -/")
}

// ExtractWeightToken devuelve el primer token de peso en forma canónica sin
// espacios ni paréntesis ("5KG", "7.5KG"), o cadena vacía si no hay.
func ExtractWeightToken(s string) string {
	m := weightRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.ReplaceAll(m[1], ",", ".") + "KG"
}

// StripPrefixes quita del comienzo, repetidamente, cualquiera de los prefijos
// conocidos (y separadores sobrantes). El orden de prefixes importa: los más
// largos deben ir primero para que "BOX PERRO" gane sobre "BOX".
func StripPrefixes(s string, prefixes []string) string {
	out := strings.TrimSpace(s)
	for {
		trimmed := false
		for _, p := range prefixes {
			if strings.HasPrefix(out, p) {
				out = strings.TrimSpace(strings.TrimLeft(strings.TrimPrefix(out, p), "/- "))
				trimmed = true
				break
			}
		}
		if !trimmed {
			return out
		}
	}
}
