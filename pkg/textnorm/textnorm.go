package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper descompone el texto (NFD) y elimina las marcas diacríticas.
// Así "ñ" se convierte en "n" y "á" en "a" de forma determinista,
// sin depender de ninguna configuración regional.
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize convierte un texto a su forma de comparación: minúsculas,
// sin tildes y sin espacios al borde. Se aplica tanto al valor guardado
// (columna comuna_norm) como al valor consultado, para que "Ñuñoa",
// "NUÑOA" y "nunoa" coincidan entre sí.
func Normalize(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	stripped, _, err := transform.String(stripper, lowered)
	if err != nil {
		// Entrada con bytes inválidos: devolvemos al menos la versión en minúsculas.
		return lowered
	}
	return stripped
}
