// Package search normaliza términos de búsqueda y claves comparables.
// Los catálogos mezclan texto con y sin acentos ("Árbol" vs "arbol"); el
// término se pliega aquí y la columna se pliega en SQL, así la búsqueda se
// comporta igual para ambos.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold recorta espacios, elimina marcas diacríticas y pasa a minúsculas.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if out, _, err := transform.String(unaccent, s); err == nil {
		s = out
	}
	return strings.ToLower(s)
}

// NormalizeSKU deja el SKU en su forma canónica: sin espacios ni acentos y en mayúsculas.
func NormalizeSKU(s string) string {
	return strings.ToUpper(strings.ReplaceAll(Fold(s), " ", ""))
}
