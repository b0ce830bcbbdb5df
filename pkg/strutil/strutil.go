package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold normaliza un término de búsqueda: minúsculas, sin tildes ni diacríticos.
// "Żubrówka" y "zubrowka" producen el mismo resultado.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// FoldedContains indica si haystack contiene needle ignorando mayúsculas y diacríticos.
func FoldedContains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
