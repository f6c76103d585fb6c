package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks, so "São José" becomes "Sao Jose".
// Characters without a decomposition are left untouched.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// FoldUpper strips diacritics, trims surrounding spaces and uppercases s.
func FoldUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(StripDiacritics(s)))
}
