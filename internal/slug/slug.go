// Package slug derives URL path identifiers from game titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make lowercases title, strips diacritics and collapses every run of
// characters that are not letters or digits into a single hyphen. Leading
// and trailing hyphens are dropped, so "  Half-Life: Alyx " becomes
// "half-life-alyx". A title without letters or digits yields "".
func Make(title string) string {
	folded, _, err := transform.String(newFolder(), title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))
	gap := false
	for _, r := range strings.ToLower(folded) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte('-')
		}
		gap = false
		b.WriteRune(r)
	}
	return b.String()
}

// Transformers are stateful, so each call gets its own chain.
func newFolder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
