package document

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sanitize decomposes text (NFKD) and keeps only ASCII. Accented letters
// survive as their base letter; everything else outside ASCII is dropped.
func Sanitize(text string) string {
	decomposed := norm.NFKD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
