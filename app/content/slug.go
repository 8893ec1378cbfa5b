package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented characters and strips the combining marks,
// so "Crème Brûlée" folds to "Creme Brulee".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a display name.
func Slugify(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}

	slug := strings.ToLower(folded)
	slug = nonSlugRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
