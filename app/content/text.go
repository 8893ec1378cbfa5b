package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ellipsis = "…"

// Summarize extracts the plain text of an HTML fragment and truncates it to
// at most maxRunes runes, cutting at a word boundary where possible. Used to
// derive excerpts for posts that were exported without one.
func Summarize(html string, maxRunes int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if text == "" {
		return ""
	}

	r := []rune(text)
	if len(r) <= maxRunes {
		return text
	}

	truncated := string(r[:maxRunes])
	if idx := strings.LastIndex(truncated, " "); idx > 0 {
		truncated = truncated[:idx]
	}

	return truncated + ellipsis
}
