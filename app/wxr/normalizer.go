package wxr

import (
	"regexp"
	"strings"
)

// entityReplacer performs a single pass of whole-token replacement. A
// strings.Replacer never rescans replaced text, so "&amp;lt;" decodes to
// "&lt;" and stops there instead of collapsing to "<".
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
)

var (
	blockMarkerRe    = regexp.MustCompile(`(?s)<!--\s*/?wp:.*?-->`)
	emptyParagraphRe = regexp.MustCompile(`(?i)<p[^>]*>\s*</p>`)
	galleryRe        = regexp.MustCompile(`\[gallery[^\]]*\]`)
	captionRe        = regexp.MustCompile(`(?s)\[caption[^\]]*\](.*?)\[/caption\]`)
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

// DecodeEntities replaces the standard named HTML entities and the
// non-breaking space with their literal characters. Pure function.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// CleanContent normalizes an HTML body exported from the block editor:
// region-marker comments and empty paragraphs are removed, gallery
// shortcodes are dropped (their media cannot be resolved during import),
// caption shortcodes become <figure> wrappers, and runs of three or more
// newlines collapse to two. Pure function.
func CleanContent(s string) string {
	s = blockMarkerRe.ReplaceAllString(s, "")
	s = emptyParagraphRe.ReplaceAllString(s, "")
	s = galleryRe.ReplaceAllString(s, "")
	s = captionRe.ReplaceAllString(s, "<figure>${1}</figure>")
	s = excessNewlinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
