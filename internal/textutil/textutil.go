// Small text helpers shared by the extraction pipeline.
// Field lookups must never panic on missing markup, so everything
// here degrades to "" instead of erroring.

package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var emailRegex = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

// CleanText collapses whitespace runs (incl. NBSP) to single spaces and trims.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ExtractText returns the cleaned text content of a selection, or "" when the
// selection is nil or matched nothing. Text nodes are joined with spaces so
// words separated only by tags don't run together.
func ExtractText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for _, n := range sel.Nodes {
		appendText(n, &b)
	}
	return CleanText(b.String())
}

func appendText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(c, b)
	}
}

// ExtractEmail returns the first email-shaped substring in text, or "".
// Only the leftmost match is used.
func ExtractEmail(text string) string {
	return emailRegex.FindString(text)
}

// Slugify lower-cases a title, folds diacritics, joins words with hyphens and
// truncates to 50 runes. A word cut by the truncation stays cut.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}
	slug := strings.Join(strings.Fields(strings.ToLower(folded)), "-")
	if r := []rune(slug); len(r) > 50 {
		slug = string(r[:50])
	}
	return slug
}
