package textutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
)

func selection(t *testing.T, html, selector string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc.Find(selector)
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		selector string
		expected string
	}{
		{
			name:     "simple paragraph",
			html:     `<p>  Software Engineer  </p>`,
			selector: "p",
			expected: "Software Engineer",
		},
		{
			name:     "words split by tags do not run together",
			html:     `<p>Backend<b>Engineer</b>at Acme</p>`,
			selector: "p",
			expected: "Backend Engineer at Acme",
		},
		{
			name:     "missing node yields empty string",
			html:     `<p>hello</p>`,
			selector: "div.nope",
			expected: "",
		},
		{
			name:     "whitespace runs collapse",
			html:     "<p>a\n\t  b   c</p>",
			selector: "p",
			expected: "a b c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractText(selection(t, tt.html, tt.selector)))
		})
	}
}

func TestExtractTextNilSelection(t *testing.T) {
	assert.Equal(t, "", ExtractText(nil))
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"no email", "apply via the form below", ""},
		{"one email", "send your CV to jobs@acme.com today", "jobs@acme.com"},
		{"two emails takes leftmost", "hr@first.org or backup@second.io", "hr@first.org"},
		{"dotted local part", "contact jane.doe-smith@mail.example.co.uk now", "jane.doe-smith@mail.example.co.uk"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractEmail(tt.text))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"basic", "Senior Backend Engineer", "senior-backend-engineer"},
		{"extra whitespace", "  Data   Analyst ", "data-analyst"},
		{"diacritics folded", "Ingénieur Logiciel", "ingenieur-logiciel"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}

func TestSlugifyTruncatesAt50(t *testing.T) {
	long := strings.Repeat("very long title ", 10)
	slug := Slugify(long)

	assert.LessOrEqual(t, len([]rune(slug)), 50)
	assert.Equal(t, strings.ToLower(slug), slug)
	assert.NotContains(t, slug, " ")
}
