package myjobmag

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-jobmag-scraper/internal/textutil"
)

const (
	bullet             = "• "
	descriptionHeader  = "📝 **Job Description:**"
	requirementsHeader = "📌 **Requirements:**"
)

var leadingBulletRegex = regexp.MustCompile(`^\s*[-*•]\s*`)

// FormatDetails splits a job-details block into a description block and a
// requirements block. Lines are collected from p/li descendants in document
// order; the first line containing "requirement" (any case) flips the mode and
// is itself dropped. Either block renders empty when it has no lines.
func FormatDetails(block *goquery.Selection) (description, requirements string) {
	var lines []string
	block.Find("p, li").Each(func(_ int, tag *goquery.Selection) {
		text := textutil.ExtractText(tag)
		if text == "" {
			return
		}
		line := leadingBulletRegex.ReplaceAllString(text, bullet)
		lines = append(lines, textutil.CleanText(line))
	})

	var descLines, reqLines []string
	inRequirements := false
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "requirement") {
			// the separator line belongs to neither block
			inRequirements = true
			continue
		}
		if inRequirements {
			reqLines = append(reqLines, line)
		} else {
			descLines = append(descLines, line)
		}
	}

	return renderBlock(descriptionHeader, descLines), renderBlock(requirementsHeader, reqLines)
}

func renderBlock(header string, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	bulleted := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, "•") {
			bulleted[i] = line
		} else {
			bulleted[i] = bullet + line
		}
	}
	return strings.TrimSpace(header + "\n" + strings.Join(bulleted, "\n"))
}
