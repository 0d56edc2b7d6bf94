package myjobmag

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Listing-page strategies, most specific first. The first one that matches
// anything wins outright; results are never merged across strategies because
// the broader selectors pick up navigation noise.
var linkSelectors = []string{
	`div.mag-b h2 a[href^="/job/"]`,
	`div.job-listing h2 a[href^="/job/"]`,
	`a[href^="/job/"]`,
}

// CollectJobLinks returns the detail-page hrefs found on the listing page, in
// document order. Duplicates are preserved. When every selector strategy comes
// up empty, it falls back to scanning all anchors for a /job/ path segment.
func CollectJobLinks(doc *goquery.Document) []string {
	for _, selector := range linkSelectors {
		var links []string
		doc.Find(selector).Each(func(_ int, a *goquery.Selection) {
			if href, ok := a.Attr("href"); ok {
				links = append(links, href)
			}
		})
		if len(links) > 0 {
			log.Printf("🔗 Job links found with selector: %s", selector)
			return links
		}
	}

	log.Println("⚠️ Fallback: scanning all anchors for '/job/'")
	var links []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok && strings.Contains(href, "/job/") {
			links = append(links, href)
		}
	})
	return links
}
