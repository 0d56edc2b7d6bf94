// Detail-page field extraction for myjobmag.com.
// Every lookup tolerates missing markup: an absent element yields an empty
// field, never an aborted record. The only hard rule is the contact check:
// a posting with neither an application email nor a URL is not actionable.

package myjobmag

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"go-jobmag-scraper/internal/scraper"
	"go-jobmag-scraper/internal/textutil"
)

// ExtractJob assembles a Record from one parsed detail page. The second
// return value is false when the page has no contact info and must be skipped.
func ExtractJob(doc *goquery.Document, baseURL string) (*scraper.Record, bool) {
	title, company := splitTitle(textutil.ExtractText(doc.Find("h1").First()))
	tagline := extractTagline(doc)

	var location, qualification, experience, jobType, field, salary, expires string
	doc.Find("ul.job-key-info li").Each(func(_ int, li *goquery.Selection) {
		key := strings.ToLower(textutil.ExtractText(li.Find("span.jkey-title")))
		val := textutil.ExtractText(li.Find("span.jkey-info"))
		// classification order is fixed; first matching keyword wins
		switch {
		case strings.Contains(key, "location"):
			location = val
		case strings.Contains(key, "qualification"):
			qualification = val
		case strings.Contains(key, "experience"):
			experience = val
		case strings.Contains(key, "job type"):
			jobType = val
		case strings.Contains(key, "field"):
			field = val
		case strings.Contains(key, "salary"):
			salary = val
		case strings.Contains(key, "deadline"), strings.Contains(key, "expires"):
			expires = val
		}
	})

	var description, requirements string
	if details := doc.Find("div.job-details").First(); details.Length() > 0 {
		description, requirements = FormatDetails(details)
	}

	email, appURL := extractApplication(doc, baseURL)
	if email == "" && appURL == "" {
		return nil, false
	}

	postTitle := title
	if company != "" {
		postTitle += " at " + company
	}
	if location != "" {
		postTitle += " in " + location
	}

	content := strings.TrimSpace(fmt.Sprintf(
		"🏢 **Company:** %s\n\n"+
			"📍 **Location:** %s\n\n"+
			"🎓 **Qualification:** %s\n\n"+
			"⏳ **Experience:** %s\n\n"+
			"💼 **Job Type:** %s\n\n"+
			"💰 **Salary:** %s\n\n"+
			"🔬 **Field:** %s\n\n"+
			"%s\n\n"+
			"%s",
		company, location, qualification, experience, jobType, salary, field,
		description, requirements,
	))

	return &scraper.Record{
		PostTitle:              postTitle,
		Company:                company,
		CompanyTagline:         tagline,
		JobLocation:            location,
		JobType:                jobType,
		JobSalary:              salary,
		JobExpires:             expires,
		JobCategory:            field,
		RequiredQualifications: qualification,
		SkillsRequired:         "",
		ApplicationURL:         appURL,
		ApplicationEmail:       email,
		Slug:                   textutil.Slugify(title),
		PostCategory:           "job",
		PostTag:                field,
		Subcategory:            field,
		PostContent:            content,
	}, true
}

// splitTitle splits an h1 like "Backend Engineer at Acme" into title and
// company. Without an " at " the whole heading is the title.
func splitTitle(heading string) (title, company string) {
	parts := strings.SplitN(heading, " at ", 2)
	title = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		company = strings.TrimSpace(parts[1])
	}
	return title, company
}

// extractTagline prefers the company-details container; failing that it takes
// the first paragraph after the "Read more about ..." link.
func extractTagline(doc *goquery.Document) string {
	if div := doc.Find("div.company-details").First(); div.Length() > 0 {
		return textutil.ExtractText(div.Find("p").First())
	}
	about := doc.Find("a").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return strings.Contains(a.Text(), "Read more about")
	}).First()
	if about.Length() == 0 {
		return ""
	}
	if p := nextElement(about.Nodes[0], "p"); p != nil {
		return textutil.ExtractText(goquery.NewDocumentFromNode(p).Selection)
	}
	return ""
}

// extractApplication reads the block following the application-method heading:
// first email-shaped substring in its text plus the first outbound link.
// Relative links are resolved against the site base URL.
func extractApplication(doc *goquery.Document, baseURL string) (email, appURL string) {
	heading := doc.Find("h2#application-method").First()
	if heading.Length() == 0 {
		return "", ""
	}
	div := nextElement(heading.Nodes[0], "div")
	if div == nil {
		return "", ""
	}
	block := goquery.NewDocumentFromNode(div)
	email = textutil.ExtractEmail(textutil.ExtractText(block.Selection))
	if a := block.Find("a[href]").First(); a.Length() > 0 {
		href, _ := a.Attr("href")
		if strings.HasPrefix(href, "/") {
			appURL = baseURL + href
		} else {
			appURL = href
		}
	}
	return email, appURL
}

// nextElement returns the first element with the given tag that follows n in
// document order, descending into children first.
func nextElement(n *html.Node, tag string) *html.Node {
	for cur := nextNode(n); cur != nil; cur = nextNode(cur) {
		if cur.Type == html.ElementNode && cur.Data == tag {
			return cur
		}
	}
	return nil
}

func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
