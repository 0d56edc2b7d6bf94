// Crawl orchestration: one listing pass, then the first LinkCap detail pages
// in sequence. A failed page is logged and skipped, never retried; only a
// missing browser session or an empty listing stop the run.

package crawler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/PuerkitoBio/goquery"

	"go-jobmag-scraper/internal/config"
	"go-jobmag-scraper/internal/scraper"
	"go-jobmag-scraper/internal/scraper/myjobmag"
	"go-jobmag-scraper/utils"
)

// ErrNoLinks means the listing page yielded no detail links at all. The run
// ends early and no output file is written.
var ErrNoLinks = errors.New("no job links found on listing page")

// Session is the browser capability the crawler needs. Tests substitute a
// fixture-backed fake; production uses browser.PageSession.
type Session interface {
	Navigate(url string) error
	WaitForBody(timeout time.Duration) error
	Content() (string, error)
}

type Crawler struct {
	cfg     *config.Config
	session Session
	limiter *rate.Limiter

	// Delay runs after every detail page, success or failure. Overridable so
	// tests don't pay real wall-clock pauses.
	Delay func()
}

func New(cfg *config.Config, session Session) *Crawler {
	lim := rate.NewLimiter(rate.Inf, 1)
	if cfg.DelayMinMS > 0 {
		// floor between navigations; the random jitter rides on top
		lim = rate.NewLimiter(rate.Every(time.Duration(cfg.DelayMinMS)*time.Millisecond), 1)
	}
	return &Crawler{
		cfg:     cfg,
		session: session,
		limiter: lim,
		Delay: func() {
			utils.RandomDelay(cfg.DelayMinMS, cfg.DelayMaxMS)
		},
	}
}

// Run executes the whole crawl and returns the batch of actionable records.
// An empty (but non-nil-error) result means every visited page was either
// broken or lacked contact info.
func (c *Crawler) Run(ctx context.Context) ([]scraper.Record, error) {
	log.Printf("🚀 Opening jobs page: %s", c.cfg.JobsURL())
	doc, err := c.loadPage(c.cfg.JobsURL())
	if err != nil {
		return nil, fmt.Errorf("load listing page: %w", err)
	}

	links := myjobmag.CollectJobLinks(doc)
	log.Printf("🔗 Found %d job links.", len(links))
	if len(links) == 0 {
		return nil, ErrNoLinks
	}

	if len(links) > c.cfg.LinkCap {
		links = links[:c.cfg.LinkCap]
	}

	var records []scraper.Record
	for i, link := range links {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return records, err
		}

		jobURL := link
		if strings.HasPrefix(link, "/") {
			jobURL = c.cfg.BaseURL + link
		}
		log.Printf("🔍 [%d/%d] Scraping: %s", i+1, len(links), jobURL)

		rec, err := c.scrapeJob(jobURL)
		switch {
		case err != nil:
			log.Printf("⚠️ Error scraping %s: %v", jobURL, err)
		case rec == nil:
			log.Printf("🚫 Skipped (no application contact): %s", jobURL)
		default:
			records = append(records, *rec)
		}

		c.Delay()
	}

	return records, nil
}

// scrapeJob visits one detail page. A nil record with nil error means the
// page was fine but not actionable.
func (c *Crawler) scrapeJob(url string) (*scraper.Record, error) {
	doc, err := c.loadPage(url)
	if err != nil {
		return nil, err
	}
	rec, ok := myjobmag.ExtractJob(doc, c.cfg.BaseURL)
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (c *Crawler) loadPage(url string) (*goquery.Document, error) {
	if err := c.session.Navigate(url); err != nil {
		return nil, err
	}
	if err := c.session.WaitForBody(c.cfg.WaitTimeout()); err != nil {
		return nil, err
	}
	html, err := c.session.Content()
	if err != nil {
		return nil, fmt.Errorf("read page content: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}
