package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-jobmag-scraper/utils"
)

// page loads are bounded separately from the body-presence wait
const pageLoadTimeoutMS = 120000

// PageSession drives one Playwright page through the crawl. It implements
// crawler.Session so the orchestrator never touches Playwright directly.
type PageSession struct {
	page  playwright.Page
	shots *utils.ScreenShotDebugger
}

func NewPageSession(page playwright.Page) *PageSession {
	return &PageSession{
		page:  page,
		shots: utils.NewScreenShotDebugger(),
	}
}

func (s *PageSession) Navigate(url string) error {
	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(pageLoadTimeoutMS),
	}); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// WaitForBody blocks until the page body is attached or the timeout expires.
// Timeouts leave a screenshot behind for diagnosis.
func (s *PageSession) WaitForBody(timeout time.Duration) error {
	err := s.page.Locator("body").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		s.shots.CaptureAndLog(s.page, "wait-body-timeout", "🚨 Timed out waiting for page body")
		return fmt.Errorf("wait for body: %w", err)
	}

	//look alive before reading the page
	utils.MouseJiggle(s.page)
	utils.SmoothScroll(s.page)
	return nil
}

func (s *PageSession) Content() (string, error) {
	return s.page.Content()
}
