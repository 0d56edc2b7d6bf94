package crawler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobmag-scraper/internal/config"
)

// fakeSession serves canned HTML per URL; navigation to a URL listed in fail
// errors out like a timed-out page would.
type fakeSession struct {
	pages   map[string]string
	fail    map[string]error
	visited []string
	current string
}

func (f *fakeSession) Navigate(url string) error {
	f.visited = append(f.visited, url)
	if err, ok := f.fail[url]; ok {
		return err
	}
	f.current = url
	return nil
}

func (f *fakeSession) WaitForBody(time.Duration) error { return nil }

func (f *fakeSession) Content() (string, error) {
	html, ok := f.pages[f.current]
	if !ok {
		return "", fmt.Errorf("no fixture for %s", f.current)
	}
	return html, nil
}

func testConfig() *config.Config {
	return &config.Config{
		BaseURL:       "https://jobs.test",
		JobsPath:      "/jobs",
		LinkCap:       10,
		WaitTimeoutMS: 1,
		DelayMinMS:    0,
		DelayMaxMS:    0,
	}
}

func listingWithLinks(n int) string {
	var b strings.Builder
	b.WriteString(`<html><body>`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<div class="mag-b"><h2><a href="/job/role-%d">Role %d</a></h2></div>`, i, i)
	}
	b.WriteString(`</body></html>`)
	return b.String()
}

func detailPage(title, email string) string {
	return fmt.Sprintf(`<html><body>
		<h1>%s</h1>
		<h2 id="application-method">Apply</h2>
		<div><p>Send CV to %s</p></div>
	</body></html>`, title, email)
}

func newTestCrawler(cfg *config.Config, session Session) *Crawler {
	c := New(cfg, session)
	c.Delay = func() {}
	return c
}

func TestRunCapsAtTenLinks(t *testing.T) {
	cfg := testConfig()
	session := &fakeSession{pages: map[string]string{
		cfg.JobsURL(): listingWithLinks(15),
	}}
	for i := 0; i < 15; i++ {
		url := fmt.Sprintf("https://jobs.test/job/role-%d", i)
		session.pages[url] = detailPage(fmt.Sprintf("Role %d at Firm", i), "hr@firm.test")
	}

	records, err := newTestCrawler(cfg, session).Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 10)
	// listing + 10 detail pages, never the 11th link
	assert.Len(t, session.visited, 11)
	assert.NotContains(t, session.visited, "https://jobs.test/job/role-10")
}

func TestRunZeroLinks(t *testing.T) {
	cfg := testConfig()
	session := &fakeSession{pages: map[string]string{
		cfg.JobsURL(): `<html><body><p>nothing today</p></body></html>`,
	}}

	records, err := newTestCrawler(cfg, session).Run(context.Background())

	assert.ErrorIs(t, err, ErrNoLinks)
	assert.Empty(t, records)
}

func TestRunFailureIsolation(t *testing.T) {
	cfg := testConfig()
	session := &fakeSession{
		pages: map[string]string{
			cfg.JobsURL():                 listingWithLinks(2),
			"https://jobs.test/job/role-1": detailPage("Survivor at Firm", "hr@firm.test"),
		},
		fail: map[string]error{
			"https://jobs.test/job/role-0": errors.New("navigation timeout"),
		},
	}

	records, err := newTestCrawler(cfg, session).Run(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Survivor at Firm", records[0].PostTitle)
	// the failed link is visited once, never retried
	assert.Equal(t, []string{
		cfg.JobsURL(),
		"https://jobs.test/job/role-0",
		"https://jobs.test/job/role-1",
	}, session.visited)
}

func TestRunSkipsNonActionablePages(t *testing.T) {
	cfg := testConfig()
	session := &fakeSession{pages: map[string]string{
		cfg.JobsURL():                 listingWithLinks(2),
		"https://jobs.test/job/role-0": `<html><body><h1>No Contact</h1></body></html>`,
		"https://jobs.test/job/role-1": detailPage("Reachable at Firm", "hr@firm.test"),
	}}

	records, err := newTestCrawler(cfg, session).Run(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Reachable at Firm", records[0].PostTitle)
}

func TestRunListingFailurePropagates(t *testing.T) {
	cfg := testConfig()
	session := &fakeSession{
		pages: map[string]string{},
		fail:  map[string]error{cfg.JobsURL(): errors.New("browser crashed")},
	}

	records, err := newTestCrawler(cfg, session).Run(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoLinks)
	assert.Empty(t, records)
}

func TestRunResolvesAbsoluteLinks(t *testing.T) {
	cfg := testConfig()
	session := &fakeSession{pages: map[string]string{
		cfg.JobsURL(): `<html><body><a href="https://jobs.test/job/abs">Abs</a></body></html>`,
		"https://jobs.test/job/abs": detailPage("Absolute at Firm", "hr@firm.test"),
	}}

	records, err := newTestCrawler(cfg, session).Run(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://jobs.test/job/abs", session.visited[1])
}

func TestRunDelayRunsAfterEveryLink(t *testing.T) {
	cfg := testConfig()
	session := &fakeSession{
		pages: map[string]string{
			cfg.JobsURL():                 listingWithLinks(3),
			"https://jobs.test/job/role-1": detailPage("Fine at Firm", "hr@firm.test"),
			"https://jobs.test/job/role-2": detailPage("Also Fine at Firm", "hr@firm.test"),
		},
		fail: map[string]error{
			"https://jobs.test/job/role-0": errors.New("boom"),
		},
	}

	c := New(cfg, session)
	delays := 0
	c.Delay = func() { delays++ }

	_, err := c.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, delays, "delay fires after failed links too")
}

func TestRunKeepsPartialBatchWhenRunExpires(t *testing.T) {
	cfg := testConfig()
	session := &fakeSession{pages: map[string]string{
		cfg.JobsURL(): listingWithLinks(5),
	}}
	for i := 0; i < 5; i++ {
		url := fmt.Sprintf("https://jobs.test/job/role-%d", i)
		session.pages[url] = detailPage(fmt.Sprintf("Role %d at Firm", i), "hr@firm.test")
	}

	// the run budget expires after the third detail page
	ctx, cancel := context.WithCancel(context.Background())
	c := newTestCrawler(cfg, session)
	pages := 0
	c.Delay = func() {
		pages++
		if pages == 3 {
			cancel()
		}
	}

	records, err := c.Run(ctx)

	// the error and the partial batch come back together; callers must not
	// drop one because of the other
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, records, 3)
	assert.Equal(t, "Role 0 at Firm", records[0].PostTitle)
	assert.Equal(t, "Role 2 at Firm", records[2].PostTitle)
}

func TestRunHonorsContextCancellation(t *testing.T) {
	cfg := testConfig()
	session := &fakeSession{pages: map[string]string{
		cfg.JobsURL(): listingWithLinks(5),
	}}
	for i := 0; i < 5; i++ {
		url := fmt.Sprintf("https://jobs.test/job/role-%d", i)
		session.pages[url] = detailPage("Role at Firm", "hr@firm.test")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := newTestCrawler(cfg, session)
	visits := 0
	c.Delay = func() {
		visits++
		if visits == 2 {
			cancel()
		}
	}

	records, err := c.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, records, 2)
}
