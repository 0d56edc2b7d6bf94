package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-jobmag-scraper/internal/browser"
	"go-jobmag-scraper/internal/config"
	"go-jobmag-scraper/internal/crawler"
	"go-jobmag-scraper/internal/export"
	"go-jobmag-scraper/internal/reporter"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Target: %s (cap %d links)", cfg.JobsURL(), cfg.LinkCap)

	//optional telegram run report
	var rep *reporter.TelegramReporter
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		var err error
		rep, err = reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Telegram reporter disabled: %v", err)
		} else {
			log.Println("🤖 Telegram reporter initialized.")
		}
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	//a run without a browser session is meaningless, so INIT failures are fatal
	pm, err := browser.NewPlaywright(!cfg.ShowBrowser)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer pm.Close()

	//cookies are a nice-to-have; missing file is not an error
	var cookies []playwright.OptionalCookie
	if cfg.CookiesPath != "" {
		cookies, err = browser.LoadCookies(cfg.CookiesPath)
		if err != nil {
			log.Printf("⚠️ Could not load cookies: %v. Continuing.", err)
		} else {
			log.Printf("🍪 Loaded %d cookies", len(cookies))
		}
	}

	browserCtx, err := pm.NewContext(cookies)
	if err != nil {
		log.Fatalf("❌ Failed to create browser context: %v", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("❌ Failed to create new page: %v", err)
	}
	log.Println("✅ Browser initialized successfully!")

	c := crawler.New(cfg, browser.NewPageSession(page))
	records, err := c.Run(ctx)

	//release the session before any user-visible pause
	pm.Close()

	if err != nil {
		if errors.Is(err, crawler.ErrNoLinks) {
			log.Println("😕 No job links found on the listing page. Nothing to do.")
			waitForEnter()
			return
		}
		//a timeout mid-run still keeps whatever was already scraped
		if !salvageable(err) || len(records) == 0 {
			log.Printf("❌ Crawl failed: %v", err)
			if rep != nil {
				rep.SendError(err)
			}
			waitForEnter()
			return
		}
		log.Printf("⏰ Run cut short (%v). Keeping the %d jobs scraped so far.", err, len(records))
	}

	if len(records) == 0 {
		log.Println("😕 No job data scraped. CSV not created.")
		waitForEnter()
		return
	}

	path := export.TimestampedPath(cfg.OutputDir, cfg.OutputPrefix)
	if err := export.WriteCSV(path, records); err != nil {
		log.Fatalf("❌ Failed to write CSV: %v", err)
	}
	log.Printf("📁 Saved %d jobs to %s", len(records), path)

	if rep != nil {
		for _, rec := range records {
			if err := rep.SendRecord(rec); err != nil {
				log.Printf("⚠️ Failed to send job to Telegram: %v", err)
			}
			//1 second delay to avoid 429
			time.Sleep(1 * time.Second)
		}
		if err := rep.SendSummary(len(records), path); err != nil {
			log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
		}
	}

	waitForEnter()
}

// salvageable reports whether a crawl error still leaves a usable partial
// batch. Expiry or cancellation of the run context stops the loop between
// pages, so the records handed back alongside the error are complete.
func salvageable(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func waitForEnter() {
	fmt.Print("✅ Done. Press Enter to exit...")
	bufio.NewReader(os.Stdin).ReadString('\n')
}
