package main

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"go-jobmag-scraper/internal/browser"
	"go-jobmag-scraper/internal/config"
)

func main() {
	fmt.Println("🌐 Testing Browser Manager...")

	cfg := config.Load()

	pm, err := browser.NewPlaywright(!cfg.ShowBrowser)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	browserCtx, err := pm.NewContext(nil)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer browserCtx.Close()

	fmt.Println("✅ Browser context created")

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	fmt.Printf("🔍 Navigating to %s...\n", cfg.JobsURL())
	session := browser.NewPageSession(page)
	if err := session.Navigate(cfg.JobsURL()); err != nil {
		log.Fatalf("Failed to navigate: %v", err)
	}
	if err := session.WaitForBody(cfg.WaitTimeout()); err != nil {
		log.Fatalf("Page body never appeared: %v", err)
	}

	title, _ := page.Title()
	fmt.Printf("✅ Page title: %s\n", title)

	_, err = page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String("jobs-page-test.png"),
	})
	if err != nil {
		log.Printf("Failed to take screenshot: %v", err)
	} else {
		fmt.Println("📸 Screenshot saved: jobs-page-test.png")
	}
	fmt.Println("✨ Test complete!")
}
