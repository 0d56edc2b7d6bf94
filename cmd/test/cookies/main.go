package main

import (
	"fmt"
	"log"

	"go-jobmag-scraper/internal/browser"
	"go-jobmag-scraper/internal/config"
)

func main() {
	fmt.Println("🍪 Testing cookie loading...")

	cfg := config.Load()
	if cfg.CookiesPath == "" {
		log.Fatal("No cookies_path configured")
	}

	cookies, err := browser.LoadCookies(cfg.CookiesPath)
	if err != nil {
		log.Fatalf("Failed to load cookies: %v", err)
	}

	fmt.Printf("✅ Loaded %d cookies\n", len(cookies))

	//Print first cookie as example
	if len(cookies) > 0 {
		c := cookies[0]
		fmt.Printf("\nExample cookie:\n")
		fmt.Printf("Name: %s\n", c.Name)
		if c.Domain != nil {
			fmt.Printf("Domain: %s\n", *c.Domain)
		}
		if c.Secure != nil {
			fmt.Printf("Secure: %t\n", *c.Secure)
		}
	}
}
