package main

import (
	"fmt"

	"go-jobmag-scraper/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg := config.Load()
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Jobs URL: %s\n", cfg.JobsURL())
	fmt.Printf("   Link cap: %d\n", cfg.LinkCap)
	fmt.Printf("   Body wait: %s\n", cfg.WaitTimeout())
	fmt.Printf("   Delay: %d-%d ms\n", cfg.DelayMinMS, cfg.DelayMaxMS)
	fmt.Printf("   Output: %s (prefix %q)\n", cfg.OutputDir, cfg.OutputPrefix)
	fmt.Printf("   Cookies Path: %s\n", cfg.CookiesPath)
	fmt.Printf("   Telegram configured: %t\n", cfg.TelegramToken != "" && cfg.TelegramChatID != 0)
}
