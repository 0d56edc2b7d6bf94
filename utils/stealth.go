package utils

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay pauses execution for a random time between min and max
// (milliseconds). This is the politeness throttle between detail pages.
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	duration := time.Duration(rand.Intn(max-min)+min) * time.Millisecond
	time.Sleep(duration)
}

// MouseJiggle moves the pointer somewhere plausible to avoid idle detection
func MouseJiggle(page playwright.Page) {
	x := float64(rand.Intn(800) + 100)
	y := float64(rand.Intn(600) + 100)

	page.Mouse().Move(x, y)
	RandomDelay(100, 300)
}

// SmoothScroll scrolls like a reader would and ends at the bottom so any
// lazy-loaded parts of the posting are rendered before the page is read.
func SmoothScroll(page playwright.Page) {
	page.Mouse().Wheel(0, 500)
	RandomDelay(300, 700)

	// small upward correction, human-like
	page.Mouse().Wheel(0, -200)
	RandomDelay(200, 500)

	page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
}
