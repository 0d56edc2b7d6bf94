package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Launch flags that strip the usual automation fingerprints, mirroring what
// the site tolerates from a plain desktop Chrome.
var stealthArgs = []string{
	"--disable-blink-features=AutomationControlled",
	"--no-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
	"--disable-extensions",
	"--disable-software-rasterizer",
}

const desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// navigator.webdriver is the first thing anti-bot scripts probe
const maskWebdriverScript = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined});`

type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewPlaywright starts the driver and launches one stealth-configured
// Chromium. The process owns exactly one browser for the whole run.
func NewPlaywright(headless bool) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args:     stealthArgs,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium: %w", err)
	}

	return &PlaywrightManager{pw: pw, browser: browser}, nil
}

// NewContext creates a browser context with a desktop fingerprint and the
// webdriver flag masked. Cookies are optional.
func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	ctx, err := pm.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(desktopUserAgent),
		Viewport:  &playwright.Size{Width: 1366, Height: 768},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if err := ctx.AddInitScript(playwright.Script{
		Content: playwright.String(maskWebdriverScript),
	}); err != nil {
		return nil, fmt.Errorf("could not install stealth script: %w", err)
	}

	if len(cookies) > 0 {
		if err := ctx.AddCookies(cookies); err != nil {
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
	}

	return ctx, nil
}

func (pm *PlaywrightManager) Close() error {
	if pm.browser != nil {
		pm.browser.Close()
		pm.browser = nil
	}
	if pm.pw != nil {
		err := pm.pw.Stop()
		pm.pw = nil
		return err
	}
	return nil
}
