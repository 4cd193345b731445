package browser

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"github.com/instyleqa/storefront-e2e/internal/config"
)

// Session owns a running playwright instance and the launched browser. One
// session serves a whole test run; each test gets its own isolated context
// through NewPage.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.Config
}

// Launch starts playwright and launches the configured browser. The first
// run may download and cache driver and browser binaries. Any failure here
// is fatal for the test run.
func Launch(cfg *config.Config) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, &DriverInitError{Browser: cfg.Browser, Err: err}
	}

	browserType, err := browserTypeFor(pw, cfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	log.Printf("Launching %s (headless=%t)", cfg.Browser, cfg.Headless)
	b, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args:     launchArgs(cfg),
	})
	if err != nil {
		pw.Stop()
		return nil, &DriverInitError{Browser: cfg.Browser, Err: err}
	}

	return &Session{pw: pw, browser: b, cfg: cfg}, nil
}

// Install provisions the driver and browser binaries without launching
// anything. Used by the doctor command.
func Install(cfg *config.Config) error {
	err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{cfg.Browser},
	})
	if err != nil {
		return &DriverInitError{Browser: cfg.Browser, Err: err}
	}
	return nil
}

// NewPage opens a fresh browser context at the configured viewport and
// returns its page. Closing the page's context discards all cookies and
// storage, keeping tests independent.
func (s *Session) NewPage() (playwright.Page, error) {
	ctx, err := s.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  s.cfg.WindowWidth,
			Height: s.cfg.WindowHeight,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	return page, nil
}

// Close tears down the browser and playwright. Teardown is abrupt; there is
// no graceful handling of in-flight operations.
func (s *Session) Close() {
	if s.browser != nil {
		s.browser.Close()
	}
	if s.pw != nil {
		s.pw.Stop()
	}
}

func browserTypeFor(pw *playwright.Playwright, kind string) (playwright.BrowserType, error) {
	switch kind {
	case config.BrowserChromium:
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	default:
		return nil, &DriverInitError{Browser: kind, Err: fmt.Errorf("unsupported browser kind")}
	}
}

// launchArgs returns browser-specific command line arguments. Chromium gets
// the sandbox and shared-memory flags needed in containerized runs; firefox
// needs none.
func launchArgs(cfg *config.Config) []string {
	if cfg.Browser != config.BrowserChromium {
		return nil
	}
	return []string{
		"--no-sandbox",
		"--disable-dev-shm-usage",
		fmt.Sprintf("--window-size=%d,%d", cfg.WindowWidth, cfg.WindowHeight),
	}
}
