package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/instyleqa/storefront-e2e/internal/browser"
	"github.com/instyleqa/storefront-e2e/internal/config"
)

// Page is the capability set shared by all page objects: navigation, bounded
// waits, element interaction and screenshots. Page objects hold a *Page by
// composition rather than inheriting from it. A Page never outlives the
// driver session it was created from.
type Page struct {
	pw            playwright.Page
	clock         clock
	explicitWait  time.Duration
	navTimeout    time.Duration
	interval      time.Duration
	screenshotDir string
}

// New wraps a driver page with the run's configured timeouts.
func New(pw playwright.Page, cfg *config.Config) *Page {
	return &Page{
		pw:            pw,
		clock:         systemClock{},
		explicitWait:  cfg.ExplicitWait,
		navTimeout:    cfg.NavigationTimeout,
		interval:      cfg.PollInterval,
		screenshotDir: cfg.ScreenshotDir,
	}
}

// Option overrides per-call wait behavior.
type Option func(*callOpts)

type callOpts struct {
	timeout time.Duration
}

// WithTimeout overrides the default explicit wait for a single call.
func WithTimeout(d time.Duration) Option {
	return func(o *callOpts) { o.timeout = d }
}

func (p *Page) options(opts []Option) callOpts {
	o := callOpts{timeout: p.explicitWait}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Navigate loads the given URL and waits for the load event. Non-success
// responses and timeouts fail with a NavigationError.
func (p *Page) Navigate(url string) error {
	resp, err := p.pw.Goto(url, playwright.PageGotoOptions{
		Timeout:   playwright.Float(float64(p.navTimeout.Milliseconds())),
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		return &browser.NavigationError{URL: url, Err: err}
	}
	// Goto returns no response for same-document navigations.
	if resp != nil && !resp.Ok() {
		return &browser.NavigationError{URL: url, Status: resp.Status()}
	}
	return nil
}

// WaitVisible blocks until the element is visible or the timeout elapses.
func (p *Page) WaitVisible(loc Locator, opts ...Option) error {
	o := p.options(opts)
	el := p.first(loc)
	ok := waitUntil(p.clock, o.timeout, p.interval, func() (bool, error) {
		return el.IsVisible()
	})
	if !ok {
		return &browser.ElementNotFoundError{Locator: loc.String(), Timeout: o.timeout}
	}
	return nil
}

// Click waits for the element to be visible and enabled, then clicks it.
func (p *Page) Click(loc Locator, opts ...Option) error {
	o := p.options(opts)
	if err := p.WaitVisible(loc, opts...); err != nil {
		return err
	}
	el := p.first(loc)
	ok := waitUntil(p.clock, o.timeout, p.interval, func() (bool, error) {
		return el.IsEnabled()
	})
	if !ok {
		return &browser.ElementNotInteractableError{Locator: loc.String(), Timeout: o.timeout}
	}
	if err := el.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(o.timeout.Milliseconds())),
	}); err != nil {
		return &browser.ElementNotInteractableError{Locator: loc.String(), Timeout: o.timeout, Err: err}
	}
	return nil
}

// TypeText waits for the element, clears it and fills in the text.
func (p *Page) TypeText(loc Locator, text string, opts ...Option) error {
	o := p.options(opts)
	if err := p.WaitVisible(loc, opts...); err != nil {
		return err
	}
	el := p.first(loc)
	timeout := playwright.Float(float64(o.timeout.Milliseconds()))
	if err := el.Clear(playwright.LocatorClearOptions{Timeout: timeout}); err != nil {
		return &browser.ElementNotInteractableError{Locator: loc.String(), Timeout: o.timeout, Err: err}
	}
	if err := el.Fill(text, playwright.LocatorFillOptions{Timeout: timeout}); err != nil {
		return &browser.ElementNotInteractableError{Locator: loc.String(), Timeout: o.timeout, Err: err}
	}
	return nil
}

// Press waits for the element and sends a single key press to it.
func (p *Page) Press(loc Locator, key string, opts ...Option) error {
	o := p.options(opts)
	if err := p.WaitVisible(loc, opts...); err != nil {
		return err
	}
	if err := p.first(loc).Press(key, playwright.LocatorPressOptions{
		Timeout: playwright.Float(float64(o.timeout.Milliseconds())),
	}); err != nil {
		return &browser.ElementNotInteractableError{Locator: loc.String(), Timeout: o.timeout, Err: err}
	}
	return nil
}

// Text waits for the element and returns its trimmed text content.
func (p *Page) Text(loc Locator, opts ...Option) (string, error) {
	o := p.options(opts)
	el := p.first(loc)
	ok := waitUntil(p.clock, o.timeout, p.interval, func() (bool, error) {
		n, err := p.pw.Locator(loc.String()).Count()
		return n > 0, err
	})
	if !ok {
		return "", &browser.ElementNotFoundError{Locator: loc.String(), Timeout: o.timeout}
	}
	text, err := el.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(float64(o.timeout.Milliseconds())),
	})
	if err != nil {
		return "", &browser.ElementNotFoundError{Locator: loc.String(), Timeout: o.timeout}
	}
	return strings.TrimSpace(text), nil
}

// Attribute waits for the element and returns the attribute's value. An
// absent attribute reads as an empty string; driver failures are returned.
func (p *Page) Attribute(loc Locator, name string, opts ...Option) (string, error) {
	o := p.options(opts)
	ok := waitUntil(p.clock, o.timeout, p.interval, func() (bool, error) {
		n, err := p.pw.Locator(loc.String()).Count()
		return n > 0, err
	})
	if !ok {
		return "", &browser.ElementNotFoundError{Locator: loc.String(), Timeout: o.timeout}
	}
	value, err := p.first(loc).GetAttribute(name)
	if err != nil {
		return "", fmt.Errorf("failed to read attribute %q of element %q: %w", name, loc.String(), err)
	}
	return value, nil
}

// IsPresent reports whether the element exists in the DOM right now. It
// never returns an error: absence and query failures both read as false.
func (p *Page) IsPresent(loc Locator) bool {
	count, err := p.pw.Locator(loc.String()).Count()
	return err == nil && count > 0
}

// IsVisible reports whether the element becomes visible within the timeout.
// Like IsPresent it never errors.
func (p *Page) IsVisible(loc Locator, opts ...Option) bool {
	o := p.options(opts)
	el := p.first(loc)
	return waitUntil(p.clock, o.timeout, p.interval, func() (bool, error) {
		return el.IsVisible()
	})
}

// Count returns how many elements currently match the locator.
func (p *Page) Count(loc Locator) int {
	count, err := p.pw.Locator(loc.String()).Count()
	if err != nil {
		return 0
	}
	return count
}

// AllTexts waits for at least one match and returns the text of every
// matching element. An empty slice means nothing matched within the timeout.
func (p *Page) AllTexts(loc Locator, opts ...Option) []string {
	o := p.options(opts)
	ok := waitUntil(p.clock, o.timeout, p.interval, func() (bool, error) {
		n, err := p.pw.Locator(loc.String()).Count()
		return n > 0, err
	})
	if !ok {
		return nil
	}
	texts, err := p.pw.Locator(loc.String()).AllTextContents()
	if err != nil {
		return nil
	}
	for i, t := range texts {
		texts[i] = strings.TrimSpace(t)
	}
	return texts
}

// Hover waits for the element and moves the pointer over it.
func (p *Page) Hover(loc Locator, opts ...Option) error {
	o := p.options(opts)
	if err := p.WaitVisible(loc, opts...); err != nil {
		return err
	}
	if err := p.first(loc).Hover(playwright.LocatorHoverOptions{
		Timeout: playwright.Float(float64(o.timeout.Milliseconds())),
	}); err != nil {
		return &browser.ElementNotInteractableError{Locator: loc.String(), Timeout: o.timeout, Err: err}
	}
	return nil
}

// ScrollIntoView scrolls the element into the viewport.
func (p *Page) ScrollIntoView(loc Locator, opts ...Option) error {
	o := p.options(opts)
	if err := p.first(loc).ScrollIntoViewIfNeeded(playwright.LocatorScrollIntoViewIfNeededOptions{
		Timeout: playwright.Float(float64(o.timeout.Milliseconds())),
	}); err != nil {
		return &browser.ElementNotFoundError{Locator: loc.String(), Timeout: o.timeout}
	}
	return nil
}

// WaitURLContains blocks until the current URL contains the fragment,
// case-insensitively, and reports whether it did within the timeout.
func (p *Page) WaitURLContains(fragment string, opts ...Option) bool {
	o := p.options(opts)
	fragment = strings.ToLower(fragment)
	return waitUntil(p.clock, o.timeout, p.interval, func() (bool, error) {
		return strings.Contains(strings.ToLower(p.pw.URL()), fragment), nil
	})
}

// CurrentURL returns the page's current address.
func (p *Page) CurrentURL() string {
	return p.pw.URL()
}

// Title returns the document title, or an empty string if it cannot be read.
func (p *Page) Title() string {
	title, err := p.pw.Title()
	if err != nil {
		return ""
	}
	return title
}

// Screenshot writes a full-page capture named after the test into the
// configured screenshot directory and returns the file path.
func (p *Page) Screenshot(name string) (string, error) {
	if err := os.MkdirAll(p.screenshotDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(p.screenshotDir, name+".png")
	if _, err := p.pw.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", err
	}
	return path, nil
}

// Close discards the page together with its browser context, dropping all
// cookies and storage so the next test starts clean.
func (p *Page) Close() error {
	return p.pw.Context().Close()
}

func (p *Page) first(loc Locator) playwright.Locator {
	return p.pw.Locator(loc.String()).First()
}
