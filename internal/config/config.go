package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Supported browser kinds.
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
)

// Test categories recognized by the suites.
const (
	CategorySmoke      = "smoke"
	CategoryRegression = "regression"
	CategoryFeature    = "feature"
)

// TestUser holds the pre-seeded account used by login and account flows.
type TestUser struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// URLs holds the absolute addresses of the storefront pages under test,
// derived from the base URL.
type URLs struct {
	Home           string
	Shop           string
	Login          string
	Register       string
	Cart           string
	Wishlist       string
	ForgotPassword string
	Contact        string
	About          string
}

// Config holds all test-run settings. It is constructed once at process
// start and passed by reference into the driver factory and test fixtures.
type Config struct {
	BaseURL  string
	Browser  string
	Headless bool
	Category string

	ExplicitWait      time.Duration
	NavigationTimeout time.Duration
	PollInterval      time.Duration

	WindowWidth  int
	WindowHeight int

	ScreenshotDir string

	User        TestUser
	URLs        URLs
	SearchTerms []string
}

// Load builds a Config from environment variables, applying defaults that
// match the storefront under test. The getenv function is injected so tests
// can supply their own environment.
func Load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		BaseURL:       getenv("E2E_BASE_URL"),
		Browser:       getenv("E2E_BROWSER"),
		Category:      getenv("E2E_CATEGORY"),
		ScreenshotDir: getenv("E2E_SCREENSHOT_DIR"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://instylekenya.co.ke/"
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}

	switch cfg.Browser {
	case "":
		cfg.Browser = BrowserChromium
	case "chrome":
		// Accepted as an alias; Playwright ships Chromium.
		cfg.Browser = BrowserChromium
	}
	if cfg.Browser != BrowserChromium && cfg.Browser != BrowserFirefox {
		return nil, fmt.Errorf("E2E_BROWSER must be %q or %q, got %q", BrowserChromium, BrowserFirefox, cfg.Browser)
	}

	headless, err := boolVar(getenv, "E2E_HEADLESS", true)
	if err != nil {
		return nil, err
	}
	cfg.Headless = headless

	explicitWait, err := intVar(getenv, "E2E_EXPLICIT_WAIT", 20)
	if err != nil {
		return nil, err
	}
	cfg.ExplicitWait = time.Duration(explicitWait) * time.Second

	navTimeout, err := intVar(getenv, "E2E_NAVIGATION_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}
	cfg.NavigationTimeout = time.Duration(navTimeout) * time.Second

	pollMs, err := intVar(getenv, "E2E_POLL_INTERVAL_MS", 250)
	if err != nil {
		return nil, err
	}
	cfg.PollInterval = time.Duration(pollMs) * time.Millisecond

	cfg.WindowWidth, err = intVar(getenv, "E2E_WINDOW_WIDTH", 1920)
	if err != nil {
		return nil, err
	}
	cfg.WindowHeight, err = intVar(getenv, "E2E_WINDOW_HEIGHT", 1080)
	if err != nil {
		return nil, err
	}

	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}

	cfg.User = TestUser{
		Email:     stringVar(getenv, "E2E_TEST_EMAIL", "testuser@example.com"),
		Password:  stringVar(getenv, "E2E_TEST_PASSWORD", "TestPassword123!"),
		FirstName: stringVar(getenv, "E2E_TEST_FIRST_NAME", "Test"),
		LastName:  stringVar(getenv, "E2E_TEST_LAST_NAME", "User"),
		Phone:     stringVar(getenv, "E2E_TEST_PHONE", "+254700000000"),
	}

	terms := stringVar(getenv, "E2E_SEARCH_TERMS", "dress,shoes,handbag,jewelry,accessories")
	for _, term := range strings.Split(terms, ",") {
		if term = strings.TrimSpace(term); term != "" {
			cfg.SearchTerms = append(cfg.SearchTerms, term)
		}
	}
	if len(cfg.SearchTerms) == 0 {
		return nil, fmt.Errorf("E2E_SEARCH_TERMS must contain at least one term")
	}

	cfg.URLs = URLs{
		Home:           cfg.BaseURL,
		Shop:           cfg.BaseURL + "collections/all",
		Login:          cfg.BaseURL + "account/login",
		Register:       cfg.BaseURL + "account/register",
		Cart:           cfg.BaseURL + "cart",
		Wishlist:       cfg.BaseURL + "account/wishlist",
		ForgotPassword: cfg.BaseURL + "account/recover",
		Contact:        cfg.BaseURL + "pages/contact-us",
		About:          cfg.BaseURL + "pages/about-us",
	}

	return cfg, nil
}

func stringVar(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolVar(getenv func(string) string, key string, fallback bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return parsed, nil
}

func intVar(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return parsed, nil
}
