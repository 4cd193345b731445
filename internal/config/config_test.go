package config

import (
	"strings"
	"testing"
	"time"
)

// fakeEnv returns a getenv function backed by a map.
func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(fakeEnv(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://instylekenya.co.ke/" {
		t.Errorf("unexpected base URL: %q", cfg.BaseURL)
	}
	if cfg.Browser != BrowserChromium {
		t.Errorf("expected default browser %q, got %q", BrowserChromium, cfg.Browser)
	}
	if !cfg.Headless {
		t.Error("expected headless by default")
	}
	if cfg.ExplicitWait != 20*time.Second {
		t.Errorf("unexpected explicit wait: %v", cfg.ExplicitWait)
	}
	if cfg.NavigationTimeout != 30*time.Second {
		t.Errorf("unexpected navigation timeout: %v", cfg.NavigationTimeout)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Errorf("unexpected poll interval: %v", cfg.PollInterval)
	}
	if cfg.WindowWidth != 1920 || cfg.WindowHeight != 1080 {
		t.Errorf("unexpected viewport: %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.User.Email != "testuser@example.com" {
		t.Errorf("unexpected test user email: %q", cfg.User.Email)
	}
	if len(cfg.SearchTerms) != 5 || cfg.SearchTerms[0] != "dress" {
		t.Errorf("unexpected search terms: %v", cfg.SearchTerms)
	}
}

func TestLoad_URLDerivation(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		wantHome string
		wantCart string
	}{
		{
			name:     "trailing slash preserved",
			baseURL:  "https://staging.example.com/",
			wantHome: "https://staging.example.com/",
			wantCart: "https://staging.example.com/cart",
		},
		{
			name:     "missing trailing slash added",
			baseURL:  "https://staging.example.com",
			wantHome: "https://staging.example.com/",
			wantCart: "https://staging.example.com/cart",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(fakeEnv(map[string]string{"E2E_BASE_URL": tt.baseURL}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.URLs.Home != tt.wantHome {
				t.Errorf("home URL: expected %q, got %q", tt.wantHome, cfg.URLs.Home)
			}
			if cfg.URLs.Cart != tt.wantCart {
				t.Errorf("cart URL: expected %q, got %q", tt.wantCart, cfg.URLs.Cart)
			}
			if !strings.HasPrefix(cfg.URLs.Login, cfg.BaseURL) {
				t.Errorf("login URL %q not under base URL %q", cfg.URLs.Login, cfg.BaseURL)
			}
		})
	}
}

func TestLoad_ChromeAlias(t *testing.T) {
	cfg, err := Load(fakeEnv(map[string]string{"E2E_BROWSER": "chrome"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Browser != BrowserChromium {
		t.Errorf("expected chrome to map to %q, got %q", BrowserChromium, cfg.Browser)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(fakeEnv(map[string]string{
		"E2E_BROWSER":          "firefox",
		"E2E_HEADLESS":         "false",
		"E2E_EXPLICIT_WAIT":    "5",
		"E2E_POLL_INTERVAL_MS": "100",
		"E2E_CATEGORY":         "smoke",
		"E2E_SEARCH_TERMS":     "dress, shoes ,",
		"E2E_TEST_EMAIL":       "qa@instyle.example",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Browser != BrowserFirefox {
		t.Errorf("expected firefox, got %q", cfg.Browser)
	}
	if cfg.Headless {
		t.Error("expected headful run")
	}
	if cfg.ExplicitWait != 5*time.Second {
		t.Errorf("unexpected explicit wait: %v", cfg.ExplicitWait)
	}
	if cfg.PollInterval != 100*time.Millisecond {
		t.Errorf("unexpected poll interval: %v", cfg.PollInterval)
	}
	if cfg.Category != "smoke" {
		t.Errorf("unexpected category: %q", cfg.Category)
	}
	if len(cfg.SearchTerms) != 2 || cfg.SearchTerms[1] != "shoes" {
		t.Errorf("expected trimmed search terms, got %v", cfg.SearchTerms)
	}
	if cfg.User.Email != "qa@instyle.example" {
		t.Errorf("unexpected test user email: %q", cfg.User.Email)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{
			name: "unknown browser",
			vars: map[string]string{"E2E_BROWSER": "safari"},
		},
		{
			name: "non-boolean headless",
			vars: map[string]string{"E2E_HEADLESS": "maybe"},
		},
		{
			name: "non-numeric wait",
			vars: map[string]string{"E2E_EXPLICIT_WAIT": "soon"},
		},
		{
			name: "negative wait",
			vars: map[string]string{"E2E_EXPLICIT_WAIT": "-3"},
		},
		{
			name: "empty search terms",
			vars: map[string]string{"E2E_SEARCH_TERMS": " , ,"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(fakeEnv(tt.vars)); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}
