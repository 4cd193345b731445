package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/instyleqa/storefront-e2e/internal/config"
)

func defaultOptions() RunOptions {
	return RunOptions{
		Browser:   config.BrowserChromium,
		Headless:  true,
		Parallel:  1,
		Report:    "reports/e2e.html",
		Artifacts: "screenshots",
		Timeout:   30 * time.Minute,
	}
}

func TestTestArgs(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*RunOptions)
		wantPresent []string
		wantAbsent  []string
	}{
		{
			name:        "defaults",
			mutate:      func(o *RunOptions) {},
			wantPresent: []string{"test", "./e2e", "-json", "-count=1", "-timeout 30m0s", "-parallel 1"},
			wantAbsent:  []string{"-run"},
		},
		{
			name:        "run filter included when set",
			mutate:      func(o *RunOptions) { o.RunFilter = "TestLogin" },
			wantPresent: []string{"-run TestLogin"},
		},
		{
			name:        "parallel workers forwarded",
			mutate:      func(o *RunOptions) { o.Parallel = 4 },
			wantPresent: []string{"-parallel 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			tt.mutate(&opts)

			joined := strings.Join(testArgs(opts), " ")
			for _, want := range tt.wantPresent {
				if !strings.Contains(joined, want) {
					t.Errorf("args %q missing %q", joined, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(joined, absent) {
					t.Errorf("args %q should not contain %q", joined, absent)
				}
			}
		})
	}
}

func TestTestEnv(t *testing.T) {
	opts := defaultOptions()
	opts.Browser = config.BrowserFirefox
	opts.Headless = false
	opts.Category = "smoke"
	opts.Artifacts = "artifacts/screens"

	env := testEnv(opts)
	want := []string{
		"E2E_BROWSER=firefox",
		"E2E_HEADLESS=false",
		"E2E_CATEGORY=smoke",
		"E2E_SCREENSHOT_DIR=artifacts/screens",
	}
	if len(env) != len(want) {
		t.Fatalf("expected %d vars, got %d: %v", len(want), len(env), env)
	}
	for i := range want {
		if env[i] != want[i] {
			t.Errorf("env[%d]: expected %q, got %q", i, want[i], env[i])
		}
	}
}
