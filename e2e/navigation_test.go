package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instyleqa/storefront-e2e/internal/pages"
)

// TestNavigation_HeaderToLogin verifies the header account link reaches the
// login page.
func TestNavigation_HeaderToLogin(t *testing.T) {
	smoke(t)
	t.Parallel()
	p := newPage(t)

	home := pages.NewHomePage(p, cfg)
	require.NoError(t, home.Open(), "failed to open homepage")
	require.NoError(t, home.GoToLogin(), "failed to follow login link")

	login := pages.NewLoginPage(p, cfg)
	assert.True(t, login.IsLoaded(), "header link did not reach the login page")
}

// TestNavigation_HeaderToCart verifies the header cart link reaches the
// cart page.
func TestNavigation_HeaderToCart(t *testing.T) {
	smoke(t)
	t.Parallel()
	p := newPage(t)

	home := pages.NewHomePage(p, cfg)
	require.NoError(t, home.Open(), "failed to open homepage")
	require.NoError(t, home.GoToCart(), "failed to follow cart link")

	cart := pages.NewCartPage(p, cfg)
	assert.True(t, cart.IsLoaded(), "header link did not reach the cart page")
}

// TestNavigation_DirectPageLoads verifies every storefront page responds to
// direct navigation.
func TestNavigation_DirectPageLoads(t *testing.T) {
	regression(t)
	t.Parallel()
	p := newPage(t)

	targets := []struct {
		name string
		url  string
	}{
		{"home", cfg.URLs.Home},
		{"shop", cfg.URLs.Shop},
		{"login", cfg.URLs.Login},
		{"register", cfg.URLs.Register},
		{"cart", cfg.URLs.Cart},
		{"forgot-password", cfg.URLs.ForgotPassword},
		{"contact", cfg.URLs.Contact},
		{"about", cfg.URLs.About},
	}

	for _, target := range targets {
		t.Run(target.name, func(t *testing.T) {
			assert.NoError(t, p.Navigate(target.url), "page %s did not load", target.name)
		})
	}
}
