package pages

import (
	"strings"

	"github.com/instyleqa/storefront-e2e/internal/config"
)

// Home page locators.
var (
	homeLogo            = css(".header__logo img, .logo img, [alt*='Instyle'], [alt*='logo']")
	homeSearchBox       = css("input[name='q'], .search__input, #search-input, input[placeholder*='Search']")
	homeSearchButton    = css(".search__submit, .search-btn, button[type='submit']")
	homeMainNav         = css(".main-nav, .navigation, .header__nav, nav")
	homeNavLinks        = css(".main-nav a, .navigation a, .header__nav a, nav a")
	homeLoginLink       = css("a[href*='login'], .account-link")
	homeRegisterLink    = css("a[href*='register'], a[href*='signup']")
	homeCartLink        = css("a[href*='cart'], .cart-link, .header__cart")
	homeWishlistLink    = css("a[href*='wishlist'], .wishlist-link")
	homeCartCount       = css(".cart-count, .cart__count, .header__cart-count")
	homeHeroSection     = css(".hero, .banner, .slideshow, .main-banner")
	homeHeroTitle       = css(".hero__title, .banner__title, .slideshow__title")
	homeProductCards    = css(".product-card, .product-item, .grid__item")
	homeProductTitles   = css(".product-card__title, .product__title, .product-title")
	homeProductPrices   = css(".product-card__price, .product__price, .price")
	homeFooter          = css("footer, .footer")
	homeNewsletterInput = css("footer input[type='email'], .newsletter input[name='email']")
	homeNewsletterBtn   = css(".newsletter__submit, footer button[type='submit']")
)

// ProductCard is the title/price pair scraped from a product grid tile.
type ProductCard struct {
	Title string
	Price string
}

// HomePage drives the storefront landing page.
type HomePage struct {
	page *Page
	urls config.URLs
}

func NewHomePage(p *Page, cfg *config.Config) *HomePage {
	return &HomePage{page: p, urls: cfg.URLs}
}

// Open navigates to the homepage.
func (h *HomePage) Open() error {
	return h.page.Navigate(h.urls.Home)
}

// IsLoaded reports whether the homepage rendered its logo and title.
func (h *HomePage) IsLoaded() bool {
	return h.page.IsVisible(homeLogo) &&
		strings.Contains(strings.ToLower(h.page.Title()), "instyle")
}

// SearchFor types a term into the search box and submits it. The submit
// button is flaky across themes, so Enter is the fallback.
func (h *HomePage) SearchFor(term string) error {
	if err := h.page.TypeText(homeSearchBox, term); err != nil {
		return err
	}
	if err := h.page.Click(homeSearchButton); err != nil {
		return h.page.Press(homeSearchBox, "Enter")
	}
	return nil
}

// FeaturedProducts returns the product tiles shown on the homepage, capped
// at ten.
func (h *HomePage) FeaturedProducts() []ProductCard {
	titles := h.page.AllTexts(homeProductTitles)
	prices := h.page.AllTexts(homeProductPrices)

	var cards []ProductCard
	for i, title := range titles {
		if i >= 10 {
			break
		}
		card := ProductCard{Title: title}
		if i < len(prices) {
			card.Price = prices[i]
		}
		cards = append(cards, card)
	}
	return cards
}

// GoToLogin follows the account login link.
func (h *HomePage) GoToLogin() error {
	return h.page.Click(homeLoginLink)
}

// GoToRegister follows the sign-up link.
func (h *HomePage) GoToRegister() error {
	return h.page.Click(homeRegisterLink)
}

// GoToCart opens the cart page via the header link.
func (h *HomePage) GoToCart() error {
	return h.page.Click(homeCartLink)
}

// GoToWishlist opens the wishlist page via the header link.
func (h *HomePage) GoToWishlist() error {
	return h.page.Click(homeWishlistLink)
}

// badgeCount reads the header cart badge once, without waiting for it.
func badgeCount(p *Page) (int, error) {
	text, err := p.Text(homeCartCount, WithTimeout(0))
	if err != nil {
		return 0, err
	}
	return parseCount(text), nil
}

// CartCount reads the cart badge. A missing badge reads as zero.
func (h *HomePage) CartCount() int {
	if !h.page.IsPresent(homeCartCount) {
		return 0
	}
	text, err := h.page.Text(homeCartCount)
	if err != nil {
		return 0
	}
	return parseCount(text)
}

// HeroVisible reports whether the hero banner rendered.
func (h *HomePage) HeroVisible() bool {
	return h.page.IsVisible(homeHeroSection)
}

// HeroTitle returns the hero banner headline.
func (h *HomePage) HeroTitle() (string, error) {
	return h.page.Text(homeHeroTitle)
}

// NavigationLinks returns the visible texts of the main navigation entries.
func (h *HomePage) NavigationLinks() []string {
	var links []string
	for _, text := range h.page.AllTexts(homeNavLinks) {
		if text != "" {
			links = append(links, text)
		}
	}
	return links
}

// HasFooter reports whether the page footer rendered.
func (h *HomePage) HasFooter() bool {
	return h.page.IsPresent(homeFooter)
}

// SubscribeNewsletter fills the footer newsletter form and submits it.
func (h *HomePage) SubscribeNewsletter(email string) error {
	if err := h.page.ScrollIntoView(homeNewsletterInput); err != nil {
		return err
	}
	if err := h.page.TypeText(homeNewsletterInput, email); err != nil {
		return err
	}
	return h.page.Click(homeNewsletterBtn)
}
