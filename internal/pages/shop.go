package pages

import (
	"fmt"

	"github.com/instyleqa/storefront-e2e/internal/config"
)

// Shop (product listing) page locators.
var (
	shopProductCards  = css(".product-card, .product-item, .grid__item")
	shopProductNames  = css(".product-name, .product-title, .product-card__title, h3")
	shopProductPrices = css(".product-card__price, .product__price, .price")
	shopProductLinks  = css(".product-card a, .product-item a, .grid__item a")
	shopSortDropdown  = css("select[name*='sort'], .sort-select, #sort")
)

// categoryFilter matches a category link or filter label by its visible text.
func categoryFilter(name string) Locator {
	return xpath(fmt.Sprintf("//a[contains(text(), '%s')] | //label[contains(text(), '%s')]", name, name))
}

// ShopPage drives the product listing / collection page.
type ShopPage struct {
	page *Page
	urls config.URLs
}

func NewShopPage(p *Page, cfg *config.Config) *ShopPage {
	return &ShopPage{page: p, urls: cfg.URLs}
}

// Open navigates to the all-products listing.
func (s *ShopPage) Open() error {
	return s.page.Navigate(s.urls.Shop)
}

// IsLoaded reports whether any product tiles rendered.
func (s *ShopPage) IsLoaded() bool {
	return s.page.IsVisible(shopProductCards)
}

// Products returns the visible product tiles, capped at twenty.
func (s *ShopPage) Products() []ProductCard {
	titles := s.page.AllTexts(shopProductNames)
	prices := s.page.AllTexts(shopProductPrices)

	var cards []ProductCard
	for i, title := range titles {
		if i >= 20 {
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

// ProductCount returns the number of product tiles on the page.
func (s *ShopPage) ProductCount() int {
	return s.page.Count(shopProductCards)
}

// OpenFirstProduct clicks through to the first product's detail page.
func (s *ShopPage) OpenFirstProduct() error {
	return s.page.Click(shopProductLinks)
}

// FilterByCategory clicks the category link or filter with the given label.
func (s *ShopPage) FilterByCategory(name string) error {
	return s.page.Click(categoryFilter(name))
}

// SortAvailable reports whether the listing offers a sort control.
func (s *ShopPage) SortAvailable() bool {
	return s.page.IsPresent(shopSortDropdown)
}
