package pages

import "github.com/instyleqa/storefront-e2e/internal/config"

// Wishlist page locators.
var (
	wishlistItems        = css(".wishlist__item, .wishlist-item, .grid__item")
	wishlistItemNames    = css(".wishlist__item-title, .product__title, h3")
	wishlistAddToCart    = css(".add-to-cart, button[name*='add'], .btn--add-to-cart")
	wishlistRemoveButton = css(".remove-wishlist, .wishlist__remove, button[name*='remove']")
	wishlistEmptyMessage = css(".wishlist--empty, .empty-wishlist, .wishlist__empty")
	wishlistCountBadge   = css(".wishlist-count, .wishlist__count")
)

// WishlistPage drives the saved-items page.
type WishlistPage struct {
	page *Page
	urls config.URLs
}

func NewWishlistPage(p *Page, cfg *config.Config) *WishlistPage {
	return &WishlistPage{page: p, urls: cfg.URLs}
}

// Open navigates to the wishlist page.
func (w *WishlistPage) Open() error {
	return w.page.Navigate(w.urls.Wishlist)
}

// IsLoaded reports whether the wishlist rendered items or its empty state.
func (w *WishlistPage) IsLoaded() bool {
	return urlContains(w.page, "wishlist") ||
		w.page.IsPresent(wishlistItems) ||
		w.page.IsPresent(wishlistEmptyMessage)
}

// IsEmpty reports whether no items are saved.
func (w *WishlistPage) IsEmpty() bool {
	return w.page.IsVisible(wishlistEmptyMessage, WithTimeout(messageWait)) ||
		w.page.Count(wishlistItems) == 0
}

// Count returns the number of saved items.
func (w *WishlistPage) Count() int {
	return w.page.Count(wishlistItems)
}

// ItemNames returns the titles of all saved items.
func (w *WishlistPage) ItemNames() []string {
	return w.page.AllTexts(wishlistItemNames, WithTimeout(messageWait))
}

// AddFirstToCart moves the first saved item into the cart and returns the
// cart badge count once it moves past its value before the click. Reading
// the badge right after the click would race the storefront's async update.
func (w *WishlistPage) AddFirstToCart() (int, error) {
	before := 0
	if w.page.IsPresent(homeCartCount) {
		if text, err := w.page.Text(homeCartCount, WithTimeout(messageWait)); err == nil {
			before = parseCount(text)
		}
	}

	if err := w.page.Click(wishlistAddToCart); err != nil {
		return before, err
	}

	count := waitCountAbove(w.page.clock, w.page.explicitWait, w.page.interval, before, func() (int, error) {
		return badgeCount(w.page)
	})
	return count, nil
}

// RemoveFirst removes the first saved item and returns the remaining count
// once the row disappears.
func (w *WishlistPage) RemoveFirst() (int, error) {
	before := w.page.Count(wishlistItems)
	if before == 0 {
		return 0, nil
	}
	if err := w.page.Click(wishlistRemoveButton); err != nil {
		return before, err
	}
	waitUntil(w.page.clock, w.page.explicitWait, w.page.interval, func() (bool, error) {
		return w.page.Count(wishlistItems) < before, nil
	})
	return w.page.Count(wishlistItems), nil
}

// BadgeCount reads the wishlist header badge. A missing badge reads as zero.
func (w *WishlistPage) BadgeCount() int {
	if !w.page.IsPresent(wishlistCountBadge) {
		return 0
	}
	text, err := w.page.Text(wishlistCountBadge, WithTimeout(messageWait))
	if err != nil {
		return 0
	}
	return parseCount(text)
}
