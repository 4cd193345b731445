package pages

import (
	"fmt"
	"strconv"

	"github.com/instyleqa/storefront-e2e/internal/config"
)

// Cart page locators.
var (
	cartItems         = css(".cart__item, .cart-item, .line-item")
	cartItemNames     = css(".cart__item-title, .cart-item__title, .line-item__title")
	cartItemPrices    = css(".cart__item-price, .cart-item__price, .line-item__price")
	cartQuantityInput = css("input[name*='quantity'], .quantity__input, .cart__quantity-input")
	cartRemoveButton  = css(".cart__remove, .remove-item, a[href*='remove'], button[name*='remove']")
	cartSubtotal      = css(".cart__subtotal, .subtotal, .cart-subtotal")
	cartCheckoutBtn   = css(".btn--checkout, .cart__checkout, a[href*='checkout']")
	cartEmptyMessage  = css(".cart--empty, .empty-cart, .cart__empty")
	cartCouponInput   = css("input[name*='coupon'], input[name*='discount'], #coupon_code")
	cartCouponApply   = css("button[name*='coupon'], .apply-coupon")
	cartCouponError   = css(".coupon-error, .discount-error")
	cartCouponSuccess = css(".coupon-success, .discount-success")
)

// CartItem is a single cart line.
type CartItem struct {
	Name  string
	Price string
}

// CartPage drives the shopping cart page.
type CartPage struct {
	page *Page
	urls config.URLs
}

func NewCartPage(p *Page, cfg *config.Config) *CartPage {
	return &CartPage{page: p, urls: cfg.URLs}
}

// Open navigates to the cart page.
func (c *CartPage) Open() error {
	return c.page.Navigate(c.urls.Cart)
}

// IsLoaded reports whether the cart page rendered either line items or the
// empty-cart message.
func (c *CartPage) IsLoaded() bool {
	return urlContains(c.page, "cart") ||
		c.page.IsPresent(cartItems) ||
		c.page.IsPresent(cartEmptyMessage)
}

// IsEmpty reports whether the cart holds no items.
func (c *CartPage) IsEmpty() bool {
	return c.page.IsVisible(cartEmptyMessage, WithTimeout(messageWait)) ||
		c.page.Count(cartItems) == 0
}

// ItemCount returns the number of cart lines.
func (c *CartPage) ItemCount() int {
	return c.page.Count(cartItems)
}

// Items returns the name/price pairs of all cart lines.
func (c *CartPage) Items() []CartItem {
	names := c.page.AllTexts(cartItemNames, WithTimeout(messageWait))
	prices := c.page.AllTexts(cartItemPrices, WithTimeout(messageWait))

	var items []CartItem
	for i, name := range names {
		item := CartItem{Name: name}
		if i < len(prices) {
			item.Price = prices[i]
		}
		items = append(items, item)
	}
	return items
}

// SetQuantity updates the quantity input of the first cart line.
func (c *CartPage) SetQuantity(qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", qty)
	}
	return c.page.TypeText(cartQuantityInput, strconv.Itoa(qty))
}

// RemoveFirstItem removes the first cart line and returns the remaining
// line count once the row disappears.
func (c *CartPage) RemoveFirstItem() (int, error) {
	before := c.page.Count(cartItems)
	if before == 0 {
		return 0, nil
	}
	if err := c.page.Click(cartRemoveButton); err != nil {
		return before, err
	}
	waitUntil(c.page.clock, c.page.explicitWait, c.page.interval, func() (bool, error) {
		return c.page.Count(cartItems) < before, nil
	})
	return c.page.Count(cartItems), nil
}

// Subtotal returns the cart subtotal text.
func (c *CartPage) Subtotal() (string, error) {
	return c.page.Text(cartSubtotal)
}

// ApplyCoupon enters a discount code and reports whether the storefront
// accepted it.
func (c *CartPage) ApplyCoupon(code string) (bool, error) {
	if err := c.page.TypeText(cartCouponInput, code); err != nil {
		return false, err
	}
	if err := c.page.Click(cartCouponApply); err != nil {
		return false, err
	}
	if c.page.IsVisible(cartCouponSuccess, WithTimeout(messageWait)) {
		return true, nil
	}
	return !c.page.IsVisible(cartCouponError, WithTimeout(messageWait)), nil
}

// ProceedToCheckout clicks through to the checkout flow.
func (c *CartPage) ProceedToCheckout() error {
	return c.page.Click(cartCheckoutBtn)
}
