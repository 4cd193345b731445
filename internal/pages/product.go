package pages

// Product page locators.
var (
	productTitle        = css(".product__title, h1, .product-title")
	productPrice        = css(".product__price, .price, .product-price")
	productDescription  = css(".product__description, .product-description, .description")
	productMainImage    = css(".product__image img, .main-image img, .product-image img")
	productSizeSelect   = css("select[name*='size'], .size-selector, .product__size")
	productAddToCart    = css("button[name*='add'], .add-to-cart, .btn--add-to-cart")
	productAddWishlist  = css(".add-to-wishlist, .wishlist-add, button[name*='wishlist']")
	productStockStatus  = css(".product__stock, .stock-status, .availability")
	productOutOfStock   = css(".out-of-stock, .unavailable")
)

// ProductPage drives a single product detail page. Product pages have no
// fixed URL; tests reach them through the shop or search pages, or via
// OpenURL with a known product address.
type ProductPage struct {
	page *Page
}

func NewProductPage(p *Page) *ProductPage {
	return &ProductPage{page: p}
}

// OpenURL navigates straight to a product address.
func (pp *ProductPage) OpenURL(url string) error {
	return pp.page.Navigate(url)
}

// IsLoaded reports whether the product detail rendered a title and price.
func (pp *ProductPage) IsLoaded() bool {
	return pp.page.IsVisible(productTitle) && pp.page.IsPresent(productPrice)
}

// Title returns the product name.
func (pp *ProductPage) Title() (string, error) {
	return pp.page.Text(productTitle)
}

// Price returns the displayed price text.
func (pp *ProductPage) Price() (string, error) {
	return pp.page.Text(productPrice)
}

// Description returns the product description text.
func (pp *ProductPage) Description() (string, error) {
	return pp.page.Text(productDescription)
}

// MainImageVisible reports whether the primary product image rendered.
func (pp *ProductPage) MainImageVisible() bool {
	return pp.page.IsVisible(productMainImage)
}

// SelectSize picks a size variant when the product offers one.
func (pp *ProductPage) SelectSize() error {
	if !pp.page.IsPresent(productSizeSelect) {
		return nil
	}
	return pp.page.Click(productSizeSelect)
}

// AddToCart clicks the add-to-cart button and returns the new cart badge
// count once it updates.
func (pp *ProductPage) AddToCart() (int, error) {
	before := 0
	if pp.page.IsPresent(homeCartCount) {
		if text, err := pp.page.Text(homeCartCount, WithTimeout(messageWait)); err == nil {
			before = parseCount(text)
		}
	}

	if err := pp.page.Click(productAddToCart); err != nil {
		return before, err
	}

	count := waitCountAbove(pp.page.clock, pp.page.explicitWait, pp.page.interval, before, func() (int, error) {
		return badgeCount(pp.page)
	})
	return count, nil
}

// AddToWishlist saves the product for later.
func (pp *ProductPage) AddToWishlist() error {
	return pp.page.Click(productAddWishlist)
}

// InStock reports whether the product is purchasable. Pages without a stock
// indicator are treated as in stock.
func (pp *ProductPage) InStock() bool {
	if pp.page.IsPresent(productOutOfStock) {
		return false
	}
	if !pp.page.IsPresent(productStockStatus) {
		return true
	}
	text, err := pp.page.Text(productStockStatus, WithTimeout(messageWait))
	if err != nil {
		return true
	}
	return !containsFold(text, "out of stock")
}
