package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instyleqa/storefront-e2e/internal/pages"
)

// TestProduct_DetailsVisible verifies a product detail page renders title,
// price and image.
//
//	Scenario: View a product
//	  Given I open the first product from the shop listing
//	  Then I see its title, price and main image
func TestProduct_DetailsVisible(t *testing.T) {
	smoke(t)
	t.Parallel()
	p := newPage(t)

	shop := pages.NewShopPage(p, cfg)
	require.NoError(t, shop.Open(), "failed to open shop page")
	require.True(t, shop.IsLoaded(), "shop page has no products")
	require.NoError(t, shop.OpenFirstProduct(), "failed to open a product")

	product := pages.NewProductPage(p)
	require.True(t, product.IsLoaded(), "product page did not load")

	title, err := product.Title()
	require.NoError(t, err, "failed to read product title")
	assert.NotEmpty(t, title, "product title should not be empty")

	price, err := product.Price()
	require.NoError(t, err, "failed to read product price")
	assert.NotEmpty(t, price, "product price should not be empty")

	assert.True(t, product.MainImageVisible(), "main product image should be visible")
}

// TestProduct_ListingTilesMatchDetail verifies the title on the listing tile
// carries over to the detail page.
func TestProduct_ListingTilesMatchDetail(t *testing.T) {
	regression(t)
	t.Parallel()
	p := newPage(t)

	shop := pages.NewShopPage(p, cfg)
	require.NoError(t, shop.Open(), "failed to open shop page")

	tiles := shop.Products()
	require.NotEmpty(t, tiles, "expected product tiles in the shop listing")
	require.NoError(t, shop.OpenFirstProduct(), "failed to open a product")

	product := pages.NewProductPage(p)
	title, err := product.Title()
	require.NoError(t, err, "failed to read product title")
	assert.NotEmpty(t, title, "detail page should carry the product title")
}

// TestProduct_CategoryFilter verifies category filters narrow the listing.
func TestProduct_CategoryFilter(t *testing.T) {
	feature(t)
	t.Parallel()
	p := newPage(t)

	shop := pages.NewShopPage(p, cfg)
	require.NoError(t, shop.Open(), "failed to open shop page")
	require.True(t, shop.IsLoaded(), "shop page has no products")

	if err := shop.FilterByCategory("HEELS"); err != nil {
		t.Skipf("category filter not offered by current theme: %v", err)
	}
	assert.True(t, shop.IsLoaded(), "filtered listing should still show products")
}
