package pages

// Search results page locators.
var (
	searchResultItems  = css(".product-item, .grid__item, .product-card")
	searchResultTitles = css(".product__title, .product-title, h3")
	searchNoResults    = css(".no-results, .empty-search, .search-empty")
	searchCountLabel   = css(".results-count, .search-count, .total-results")
	searchResultLinks  = css(".product-item a, .grid__item a, .product-card a")
)

// SearchResultsPage drives the page shown after submitting a search. It has
// no fixed URL; tests reach it through HomePage.SearchFor.
type SearchResultsPage struct {
	page *Page
}

func NewSearchResultsPage(p *Page) *SearchResultsPage {
	return &SearchResultsPage{page: p}
}

// IsLoaded reports whether the page shows either results or the explicit
// no-results state.
func (s *SearchResultsPage) IsLoaded() bool {
	return s.page.IsVisible(searchResultItems, WithTimeout(messageWait)) ||
		s.page.IsVisible(searchNoResults, WithTimeout(messageWait)) ||
		urlContains(s.page, "search")
}

// HasResults reports whether any result tiles rendered.
func (s *SearchResultsPage) HasResults() bool {
	return s.page.Count(searchResultItems) > 0
}

// NoResultsMessageVisible reports whether the explicit empty indicator is
// shown.
func (s *SearchResultsPage) NoResultsMessageVisible() bool {
	return s.page.IsVisible(searchNoResults, WithTimeout(messageWait))
}

// ResultTitles returns the title text of every result tile.
func (s *SearchResultsPage) ResultTitles() []string {
	return s.page.AllTexts(searchResultTitles, WithTimeout(messageWait))
}

// ResultCount returns the number of result tiles.
func (s *SearchResultsPage) ResultCount() int {
	return s.page.Count(searchResultItems)
}

// CountLabel returns the "N results" label text, if the theme renders one.
func (s *SearchResultsPage) CountLabel() string {
	if !s.page.IsPresent(searchCountLabel) {
		return ""
	}
	text, err := s.page.Text(searchCountLabel, WithTimeout(messageWait))
	if err != nil {
		return ""
	}
	return text
}

// OpenFirstResult clicks through to the first result's detail page.
func (s *SearchResultsPage) OpenFirstResult() error {
	return s.page.Click(searchResultLinks)
}
