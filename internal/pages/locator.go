package pages

import "fmt"

// Strategy identifies how a selector string should be interpreted.
type Strategy string

const (
	ByCSS   Strategy = "css"
	ByXPath Strategy = "xpath"
	ByText  Strategy = "text"
)

// Locator identifies a page element by strategy and selector. Locators are
// read-only constants defined per page object.
type Locator struct {
	Strategy Strategy
	Selector string
}

// String renders the locator in the selector-engine form understood by the
// driver: css selectors pass through bare, other strategies get a prefix.
func (l Locator) String() string {
	switch l.Strategy {
	case ByXPath:
		return "xpath=" + l.Selector
	case ByText:
		return "text=" + l.Selector
	default:
		return l.Selector
	}
}

// GoString makes failed-assertion output readable.
func (l Locator) GoString() string {
	return fmt.Sprintf("pages.Locator{%s %q}", l.Strategy, l.Selector)
}

func css(selector string) Locator   { return Locator{Strategy: ByCSS, Selector: selector} }
func xpath(selector string) Locator { return Locator{Strategy: ByXPath, Selector: selector} }
