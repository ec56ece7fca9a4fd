// Package navigation provides the menu and breadcrumbs rendered by the page layout.
package navigation

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// MenuItem is an entry of the top navigation bar.
type MenuItem struct {
	Title  string
	URL    string
	Page   string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActivePage  string
	Breadcrumbs []BreadcrumbItem
	Menu        []MenuItem
	PageTitle   string
}

// Pages of the navigation bar.
const (
	PageGenerator = "generator"
	PageFormats   = "formats"
)

// NewContext creates a new navigation context with the menu entry of
// activePage marked active.
func NewContext(pageTitle, activePage string) *Context {
	menu := []MenuItem{
		{Title: "Generator", URL: "/", Page: PageGenerator},
		{Title: "Formats", URL: "/formats", Page: PageFormats},
	}

	for i := range menu {
		menu[i].Active = menu[i].Page == activePage
	}

	return &Context{
		PageTitle:   pageTitle,
		ActivePage:  activePage,
		Breadcrumbs: make([]BreadcrumbItem, 0),
		Menu:        menu,
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive checks if page is the current page.
func (c *Context) IsActive(page string) bool {
	return c.ActivePage == page
}
