package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/target/ecompanel-ui/internal/http/ui/viewmodel"
)

const errMsgFixBelow = "Please fix the errors below."

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

//nolint:gochecknoglobals // static admin sidebar
var adminNav = []viewmodel.NavItem{
	{Name: "Dashboard", Href: "/admin"},
	{Name: "Products", Href: "/admin/products"},
	{Name: "Categories", Href: "/admin/categories"},
	{Name: "Brands", Href: "/admin/brands"},
	{Name: "Manufacturers", Href: "/admin/manufacturers"},
	{Name: "Orders", Href: "/admin/orders"},
	{Name: "Customers", Href: "/admin/customers"},
}

// navFor marks the sidebar entry matching path as active.
// The dashboard only matches exactly; other entries also match their sub-paths.
func navFor(path string) []viewmodel.NavItem {
	items := make([]viewmodel.NavItem, len(adminNav))
	copy(items, adminNav)
	for i := range items {
		href := items[i].Href
		if href == adminPath {
			items[i].Active = path == adminPath || path == adminPath+"/"
			continue
		}
		items[i].Active = path == href || strings.HasPrefix(path, href+"/")
	}
	return items
}

// buildLayout constructs shared layout metadata from the request.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
		IsAdmin:     IsAdminPage(meta.CurrentPage),
	}
	if layout.PageTitle == "" {
		layout.PageTitle = layout.Title
	}
	if layout.IsAdmin {
		layout.Nav = navFor(r.URL.Path)
	}
	return layout
}

// basePageData constructs the common page data map.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	return map[string]any{
		"Title":       layout.Title,
		"PageTitle":   layout.PageTitle,
		"CurrentPage": layout.CurrentPage,
		"CSRFToken":   layout.CSRFToken,
		"IsAdmin":     layout.IsAdmin,
		"Nav":         layout.Nav,
		"Errors":      map[string]string{},
	}
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: basePageData(r, meta), r: r}
}

// WithPagination adds a Pagination view model with prev/next links that keep the current query.
func (b *TemplateDataBuilder) WithPagination(basePath string, page, totalPages, totalCount int) *TemplateDataBuilder {
	p := viewmodel.Pagination{
		Page:       page,
		TotalPages: totalPages,
		TotalCount: totalCount,
		HasPrev:    page > 1,
		HasNext:    totalPages > 0 && page < totalPages,
	}
	if p.HasPrev {
		p.PrevURL = buildPageURL(basePath, b.r.URL.Query(), page-1)
	}
	if p.HasNext {
		p.NextURL = buildPageURL(basePath, b.r.URL.Query(), page+1)
	}
	b.data["Pagination"] = p
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

// buildPageURL returns basePath with page set, preserving other non-blank query params.
func buildPageURL(basePath string, q url.Values, page int) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		if strings.HasPrefix(k, "hx-") || k == "page" {
			continue
		}
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				qq.Add(k, s)
			}
		}
	}
	if page > 1 {
		qq.Set("page", strconv.Itoa(page))
	}
	if enc := qq.Encode(); enc != "" {
		return basePath + "?" + enc
	}
	return basePath
}

// pageParam parses ?page=N, defaulting to 1.
func pageParam(r *http.Request) int {
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && n > 0 {
		return n
	}
	return 1
}
