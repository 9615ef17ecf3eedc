package httpx

import (
	"net/http"
	"strings"

	"github.com/target/ecompanel-ui/internal/domain/model"
)

const storeTitleSuffix = " - eCom Store"

// totalPages falls back to TotalCount/PageSize when the backend omits totalPages.
func totalPages[T any](p model.Paged[T]) int {
	if p.TotalPages > 0 {
		return p.TotalPages
	}
	if p.PageSize <= 0 || p.TotalCount <= 0 {
		return 1
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// Home renders the storefront landing page.
// GET /.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.Storefront.Home(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.storeDataWithMenu(r, PageMeta{Title: "eCom Store", PageTitle: "Home", CurrentPage: PageHome}, home.Menu).
		With("Banners", home.Banners).
		With("Products", home.Products).
		With("Categories", home.Categories).
		With("Brands", home.Brands).
		Build()
	h.renderPage(w, r, data)
}

// Products renders the paged product listing.
// GET /products?page=N&q=term&sort=asc|desc.
func (h *UIHandlers) Products(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.ProductListOptions{
		Page:          pageParam(r),
		Search:        strings.TrimSpace(q.Get("q")),
		SortDirection: model.SortDirection(strings.ToLower(q.Get("sort"))),
	}.Normalize()

	page, err := h.Storefront.Products(r.Context(), opts)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.storeData(r, PageMeta{Title: "Products" + storeTitleSuffix, PageTitle: "All products", CurrentPage: PageProducts}).
		With("Products", page.Items).
		With("Query", opts.Search).
		With("Sort", string(opts.SortDirection)).
		WithPagination("/products", opts.Page, totalPages(page), page.TotalCount).
		Build()
	h.renderPage(w, r, data)
}

// Product renders a product detail page.
// GET /product/{id}.
func (h *UIHandlers) Product(w http.ResponseWriter, r *http.Request) {
	p, err := h.Storefront.Product(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.storeData(r, PageMeta{Title: p.Name + storeTitleSuffix, PageTitle: p.Name, CurrentPage: PageProduct}).
		With("Product", p).
		With("MaxQuantity", model.MaxCartQuantity).
		Build()
	h.renderPage(w, r, data)
}

// Category renders a category page addressed by its slug path.
// GET /category/{slugs...} such as /category/men/shoes/running.
func (h *UIHandlers) Category(w http.ResponseWriter, r *http.Request) {
	var slugs []string
	for _, s := range strings.Split(r.PathValue("slugs"), "/") {
		if s = strings.TrimSpace(s); s != "" {
			slugs = append(slugs, s)
		}
	}
	page := pageParam(r)
	cp, err := h.Storefront.Category(r.Context(), slugs, page)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.storeData(r, PageMeta{Title: cp.Category.Name + storeTitleSuffix, PageTitle: cp.Category.Name, CurrentPage: PageCategory}).
		With("Category", cp.Category).
		With("Breadcrumbs", cp.Breadcrumbs).
		With("CategoryURL", strings.TrimSuffix(r.URL.Path, "/")).
		With("Products", cp.Products.Items).
		WithPagination(r.URL.Path, page, totalPages(cp.Products), cp.Products.TotalCount).
		Build()
	h.renderPage(w, r, data)
}

// Brand renders a brand page.
// GET /brand/{slug}.
func (h *UIHandlers) Brand(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	bp, err := h.Storefront.Brand(r.Context(), r.PathValue("slug"), page)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	data := h.storeData(r, PageMeta{Title: bp.Brand.Name + storeTitleSuffix, PageTitle: bp.Brand.Name, CurrentPage: PageBrand}).
		With("Brand", bp.Brand).
		With("Products", bp.Products.Items).
		WithPagination(r.URL.Path, page, totalPages(bp.Products), bp.Products.TotalCount).
		Build()
	h.renderPage(w, r, data)
}
