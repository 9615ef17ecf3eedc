package httpx

import (
	"context"
	"html"
	"io"
	"log/slog"
	"net/http"

	domainauth "github.com/target/ecompanel-ui/internal/domain/auth"
	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/http/ui/viewmodel"
	"github.com/target/ecompanel-ui/internal/ports"
	"github.com/target/ecompanel-ui/internal/service"
)

// AuthService is a minimal interface for sign-in UI needs.
type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.Session, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Logout(ctx context.Context, token string)
	Identity(ctx context.Context, token string) service.Identity
}

// CatalogService is the admin catalog surface.
type CatalogService interface {
	ListCategories(ctx context.Context, opts model.CategoryListOptions) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListBrands(ctx context.Context, includeUnpublished bool) ([]model.Brand, error)
	GetBrand(ctx context.Context, id string) (*model.Brand, error)
	CreateBrand(ctx context.Context, req model.BrandRequest) (*model.Brand, error)
	UpdateBrand(ctx context.Context, id string, req model.BrandRequest) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id string) error

	ListManufacturers(ctx context.Context) ([]model.Manufacturer, error)
	GetManufacturer(ctx context.Context, id string) (*model.Manufacturer, error)
	CreateManufacturer(ctx context.Context, req model.BrandRequest) (*model.Manufacturer, error)
	UpdateManufacturer(ctx context.Context, id string, req model.BrandRequest) (*model.Manufacturer, error)
	DeleteManufacturer(ctx context.Context, id string) error

	ListProducts(ctx context.Context, opts model.ProductListOptions) (model.Paged[model.Product], error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req model.ProductRequest, draft bool) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req model.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	UploadImage(ctx context.Context, kind ports.UploadKind, filename string, body io.Reader) (string, error)
}

// StorefrontService assembles public pages.
type StorefrontService interface {
	Home(ctx context.Context) (*service.HomePage, error)
	Menu(ctx context.Context) service.Menu
	Category(ctx context.Context, slugs []string, page int) (*service.CategoryPage, error)
	Brand(ctx context.Context, slug string, page int) (*service.BrandPage, error)
	Products(ctx context.Context, opts model.ProductListOptions) (model.Paged[model.Product], error)
	Product(ctx context.Context, id string) (*model.Product, error)
}

// CartService manages anonymous carts.
type CartService interface {
	Get(ctx context.Context, id string) (*model.Cart, error)
	Add(ctx context.Context, id, productID string, qty int) (*model.Cart, error)
	SetQuantity(ctx context.Context, id, productID string, qty int) (*model.Cart, error)
	Remove(ctx context.Context, id, productID string) (*model.Cart, error)
	Clear(ctx context.Context, id string) error
}

// OrdersService is a minimal interface for the orders UI.
type OrdersService interface {
	List(ctx context.Context, f service.OrderFilter) ([]model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)
}

// CustomersService is a minimal interface for the customers UI.
type CustomersService interface {
	List(ctx context.Context, query string) ([]model.Customer, error)
	Get(ctx context.Context, id string) (*service.CustomerDetail, error)
	Create(ctx context.Context, req model.CustomerRequest) (*model.Customer, error)
	Update(ctx context.Context, id string, req model.CustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
}

// DashboardService loads the admin landing page.
type DashboardService interface {
	Load(ctx context.Context) (*service.Dashboard, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AuthService       = (*service.AuthService)(nil)
	_ CatalogService    = (*service.CatalogService)(nil)
	_ StorefrontService = (*service.StorefrontService)(nil)
	_ CartService       = (*service.CartService)(nil)
	_ OrdersService     = (*service.OrderService)(nil)
	_ CustomersService  = (*service.CustomerService)(nil)
	_ DashboardService  = (*service.DashboardService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T          *TemplateRenderer
	Auth       AuthService
	Catalog    CatalogService
	Storefront StorefrontService
	Cart       CartService
	Orders     OrdersService
	Customers  CustomersService
	Dashboard  DashboardService
	Cookies    CookieConfig
	IsDev      bool // Development mode flag for enhanced error reporting
	Logger     *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// adminData builds page data for the back-office layout, including the header identity.
func (h *UIHandlers) adminData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	b := NewTemplateData(r, meta)
	token, _ := domainauth.TokenFromContext(r.Context())
	b.With("IsAuthenticated", token != "")
	if h.Auth != nil {
		id := h.Auth.Identity(r.Context(), token)
		b.With("User", &viewmodel.User{Name: id.Name, Email: id.Email, Initial: id.Initial})
	}
	return b
}

// storeData builds page data for the storefront layout: mega-menu and cart badge.
func (h *UIHandlers) storeData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	var menu service.Menu
	if h.Storefront != nil {
		menu = h.Storefront.Menu(r.Context())
	}
	return h.storeDataWithMenu(r, meta, menu)
}

func (h *UIHandlers) storeDataWithMenu(r *http.Request, meta PageMeta, menu service.Menu) *TemplateDataBuilder {
	b := NewTemplateData(r, meta)
	token, _ := domainauth.TokenFromContext(r.Context())
	return b.With("IsAuthenticated", token != "").
		With("Menu", menu).
		With("CartCount", h.cartCount(r))
}

// cartCount is best-effort; a missing or unreadable cart shows an empty badge.
func (h *UIHandlers) cartCount(r *http.Request) int {
	id := readCookie(r, CartCookieName)
	if h.Cart == nil || !service.ValidCartID(id) {
		return 0
	}
	c, err := h.Cart.Get(r.Context(), id)
	if err != nil {
		h.logger().DebugContext(r.Context(), "cart badge lookup failed", "error", err)
		return 0
	}
	return c.ItemCount()
}

// renderPage renders data as a full page, or only the content fragment for htmx swaps.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	title, _ := data["Title"].(string)
	pageTitle, _ := data["PageTitle"].(string)
	page, _ := data["CurrentPage"].(string)

	// htmx updates document.title from a leading <title> element.
	if _, err := io.WriteString(w, `<title>`+html.EscapeString(title)+`</title>`); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}
	if IsAdminPage(page) {
		oob := `<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + html.EscapeString(pageTitle) + `</h1>`
		if _, err := io.WriteString(w, oob); err != nil {
			h.logger().Error("failed to write partial header title", "error", err)
			return
		}
	}
	if err := h.T.RenderContent(w, page, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

// renderFragment renders a named partial template, used for htmx row and badge swaps.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.T.Render(w, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "fragment render")
	}
}

func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, phase string) {
	h.logger().ErrorContext(r.Context(), "template render failed",
		slog.String("phase", phase),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	http.Error(w, "Template error", http.StatusInternalServerError)
}

// deleteHandlerOpts encapsulates common delete-handling behavior for admin endpoints.
type deleteHandlerOpts struct {
	Delete       func(ctx context.Context, id string) error
	RedirectPath string
	Success      string
}

// handleDelete removes the resource named by the {id} path value and returns
// the browser to the listing.
func (h *UIHandlers) handleDelete(w http.ResponseWriter, r *http.Request, opts deleteHandlerOpts) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}
	if err := opts.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]any{"success": true, "redirect": opts.RedirectPath})
		return
	}
	triggerToast(w, opts.Success, "success")
	Redirect(w, r, opts.RedirectPath)
}
