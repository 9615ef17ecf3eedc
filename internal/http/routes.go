package httpx

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	ecompanel "github.com/target/ecompanel-ui"
	"github.com/target/ecompanel-ui/internal/observability/statsd"
	"github.com/target/ecompanel-ui/internal/ports"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       AuthService
	Catalog    CatalogService
	Storefront StorefrontService
	Cart       CartService
	Orders     OrdersService
	Customers  CustomersService
	Dashboard  DashboardService
	// HealthChecks are probed by /readyz, keyed by dependency name.
	HealthChecks map[string]ports.HealthChecker

	Cookies     CookieConfig
	Compression *CompressionConfig // nil disables gzip
	Metrics     statsd.Sink        // optional
	// TemplateFS overrides the template source; tests point it at the repo templates.
	TemplateFS fs.FS
	IsDev      bool         // Development mode flag for hot reloading, etc.
	Logger     *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates the HTTP handler: storefront, sign-in, back office, health and static routes
// behind the shared middleware chain. RouteGuard wraps only /admin, /admin/... and /login.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ui, err := setupUIHandlers(services, logger)
	if err != nil {
		return nil, err
	}

	guard := RouteGuard(GuardConfig{
		CookieName: services.Cookies.SessionName,
		Logger:     logger,
		Metrics:    services.Metrics,
	})

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /readyz", readyHandler(services.HealthChecks))
	mux.Handle("GET /static/", staticHandler(services.IsDev, logger))

	registerStorefrontRoutes(mux, ui)
	registerAuthRoutes(mux, ui, guard)
	registerAdminRoutes(mux, ui, guard)
	mux.HandleFunc("/", ui.NotFound)

	mws := []Middleware{Recover(logger), Logging(logger)}
	if services.Compression != nil {
		cfg := *services.Compression
		if cfg.Logger == nil {
			cfg.Logger = logger
		}
		mws = append(mws, Compression(cfg))
	}
	mws = append(mws,
		BrowserDetection(),
		CSRFProtection(CSRFConfig{CookieDomain: services.Cookies.Domain, AllowJSON: true}),
		SessionToken(services.Cookies.SessionName),
	)
	return Chain(mux, mws...), nil
}

// templateFS picks the template source: an explicit override, disk in dev mode, or the embedded copy.
func templateFS(services RouterServices, logger *slog.Logger) fs.FS {
	if services.TemplateFS != nil {
		return services.TemplateFS
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(ecompanel.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		logger.Warn("embedded templates unavailable; falling back to disk", "error", err)
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

func setupUIHandlers(services RouterServices, logger *slog.Logger) (*UIHandlers, error) {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services, logger),
		DevMode:    services.IsDev,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}
	return &UIHandlers{
		T:          tr,
		Auth:       services.Auth,
		Catalog:    services.Catalog,
		Storefront: services.Storefront,
		Cart:       services.Cart,
		Orders:     services.Orders,
		Customers:  services.Customers,
		Dashboard:  services.Dashboard,
		Cookies:    services.Cookies,
		IsDev:      services.IsDev,
		Logger:     logger,
	}, nil
}

// staticHandler serves /static/* from disk in dev mode and from the embedded FS otherwise.
func staticHandler(isDev bool, logger *slog.Logger) http.Handler {
	var fsys http.FileSystem = http.Dir("frontend/static")
	if !isDev {
		sub, err := fs.Sub(ecompanel.StaticFS, "frontend/static")
		if err != nil {
			logger.Warn("embedded static assets unavailable; serving from disk", "error", err)
		} else {
			fsys = http.FS(sub)
		}
	}
	files := http.StripPrefix("/static/", http.FileServer(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDev {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		files.ServeHTTP(w, r)
	})
}

// registerStorefrontRoutes mounts the public pages. None of them pass through RouteGuard.
func registerStorefrontRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /products", h.Products)
	mux.HandleFunc("GET /product/{id}", h.Product)
	mux.HandleFunc("GET /category/{slugs...}", h.Category)
	mux.HandleFunc("GET /brand/{slug}", h.Brand)

	mux.HandleFunc("GET /cart", h.CartPage)
	mux.HandleFunc("POST /cart/items", h.AddToCart)
	mux.HandleFunc("POST /cart/items/{productId}", h.UpdateCartItem)
	mux.HandleFunc("POST /cart/items/{productId}/remove", h.RemoveCartItem)
	mux.HandleFunc("DELETE /cart/items/{productId}", h.RemoveCartItem)
	mux.HandleFunc("POST /cart/clear", h.ClearCart)
}

// registerAuthRoutes guards the sign-in page so signed-in users land on /admin.
// Logout and register are reachable in either state.
func registerAuthRoutes(mux *http.ServeMux, h *UIHandlers, guard Middleware) {
	login := http.NewServeMux()
	login.HandleFunc("GET "+loginPath, h.LoginPage)
	login.HandleFunc("POST "+loginPath, h.Login)
	mux.Handle(loginPath, guard(login))

	mux.HandleFunc("POST /logout", h.Logout)
	mux.HandleFunc("POST /register", h.Register)
}

// registerAdminRoutes mounts the back office on its own mux behind RouteGuard.
func registerAdminRoutes(mux *http.ServeMux, h *UIHandlers, guard Middleware) {
	admin := http.NewServeMux()

	admin.HandleFunc("GET /admin", h.DashboardPage)
	admin.HandleFunc("GET /admin/{$}", h.DashboardPage)

	admin.HandleFunc("GET /admin/products", h.AdminProductsPage)
	admin.HandleFunc("GET /admin/products/add", h.NewProductPage)
	admin.HandleFunc("POST /admin/products", h.SaveProduct(FormModeCreate))
	admin.HandleFunc("GET /admin/products/{id}/edit", h.EditProductPage)
	admin.HandleFunc("POST /admin/products/{id}", h.SaveProduct(FormModeEdit))
	admin.HandleFunc("POST /admin/products/{id}/delete", h.DeleteProduct)
	admin.HandleFunc("DELETE /admin/products/{id}", h.DeleteProduct)

	admin.HandleFunc("GET /admin/categories", h.CategoriesPage)
	admin.HandleFunc("GET /admin/categories/new", h.NewCategoryPage)
	admin.HandleFunc("POST /admin/categories", h.SaveCategory(FormModeCreate))
	admin.HandleFunc("POST /admin/categories/upload-image", h.UploadImage(ports.UploadCategoryImage))
	admin.HandleFunc("GET /admin/categories/{id}/edit", h.EditCategoryPage)
	admin.HandleFunc("POST /admin/categories/{id}", h.SaveCategory(FormModeEdit))
	admin.HandleFunc("POST /admin/categories/{id}/delete", h.DeleteCategory)
	admin.HandleFunc("DELETE /admin/categories/{id}", h.DeleteCategory)

	admin.HandleFunc("GET /admin/brands", h.BrandsPage)
	admin.HandleFunc("GET /admin/brands/new", h.NewBrandPage)
	admin.HandleFunc("POST /admin/brands", h.SaveBrand(FormModeCreate))
	admin.HandleFunc("POST /admin/brands/upload-logo", h.UploadImage(ports.UploadBrandLogo))
	admin.HandleFunc("GET /admin/brands/{id}/edit", h.EditBrandPage)
	admin.HandleFunc("POST /admin/brands/{id}", h.SaveBrand(FormModeEdit))
	admin.HandleFunc("POST /admin/brands/{id}/delete", h.DeleteBrand)
	admin.HandleFunc("DELETE /admin/brands/{id}", h.DeleteBrand)

	admin.HandleFunc("GET /admin/manufacturers", h.ManufacturersPage)
	admin.HandleFunc("GET /admin/manufacturers/new", h.NewManufacturerPage)
	admin.HandleFunc("POST /admin/manufacturers", h.SaveManufacturer(FormModeCreate))
	admin.HandleFunc("POST /admin/manufacturers/upload-logo", h.UploadImage(ports.UploadManufacturerLogo))
	admin.HandleFunc("GET /admin/manufacturers/{id}/edit", h.EditManufacturerPage)
	admin.HandleFunc("POST /admin/manufacturers/{id}", h.SaveManufacturer(FormModeEdit))
	admin.HandleFunc("POST /admin/manufacturers/{id}/delete", h.DeleteManufacturer)
	admin.HandleFunc("DELETE /admin/manufacturers/{id}", h.DeleteManufacturer)

	admin.HandleFunc("GET /admin/orders", h.OrdersPage)
	admin.HandleFunc("GET /admin/orders/{id}", h.OrderPage)
	admin.HandleFunc("POST /admin/orders/{id}/status", h.UpdateOrderStatus)

	admin.HandleFunc("GET /admin/customers", h.CustomersPage)
	admin.HandleFunc("GET /admin/customers/new", h.NewCustomerPage)
	admin.HandleFunc("POST /admin/customers", h.SaveCustomer(FormModeCreate))
	admin.HandleFunc("GET /admin/customers/{id}", h.CustomerPage)
	admin.HandleFunc("GET /admin/customers/{id}/edit", h.EditCustomerPage)
	admin.HandleFunc("POST /admin/customers/{id}", h.SaveCustomer(FormModeEdit))
	admin.HandleFunc("POST /admin/customers/{id}/delete", h.DeleteCustomer)
	admin.HandleFunc("DELETE /admin/customers/{id}", h.DeleteCustomer)

	admin.HandleFunc("/admin/", h.NotFound)

	guarded := guard(admin)
	mux.Handle("/admin", guarded)
	mux.Handle("/admin/", guarded)
}
