package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/observability/statsd"
	"github.com/target/ecompanel-ui/internal/ports"
	"github.com/target/ecompanel-ui/internal/service"
)

const (
	testSessionCookie = "authToken"
	testCSRFToken     = "test-csrf-token"
)

// fakeAuth accepts admin@example.com / secret.
type fakeAuth struct {
	mu      sync.Mutex
	logouts []string
}

func (f *fakeAuth) Login(_ context.Context, req model.LoginRequest) (model.Session, error) {
	if err := req.Validate(); err != nil {
		return model.Session{}, apperrors.Validation(err.Error())
	}
	if req.Email != "admin@example.com" || req.Password != "secret" {
		return model.Session{}, apperrors.New(apperrors.ErrCodeUnauthorized, service.InvalidCredentialsMessage)
	}
	return model.Session{Token: "tok-123", User: model.User{ID: "u1", Email: req.Email, FirstName: "Ada", LastName: "Admin"}}, nil
}

func (f *fakeAuth) Register(_ context.Context, req model.RegisterRequest) (model.User, error) {
	if err := req.Validate(); err != nil {
		return model.User{}, apperrors.Validation(err.Error())
	}
	return model.User{ID: "u2", Email: req.Email, FirstName: req.FirstName, LastName: req.LastName}, nil
}

func (f *fakeAuth) Logout(_ context.Context, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts = append(f.logouts, token)
}

func (f *fakeAuth) Identity(_ context.Context, _ string) service.Identity {
	return service.Identity{Name: "Ada Admin", Email: "admin@example.com", Initial: "A"}
}

// fakeCatalog keeps entities in maps and records the last write.
type fakeCatalog struct {
	mu            sync.Mutex
	categories    []model.Category
	brands        []model.Brand
	manufacturers []model.Manufacturer
	products      []model.Product

	createErr   error
	lastProduct *model.ProductRequest
	lastDraft   bool
	lastCat     *model.CategoryRequest
	lastBrand   *model.BrandRequest
	deleted     []string
	uploads     []string
	listOpts    []model.ProductListOptions
}

func newFakeCatalog() *fakeCatalog {
	old := 30.0
	return &fakeCatalog{
		categories: []model.Category{{
			ID: "c1", Name: "Men", Slug: "men", IsActive: true,
			SubCategories: []model.Category{{ID: "c2", Name: "Shoes", Slug: "shoes", IsActive: true, ParentCategoryID: strPtr("c1")}},
		}},
		brands:        []model.Brand{{ID: "b1", Name: "Acme", Slug: "acme", IsPublished: true}},
		manufacturers: []model.Manufacturer{{ID: "m1", Name: "Globex", Slug: "globex", IsPublished: true}},
		products: []model.Product{
			{ID: "p1", Name: "Runner", SKU: "RUN-1", Price: 25, OldPrice: &old, StockQuantity: 12, IsPublished: true, CategoryID: "c2", CategoryName: "Shoes"},
			{ID: "p2", Name: "Sold Out Tee", SKU: "TEE-1", Price: 10, StockQuantity: 0, IsPublished: true},
		},
	}
}

func strPtr(s string) *string { return &s }

func (f *fakeCatalog) ListCategories(context.Context, model.CategoryListOptions) ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalog) GetCategory(_ context.Context, id string) (*model.Category, error) {
	var find func([]model.Category) *model.Category
	find = func(cs []model.Category) *model.Category {
		for i := range cs {
			if cs[i].ID == id {
				return &cs[i]
			}
			if c := find(cs[i].SubCategories); c != nil {
				return c
			}
		}
		return nil
	}
	if c := find(f.categories); c != nil {
		return c, nil
	}
	return nil, apperrors.NotFound("Category not found")
}

func (f *fakeCatalog) CreateCategory(_ context.Context, req model.CategoryRequest) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCat = &req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Category{ID: "c9", Name: req.Name}, nil
}

func (f *fakeCatalog) UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error) {
	if _, err := f.GetCategory(ctx, id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCat = &req
	return &model.Category{ID: id, Name: req.Name}, nil
}

func (f *fakeCatalog) DeleteCategory(_ context.Context, id string) error { return f.remove(id) }

func (f *fakeCatalog) ListBrands(context.Context, bool) ([]model.Brand, error) { return f.brands, nil }

func (f *fakeCatalog) GetBrand(_ context.Context, id string) (*model.Brand, error) {
	for i := range f.brands {
		if f.brands[i].ID == id {
			return &f.brands[i], nil
		}
	}
	return nil, apperrors.NotFound("Brand not found")
}

func (f *fakeCatalog) CreateBrand(_ context.Context, req model.BrandRequest) (*model.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBrand = &req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Brand{ID: "b9", Name: req.Name}, nil
}

func (f *fakeCatalog) UpdateBrand(_ context.Context, id string, req model.BrandRequest) (*model.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBrand = &req
	return &model.Brand{ID: id, Name: req.Name}, nil
}

func (f *fakeCatalog) DeleteBrand(_ context.Context, id string) error { return f.remove(id) }

func (f *fakeCatalog) ListManufacturers(context.Context) ([]model.Manufacturer, error) {
	return f.manufacturers, nil
}

func (f *fakeCatalog) GetManufacturer(_ context.Context, id string) (*model.Manufacturer, error) {
	for i := range f.manufacturers {
		if f.manufacturers[i].ID == id {
			return &f.manufacturers[i], nil
		}
	}
	return nil, apperrors.NotFound("Manufacturer not found")
}

func (f *fakeCatalog) CreateManufacturer(_ context.Context, req model.BrandRequest) (*model.Manufacturer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBrand = &req
	return &model.Manufacturer{ID: "m9", Name: req.Name}, nil
}

func (f *fakeCatalog) UpdateManufacturer(_ context.Context, id string, req model.BrandRequest) (*model.Manufacturer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBrand = &req
	return &model.Manufacturer{ID: id, Name: req.Name}, nil
}

func (f *fakeCatalog) DeleteManufacturer(_ context.Context, id string) error { return f.remove(id) }

func (f *fakeCatalog) ListProducts(_ context.Context, opts model.ProductListOptions) (model.Paged[model.Product], error) {
	f.mu.Lock()
	f.listOpts = append(f.listOpts, opts)
	f.mu.Unlock()
	var items []model.Product
	for _, p := range f.products {
		if opts.Search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(opts.Search)) {
			items = append(items, p)
		}
	}
	return model.Paged[model.Product]{Items: items, TotalCount: len(items), Page: 1, PageSize: 20, TotalPages: 1}, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, id string) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("Product not found")
}

func (f *fakeCatalog) CreateProduct(_ context.Context, req model.ProductRequest, draft bool) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastProduct = &req
	f.lastDraft = draft
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Product{ID: "p9", Name: req.Name}, nil
}

func (f *fakeCatalog) UpdateProduct(ctx context.Context, id string, req model.ProductRequest) (*model.Product, error) {
	if _, err := f.GetProduct(ctx, id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastProduct = &req
	return &model.Product{ID: id, Name: req.Name}, nil
}

func (f *fakeCatalog) DeleteProduct(_ context.Context, id string) error { return f.remove(id) }

func (f *fakeCatalog) UploadImage(_ context.Context, kind ports.UploadKind, filename string, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, string(kind)+":"+filename)
	return "https://cdn.example.com/" + filename, nil
}

func (f *fakeCatalog) remove(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id == "missing" {
		return apperrors.NotFound("Not found")
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeStorefront serves pages built from a fakeCatalog.
type fakeStorefront struct {
	catalog *fakeCatalog
}

func (f *fakeStorefront) Home(ctx context.Context) (*service.HomePage, error) {
	return &service.HomePage{
		Banners:    []model.Banner{{ID: "bn1", Title: "Summer sale", ImageURL: "/static/img/summer.jpg", LinkURL: "/products", IsActive: true}},
		Products:   f.catalog.products,
		Categories: f.catalog.categories,
		Brands:     f.catalog.brands,
		Menu:       f.Menu(ctx),
	}, nil
}

func (f *fakeStorefront) Menu(context.Context) service.Menu {
	return service.Menu{
		Categories: []service.MenuItem{{Name: "Men", URL: "/category/men", Children: []service.MenuItem{{Name: "Shoes", URL: "/category/men/shoes"}}}},
		Brands:     []service.MenuItem{{Name: "Acme", URL: "/brand/acme"}},
	}
}

func (f *fakeStorefront) Category(_ context.Context, slugs []string, _ int) (*service.CategoryPage, error) {
	if len(slugs) != 2 || slugs[0] != "men" || slugs[1] != "shoes" {
		return nil, apperrors.NotFound("Category not found")
	}
	return &service.CategoryPage{
		Category:    f.catalog.categories[0].SubCategories[0],
		Breadcrumbs: []service.Crumb{{Name: "Men", URL: "/category/men"}, {Name: "Shoes", URL: "/category/men/shoes"}},
		Products:    model.Paged[model.Product]{Items: f.catalog.products[:1], TotalCount: 1, Page: 1, TotalPages: 1},
	}, nil
}

func (f *fakeStorefront) Brand(_ context.Context, slug string, _ int) (*service.BrandPage, error) {
	if slug != "acme" {
		return nil, apperrors.NotFound("Brand not found")
	}
	return &service.BrandPage{Brand: f.catalog.brands[0], Products: model.Paged[model.Product]{Items: f.catalog.products, TotalCount: 2, Page: 1, TotalPages: 1}}, nil
}

func (f *fakeStorefront) Products(ctx context.Context, opts model.ProductListOptions) (model.Paged[model.Product], error) {
	return f.catalog.ListProducts(ctx, opts)
}

func (f *fakeStorefront) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.GetProduct(ctx, id)
}

// fakeCart keeps carts in memory and prices lines from the catalog.
type fakeCart struct {
	mu      sync.Mutex
	catalog *fakeCatalog
	carts   map[string]*model.Cart
	seq     int
}

func newFakeCart(c *fakeCatalog) *fakeCart {
	return &fakeCart{catalog: c, carts: map[string]*model.Cart{}}
}

func (f *fakeCart) Get(_ context.Context, id string) (*model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.carts[id]; ok {
		return c, nil
	}
	return &model.Cart{}, nil
}

func (f *fakeCart) Add(ctx context.Context, id, productID string, qty int) (*model.Cart, error) {
	p, err := f.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[id]
	if !ok {
		f.seq++
		c = &model.Cart{ID: "cart-" + string(rune('0'+f.seq))}
		f.carts[c.ID] = c
	}
	if err := c.Add(model.CartLine{ProductID: p.ID, Name: p.Name, SKU: p.SKU, UnitPrice: p.Price, Quantity: qty}); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *fakeCart) SetQuantity(_ context.Context, id, productID string, qty int) (*model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[id]
	if !ok {
		return nil, apperrors.NotFound("Cart not found")
	}
	if err := c.SetQuantity(productID, qty); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *fakeCart) Remove(_ context.Context, id, productID string) (*model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[id]
	if !ok {
		return &model.Cart{}, nil
	}
	c.Remove(productID)
	return c, nil
}

func (f *fakeCart) Clear(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.carts, id)
	return nil
}

// fakeOrders holds a fixed order book.
type fakeOrders struct {
	mu     sync.Mutex
	orders []model.Order
	err    error
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{orders: []model.Order{
		{ID: "o1", CustomerID: "cu1", Status: model.OrderPending, TotalAmount: 50, Items: []model.OrderItem{{ProductID: "p1", ProductName: "Runner", Quantity: 2, Price: 25}}},
		{ID: "o2", CustomerID: "cu1", Status: model.OrderCancelled, TotalAmount: 10},
	}}
}

func (f *fakeOrders) List(_ context.Context, filter service.OrderFilter) ([]model.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Order
	for _, o := range f.orders {
		if (filter.Status == "" || o.Status == filter.Status) && (filter.CustomerID == "" || o.CustomerID == filter.CustomerID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) Get(_ context.Context, id string) (*model.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, apperrors.NotFound("Order not found")
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	st, err := model.ParseOrderStatus(status)
	if err != nil {
		return nil, apperrors.ValidationField("status", "Unknown order status")
	}
	o, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	o.Status = st
	return o, nil
}

// fakeCustomers is backed by the order book for history.
type fakeCustomers struct {
	orders  *fakeOrders
	created []model.CustomerRequest
}

func (f *fakeCustomers) List(_ context.Context, query string) ([]model.Customer, error) {
	all := []model.Customer{{ID: "cu1", Name: "Grace Hopper", Email: "grace@example.com"}}
	if query != "" && !strings.Contains(strings.ToLower(all[0].Name), strings.ToLower(query)) {
		return nil, nil
	}
	return all, nil
}

func (f *fakeCustomers) Get(ctx context.Context, id string) (*service.CustomerDetail, error) {
	if id != "cu1" {
		return nil, apperrors.NotFound("Customer not found")
	}
	orders, _ := f.orders.List(ctx, service.OrderFilter{CustomerID: id})
	return &service.CustomerDetail{Customer: model.Customer{ID: id, Name: "Grace Hopper", Email: "grace@example.com"}, Orders: orders}, nil
}

func (f *fakeCustomers) Create(_ context.Context, req model.CustomerRequest) (*model.Customer, error) {
	f.created = append(f.created, req)
	return &model.Customer{ID: "cu9", Name: req.Name, Email: req.Email}, nil
}

func (f *fakeCustomers) Update(_ context.Context, id string, req model.CustomerRequest) (*model.Customer, error) {
	return &model.Customer{ID: id, Name: req.Name, Email: req.Email}, nil
}

func (f *fakeCustomers) Delete(_ context.Context, id string) error {
	if id != "cu1" {
		return apperrors.NotFound("Customer not found")
	}
	return nil
}

type fakeDashboard struct {
	err error
}

func (f *fakeDashboard) Load(context.Context) (*service.Dashboard, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &service.Dashboard{
		Cards: []service.StatCard{
			{Key: "products", Label: "Products", Value: "2"},
			{Key: "orders", Label: "Pending orders", Degraded: true},
		},
		RecentOrders: newFakeOrders().orders,
	}, nil
}

type fakeChecker struct{ err error }

func (f fakeChecker) Health(context.Context) error { return f.err }

// testEnv bundles a router with the fakes behind it.
type testEnv struct {
	handler   http.Handler
	auth      *fakeAuth
	catalog   *fakeCatalog
	cart      *fakeCart
	orders    *fakeOrders
	customers *fakeCustomers
	dashboard *fakeDashboard
	metrics   *statsd.Recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	catalog := newFakeCatalog()
	orders := newFakeOrders()
	env := &testEnv{
		auth:      &fakeAuth{},
		catalog:   catalog,
		cart:      newFakeCart(catalog),
		orders:    orders,
		customers: &fakeCustomers{orders: orders},
		dashboard: &fakeDashboard{},
		metrics:   statsd.NewRecorder(),
	}
	h, err := NewRouter(RouterServices{
		Auth:         env.auth,
		Catalog:      env.catalog,
		Storefront:   &fakeStorefront{catalog: catalog},
		Cart:         env.cart,
		Orders:       env.orders,
		Customers:    env.customers,
		Dashboard:    env.dashboard,
		HealthChecks: map[string]ports.HealthChecker{"redis": fakeChecker{}},
		Cookies:      CookieConfig{SessionName: testSessionCookie, SessionMaxAge: 3600},
		Metrics:      env.metrics,
		TemplateFS:   os.DirFS(TemplatePathFromTest),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	env.handler = h
	return env
}

// do serves req and returns the recorder.
func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

type reqOpt func(*http.Request)

func withSession(token string) reqOpt {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: testSessionCookie, Value: token}) }
}

func withCookie(name, value string) reqOpt {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func withHTMX() reqOpt {
	return func(r *http.Request) { r.Header.Set("Hx-Request", "true") }
}

func withHeader(k, v string) reqOpt {
	return func(r *http.Request) { r.Header.Set(k, v) }
}

func getReq(path string, opts ...reqOpt) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	r.Header.Set("Accept", "text/html")
	for _, o := range opts {
		o(r)
	}
	return r
}

// formReq builds a CSRF-valid urlencoded POST.
func formReq(path string, form url.Values, opts ...reqOpt) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Accept", "text/html")
	r.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	for _, o := range opts {
		o(r)
	}
	return r
}

// jsonReq builds a JSON request; JSON bodies skip CSRF validation.
func jsonReq(method, path, body string, opts ...reqOpt) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")
	for _, o := range opts {
		o(r)
	}
	return r
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
