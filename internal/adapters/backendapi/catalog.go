package backendapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/ports"
)

var (
	_ ports.CategoryAPI     = (*Client)(nil)
	_ ports.BrandAPI        = (*Client)(nil)
	_ ports.ManufacturerAPI = (*Client)(nil)
	_ ports.ProductAPI      = (*Client)(nil)
	_ ports.BannerAPI       = (*Client)(nil)
)

// withID adds the id to update payloads; the backend rejects PUTs whose body id is missing.
func withID(id string, body any) any {
	b, err := json.Marshal(body)
	if err != nil {
		return body
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return body
	}
	m["id"] = id
	return m
}

func itemPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}

const (
	categoriesPath    = "/api/categories"
	brandsPath        = "/api/brands"
	manufacturersPath = "/api/manufacturers"
	productsPath      = "/api/products"
	bannersPath       = "/api/Banners"
)

// ListCategories returns categories, optionally with inactive ones and nested children.
func (c *Client) ListCategories(ctx context.Context, opts model.CategoryListOptions) ([]model.Category, error) {
	q := url.Values{}
	q.Set("includeInactive", strconv.FormatBool(opts.IncludeInactive))
	q.Set("includeSubCategories", strconv.FormatBool(opts.IncludeSubCategories))
	return getJSON[[]model.Category](ctx, c, request{path: categoriesPath, query: q, auth: opts.IncludeInactive})
}

// GetCategory returns one category.
func (c *Client) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return sendJSON[model.Category](ctx, c, request{method: http.MethodGet, path: itemPath(categoriesPath, id)})
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	return sendJSON[model.Category](ctx, c, request{method: http.MethodPost, path: categoriesPath, body: req, auth: true})
}

// UpdateCategory replaces a category.
func (c *Client) UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error) {
	return sendJSON[model.Category](ctx, c, request{
		method: http.MethodPut,
		path:   itemPath(categoriesPath, id),
		body:   withID(id, req),
		auth:   true,
	})
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.invoke(ctx, request{method: http.MethodDelete, path: itemPath(categoriesPath, id), auth: true})
	return err
}

// ListBrands returns brands; unpublished ones only when requested.
func (c *Client) ListBrands(ctx context.Context, includeUnpublished bool) ([]model.Brand, error) {
	q := url.Values{}
	q.Set("includeUnpublished", strconv.FormatBool(includeUnpublished))
	return getJSON[[]model.Brand](ctx, c, request{path: brandsPath, query: q, auth: includeUnpublished})
}

// GetBrand returns one brand.
func (c *Client) GetBrand(ctx context.Context, id string) (*model.Brand, error) {
	return sendJSON[model.Brand](ctx, c, request{method: http.MethodGet, path: itemPath(brandsPath, id)})
}

// CreateBrand creates a brand.
func (c *Client) CreateBrand(ctx context.Context, req model.BrandRequest) (*model.Brand, error) {
	return sendJSON[model.Brand](ctx, c, request{method: http.MethodPost, path: brandsPath, body: req, auth: true})
}

// UpdateBrand replaces a brand.
func (c *Client) UpdateBrand(ctx context.Context, id string, req model.BrandRequest) (*model.Brand, error) {
	return sendJSON[model.Brand](ctx, c, request{
		method: http.MethodPut,
		path:   itemPath(brandsPath, id),
		body:   withID(id, req),
		auth:   true,
	})
}

// DeleteBrand deletes a brand.
func (c *Client) DeleteBrand(ctx context.Context, id string) error {
	_, err := c.invoke(ctx, request{method: http.MethodDelete, path: itemPath(brandsPath, id), auth: true})
	return err
}

// ListManufacturers returns all manufacturers including unpublished ones.
func (c *Client) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	q := url.Values{}
	q.Set("includeUnpublished", "true")
	return getJSON[[]model.Manufacturer](ctx, c, request{path: manufacturersPath, query: q, auth: true})
}

// GetManufacturer returns one manufacturer.
func (c *Client) GetManufacturer(ctx context.Context, id string) (*model.Manufacturer, error) {
	return sendJSON[model.Manufacturer](ctx, c, request{method: http.MethodGet, path: itemPath(manufacturersPath, id)})
}

// CreateManufacturer creates a manufacturer.
func (c *Client) CreateManufacturer(ctx context.Context, req model.BrandRequest) (*model.Manufacturer, error) {
	return sendJSON[model.Manufacturer](ctx, c, request{method: http.MethodPost, path: manufacturersPath, body: req, auth: true})
}

// UpdateManufacturer replaces a manufacturer.
func (c *Client) UpdateManufacturer(ctx context.Context, id string, req model.BrandRequest) (*model.Manufacturer, error) {
	return sendJSON[model.Manufacturer](ctx, c, request{
		method: http.MethodPut,
		path:   itemPath(manufacturersPath, id),
		body:   withID(id, req),
		auth:   true,
	})
}

// DeleteManufacturer deletes a manufacturer.
func (c *Client) DeleteManufacturer(ctx context.Context, id string) error {
	_, err := c.invoke(ctx, request{method: http.MethodDelete, path: itemPath(manufacturersPath, id), auth: true})
	return err
}

// ListProducts returns one page of products.
func (c *Client) ListProducts(ctx context.Context, opts model.ProductListOptions) (model.Paged[model.Product], error) {
	opts = opts.Normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("pageSize", strconv.Itoa(opts.PageSize))
	q.Set("sortDirection", string(opts.SortDirection))
	if opts.CategoryID != "" {
		q.Set("categoryId", opts.CategoryID)
	}
	if opts.BrandID != "" {
		q.Set("brandId", opts.BrandID)
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.IncludeUnpublished {
		q.Set("includeUnpublished", "true")
	}
	page, err := getJSON[model.Paged[model.Product]](ctx, c, request{path: productsPath, query: q, auth: opts.IncludeUnpublished})
	if err != nil {
		return page, err
	}
	if page.Page == 0 {
		page.Page = opts.Page
	}
	if page.PageSize == 0 {
		page.PageSize = opts.PageSize
	}
	return page, nil
}

// GetProduct returns one product.
func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return sendJSON[model.Product](ctx, c, request{method: http.MethodGet, path: itemPath(productsPath, id)})
}

// CreateProduct submits the product wizard payload.
func (c *Client) CreateProduct(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	return sendJSON[model.Product](ctx, c, request{method: http.MethodPost, path: productsPath, body: req, auth: true})
}

// UpdateProduct replaces a product.
func (c *Client) UpdateProduct(ctx context.Context, id string, req model.ProductRequest) (*model.Product, error) {
	return sendJSON[model.Product](ctx, c, request{
		method: http.MethodPut,
		path:   itemPath(productsPath, id),
		body:   withID(id, req),
		auth:   true,
	})
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.invoke(ctx, request{method: http.MethodDelete, path: itemPath(productsPath, id), auth: true})
	return err
}

// ListBanners returns homepage banners.
func (c *Client) ListBanners(ctx context.Context, includeInactive bool) ([]model.Banner, error) {
	q := url.Values{}
	q.Set("includeInactive", strconv.FormatBool(includeInactive))
	return getJSON[[]model.Banner](ctx, c, request{path: bannersPath, query: q, auth: includeInactive})
}
