package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/observability/statsd"
	"github.com/target/ecompanel-ui/internal/ports"
)

// CatalogCachePrefix prefixes every cached catalog read.
const CatalogCachePrefix = "catalog:"

const defaultCatalogTTL = time.Minute

// Cache key namespaces, one per cached backend resource.
const (
	resCategories = "categories"
	resBrands     = "brands"
	resProducts   = "products"
	resBanners    = "banners"
)

// CatalogAPIs bundles the backend ports the catalog reads and writes.
type CatalogAPIs struct {
	Categories    ports.CategoryAPI
	Brands        ports.BrandAPI
	Manufacturers ports.ManufacturerAPI
	Products      ports.ProductAPI
	Banners       ports.BannerAPI
	Uploads       ports.UploadAPI
}

// CatalogCacheConfig configures the read-through cache. A nil Repo disables caching.
type CatalogCacheConfig struct {
	Repo    ports.CacheRepository
	TTL     time.Duration
	Metrics statsd.Sink
}

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	APIs   CatalogAPIs
	Cache  CatalogCacheConfig
	Logger *slog.Logger
}

// CatalogService manages categories, brands, manufacturers, products and
// banners. Public storefront list reads go through a short-lived Redis cache
// with concurrent misses collapsed; writes invalidate the affected resource.
// Back-office reads always reach the backend so it can reject the session.
type CatalogService struct {
	apis    CatalogAPIs
	cache   ports.CacheRepository
	ttl     time.Duration
	metrics statsd.Sink
	logger  *slog.Logger
	group   singleflight.Group
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	a := opts.APIs
	if a.Categories == nil || a.Brands == nil || a.Manufacturers == nil || a.Products == nil {
		panic("catalog APIs are required")
	}
	ttl := opts.Cache.TTL
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		apis:    a,
		cache:   opts.Cache.Repo,
		ttl:     ttl,
		metrics: opts.Cache.Metrics,
		logger:  logger.With("component", "catalog"),
	}
}

// cached serves key from the cache, loading and storing it on a miss.
// Cache failures are logged and never fail the read. Only public reads may
// use it: the key carries no session, so a cached admin view would be served
// to any token the guard lets through.
func cached[T any](ctx context.Context, s *CatalogService, key string, load func(context.Context) (T, error)) (T, error) {
	if s.cache == nil {
		return load(ctx)
	}

	if b, err := s.cache.Get(ctx, key); err != nil {
		s.count("error")
		s.logger.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
	} else if b != nil {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			s.count("hit")
			return v, nil
		}
		s.logger.WarnContext(ctx, "catalog cache entry corrupt", "key", key)
	}
	s.count("miss")

	res, err, _ := s.group.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return v, err
		}
		if b, mErr := json.Marshal(v); mErr == nil {
			if sErr := s.cache.Set(ctx, key, b, s.ttl); sErr != nil {
				s.logger.WarnContext(ctx, "catalog cache write failed", "key", key, "error", sErr)
			}
		}
		return v, nil
	})
	v, _ := res.(T)
	return v, err
}

func (s *CatalogService) count(result string) {
	if s.metrics != nil {
		s.metrics.Count("catalog.cache", 1, map[string]string{"result": result})
	}
}

// invalidate drops cached reads for the given resources.
func (s *CatalogService) invalidate(ctx context.Context, resources ...string) {
	if s.cache == nil {
		return
	}
	for _, r := range resources {
		n, err := s.cache.DeletePrefix(ctx, CatalogCachePrefix+r+":")
		if err != nil {
			s.logger.WarnContext(ctx, "catalog cache invalidation failed", "resource", r, "error", err)
			continue
		}
		s.logger.DebugContext(ctx, "catalog cache invalidated", "resource", r, "keys", n)
	}
}

// FlushCache drops every cached catalog read and returns the number of keys removed.
func (s *CatalogService) FlushCache(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	n, err := s.cache.DeletePrefix(ctx, CatalogCachePrefix)
	if err != nil {
		return 0, fmt.Errorf("flush catalog cache: %w", err)
	}
	return n, nil
}

func cacheKey(resource string, q url.Values) string {
	return CatalogCachePrefix + resource + ":" + q.Encode()
}

func invalid(err error) error {
	return apperrors.ValidationField(fieldOf(err), capitalize(err.Error()))
}

// Categories

// ListCategories returns categories for opts. Listings with inactive
// categories bypass the cache.
func (s *CatalogService) ListCategories(ctx context.Context, opts model.CategoryListOptions) ([]model.Category, error) {
	if opts.IncludeInactive {
		return s.apis.Categories.ListCategories(ctx, opts)
	}
	key := cacheKey(resCategories, url.Values{
		"subs": {strconv.FormatBool(opts.IncludeSubCategories)},
	})
	return cached(ctx, s, key, func(ctx context.Context) ([]model.Category, error) {
		return s.apis.Categories.ListCategories(ctx, opts)
	})
}

// GetCategory returns one category.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return s.apis.Categories.GetCategory(ctx, id)
}

// CreateCategory validates req and creates a category.
func (s *CatalogService) CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	c, err := s.apis.Categories.CreateCategory(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, resCategories)
	return c, nil
}

// UpdateCategory validates req and updates category id.
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	if req.ParentCategoryID != nil && *req.ParentCategoryID == id {
		return nil, apperrors.ValidationField("parentCategoryId", "A category cannot be its own parent")
	}
	c, err := s.apis.Categories.UpdateCategory(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, resCategories, resProducts)
	return c, nil
}

// DeleteCategory deletes category id.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.apis.Categories.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, resCategories, resProducts)
	return nil
}

// Brands

// ListBrands returns brands, optionally including unpublished ones. Only the
// published listing is cached.
func (s *CatalogService) ListBrands(ctx context.Context, includeUnpublished bool) ([]model.Brand, error) {
	if includeUnpublished {
		return s.apis.Brands.ListBrands(ctx, true)
	}
	return cached(ctx, s, cacheKey(resBrands, nil), func(ctx context.Context) ([]model.Brand, error) {
		return s.apis.Brands.ListBrands(ctx, false)
	})
}

// GetBrand returns one brand.
func (s *CatalogService) GetBrand(ctx context.Context, id string) (*model.Brand, error) {
	return s.apis.Brands.GetBrand(ctx, id)
}

// CreateBrand validates req and creates a brand.
func (s *CatalogService) CreateBrand(ctx context.Context, req model.BrandRequest) (*model.Brand, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	b, err := s.apis.Brands.CreateBrand(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, resBrands)
	return b, nil
}

// UpdateBrand validates req and updates brand id.
func (s *CatalogService) UpdateBrand(ctx context.Context, id string, req model.BrandRequest) (*model.Brand, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	b, err := s.apis.Brands.UpdateBrand(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, resBrands)
	return b, nil
}

// DeleteBrand deletes brand id.
func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	if err := s.apis.Brands.DeleteBrand(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, resBrands)
	return nil
}

// Manufacturers

// ListManufacturers returns all manufacturers. The list is back-office only and never cached.
func (s *CatalogService) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	return s.apis.Manufacturers.ListManufacturers(ctx)
}

// GetManufacturer returns one manufacturer.
func (s *CatalogService) GetManufacturer(ctx context.Context, id string) (*model.Manufacturer, error) {
	return s.apis.Manufacturers.GetManufacturer(ctx, id)
}

// CreateManufacturer validates req and creates a manufacturer.
func (s *CatalogService) CreateManufacturer(ctx context.Context, req model.BrandRequest) (*model.Manufacturer, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	return s.apis.Manufacturers.CreateManufacturer(ctx, req)
}

// UpdateManufacturer validates req and updates manufacturer id.
func (s *CatalogService) UpdateManufacturer(ctx context.Context, id string, req model.BrandRequest) (*model.Manufacturer, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}
	return s.apis.Manufacturers.UpdateManufacturer(ctx, id, req)
}

// DeleteManufacturer deletes manufacturer id.
func (s *CatalogService) DeleteManufacturer(ctx context.Context, id string) error {
	return s.apis.Manufacturers.DeleteManufacturer(ctx, id)
}

// Products

// ListProducts returns a page of products. opts is normalised first.
// Back-office listings (IncludeUnpublished) bypass the cache.
func (s *CatalogService) ListProducts(ctx context.Context, opts model.ProductListOptions) (model.Paged[model.Product], error) {
	opts = opts.Normalize()
	if opts.IncludeUnpublished {
		return s.apis.Products.ListProducts(ctx, opts)
	}
	key := cacheKey(resProducts, url.Values{
		"page":     {strconv.Itoa(opts.Page)},
		"size":     {strconv.Itoa(opts.PageSize)},
		"sort":     {string(opts.SortDirection)},
		"category": {opts.CategoryID},
		"brand":    {opts.BrandID},
		"q":        {opts.Search},
	})
	return cached(ctx, s, key, func(ctx context.Context) (model.Paged[model.Product], error) {
		return s.apis.Products.ListProducts(ctx, opts)
	})
}

// GetProduct returns one product.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.apis.Products.GetProduct(ctx, id)
}

// CreateProduct normalises and validates the wizard payload, then creates the
// product as a draft or published.
func (s *CatalogService) CreateProduct(ctx context.Context, req model.ProductRequest, draft bool) (*model.Product, error) {
	req.Normalize(draft)
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(capitalize(err.Error()))
	}
	p, err := s.apis.Products.CreateProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "product created", "sku", req.SKU, "draft", draft)
	s.invalidate(ctx, resProducts)
	return p, nil
}

// UpdateProduct normalises and validates req, then updates product id. The
// published flag on req decides the status sent.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req model.ProductRequest) (*model.Product, error) {
	req.Normalize(!req.IsPublished)
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(capitalize(err.Error()))
	}
	p, err := s.apis.Products.UpdateProduct(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, resProducts)
	return p, nil
}

// DeleteProduct deletes product id.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.apis.Products.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, resProducts)
	return nil
}

// Banners

// ListBanners returns banners, optionally including inactive ones.
func (s *CatalogService) ListBanners(ctx context.Context, includeInactive bool) ([]model.Banner, error) {
	if s.apis.Banners == nil {
		return nil, nil
	}
	if includeInactive {
		return s.apis.Banners.ListBanners(ctx, true)
	}
	return cached(ctx, s, cacheKey(resBanners, nil), func(ctx context.Context) ([]model.Banner, error) {
		return s.apis.Banners.ListBanners(ctx, false)
	})
}

// Uploads

// UploadImage stores an image for kind and returns its URL.
func (s *CatalogService) UploadImage(ctx context.Context, kind ports.UploadKind, filename string, body io.Reader) (string, error) {
	if s.apis.Uploads == nil {
		return "", apperrors.Internal("uploads are not configured")
	}
	u, err := s.apis.Uploads.Upload(ctx, kind, filename, body)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "image uploaded", "kind", kind, "url", u)
	return u, nil
}
