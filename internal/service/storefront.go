package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
)

const (
	homeProductCount = 10
	menuDepth        = 3
)

// StorefrontServiceOptions groups dependencies for StorefrontService.
type StorefrontServiceOptions struct {
	Catalog *CatalogService // Required
	Logger  *slog.Logger
}

// StorefrontService assembles public pages from cached catalog reads.
// Sections that fail to load are left empty so the page still renders.
type StorefrontService struct {
	catalog *CatalogService
	logger  *slog.Logger
}

// NewStorefrontService constructs a new StorefrontService.
func NewStorefrontService(opts StorefrontServiceOptions) *StorefrontService {
	if opts.Catalog == nil {
		panic("CatalogService is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &StorefrontService{catalog: opts.Catalog, logger: logger.With("component", "storefront")}
}

// MenuItem is a mega-menu node.
type MenuItem struct {
	Name     string
	URL      string
	Children []MenuItem
}

// Menu is the storefront navigation.
type Menu struct {
	Categories []MenuItem
	Brands     []MenuItem
}

// HomePage is the storefront landing page model.
type HomePage struct {
	Banners    []model.Banner
	Products   []model.Product
	Categories []model.Category
	Brands     []model.Brand
	Menu       Menu
}

// Home loads banners, featured products, categories and brands in parallel.
func (s *StorefrontService) Home(ctx context.Context) (*HomePage, error) {
	var (
		page       HomePage
		categories []model.Category
		brands     []model.Brand
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		banners, err := s.catalog.ListBanners(gctx, false)
		s.warn(gctx, "banners", err)
		page.Banners = model.ActiveBanners(banners)
		return nil
	})
	g.Go(func() error {
		p, err := s.catalog.ListProducts(gctx, model.ProductListOptions{Page: 1, PageSize: homeProductCount})
		s.warn(gctx, "products", err)
		page.Products = publishedOnly(p.Items)
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.loadCategoryTree(gctx)
		s.warn(gctx, "categories", err)
		return nil
	})
	g.Go(func() error {
		var err error
		brands, err = s.catalog.ListBrands(gctx, false)
		s.warn(gctx, "brands", err)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.Categories = categories
	page.Brands = model.HomepageBrands(brands)
	page.Menu = buildMenu(categories, page.Brands)
	return &page, nil
}

func (s *StorefrontService) warn(ctx context.Context, section string, err error) {
	if err != nil {
		s.logger.WarnContext(ctx, "storefront section unavailable", "section", section, "error", err)
	}
}

// Menu builds the mega-menu on its own, for pages other than home.
func (s *StorefrontService) Menu(ctx context.Context) Menu {
	var (
		categories []model.Category
		brands     []model.Brand
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.loadCategoryTree(gctx)
		s.warn(gctx, "categories", err)
		return nil
	})
	g.Go(func() error {
		var err error
		brands, err = s.catalog.ListBrands(gctx, false)
		s.warn(gctx, "brands", err)
		return nil
	})
	_ = g.Wait()
	return buildMenu(categories, model.HomepageBrands(brands))
}

func (s *StorefrontService) loadCategoryTree(ctx context.Context) ([]model.Category, error) {
	cats, err := s.catalog.ListCategories(ctx, model.CategoryListOptions{IncludeSubCategories: true})
	if err != nil {
		return nil, err
	}
	tree := model.ActiveCategories(categoryTree(cats))
	model.SortCategories(tree)
	return tree, nil
}

// categoryTree returns root categories with children attached. Lists that
// already nest children are trimmed to their roots; flat lists are assembled
// from ParentCategoryID.
func categoryTree(cats []model.Category) []model.Category {
	nested := false
	for _, c := range cats {
		if len(c.SubCategories) > 0 {
			nested = true
			break
		}
	}
	if nested {
		roots := make([]model.Category, 0, len(cats))
		for _, c := range cats {
			if c.IsRoot() {
				roots = append(roots, c)
			}
		}
		return roots
	}

	children := map[string][]model.Category{}
	for _, c := range cats {
		if !c.IsRoot() {
			children[*c.ParentCategoryID] = append(children[*c.ParentCategoryID], c)
		}
	}
	var attach func(c model.Category, depth int) model.Category
	attach = func(c model.Category, depth int) model.Category {
		if depth >= menuDepth {
			return c
		}
		for _, child := range children[c.ID] {
			c.SubCategories = append(c.SubCategories, attach(child, depth+1))
		}
		return c
	}
	roots := make([]model.Category, 0, len(cats))
	for _, c := range cats {
		if c.IsRoot() {
			roots = append(roots, attach(c, 1))
		}
	}
	return roots
}

func buildMenu(categories []model.Category, brands []model.Brand) Menu {
	var m Menu
	m.Categories = menuItems(categories, "/category", 1)
	for _, b := range brands {
		m.Brands = append(m.Brands, MenuItem{Name: b.Name, URL: "/brand/" + url.PathEscape(b.Slug)})
	}
	return m
}

func menuItems(cats []model.Category, base string, depth int) []MenuItem {
	if depth > menuDepth || len(cats) == 0 {
		return nil
	}
	items := make([]MenuItem, 0, len(cats))
	for _, c := range cats {
		href := base + "/" + url.PathEscape(c.Slug)
		items = append(items, MenuItem{
			Name:     c.Name,
			URL:      href,
			Children: menuItems(c.SubCategories, href, depth+1),
		})
	}
	return items
}

func publishedOnly(products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.IsPublished {
			out = append(out, p)
		}
	}
	return out
}

// Crumb is one breadcrumb link.
type Crumb struct {
	Name string
	URL  string
}

// CategoryPage is a category landing page.
type CategoryPage struct {
	Category    model.Category
	Breadcrumbs []Crumb
	Products    model.Paged[model.Product]
}

// Category resolves a slug path such as ["men", "shoes"] and loads its products.
func (s *StorefrontService) Category(ctx context.Context, slugs []string, page int) (*CategoryPage, error) {
	if len(slugs) == 0 || len(slugs) > menuDepth {
		return nil, apperrors.NotFound("Category not found")
	}
	tree, err := s.loadCategoryTree(ctx)
	if err != nil {
		return nil, err
	}

	var (
		found  *model.Category
		crumbs []Crumb
		level  = tree
		href   = "/category"
	)
	for _, slug := range slugs {
		found = nil
		for i := range level {
			if strings.EqualFold(level[i].Slug, slug) {
				found = &level[i]
				break
			}
		}
		if found == nil {
			return nil, apperrors.NotFound("Category not found")
		}
		href += "/" + url.PathEscape(found.Slug)
		crumbs = append(crumbs, Crumb{Name: found.Name, URL: href})
		level = found.SubCategories
	}

	products, err := s.catalog.ListProducts(ctx, model.ProductListOptions{Page: page, CategoryID: found.ID})
	if err != nil {
		return nil, err
	}
	products.Items = publishedOnly(products.Items)
	return &CategoryPage{Category: *found, Breadcrumbs: crumbs, Products: products}, nil
}

// BrandPage is a brand landing page.
type BrandPage struct {
	Brand    model.Brand
	Products model.Paged[model.Product]
}

// Brand resolves a published brand by slug and loads its products.
func (s *StorefrontService) Brand(ctx context.Context, slug string, page int) (*BrandPage, error) {
	brands, err := s.catalog.ListBrands(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, b := range brands {
		if !b.IsPublished || !strings.EqualFold(b.Slug, slug) {
			continue
		}
		products, err := s.catalog.ListProducts(ctx, model.ProductListOptions{Page: page, BrandID: b.ID})
		if err != nil {
			return nil, err
		}
		products.Items = publishedOnly(products.Items)
		return &BrandPage{Brand: b, Products: products}, nil
	}
	return nil, apperrors.NotFound("Brand not found")
}

// Products returns a page of published products for the listing page.
func (s *StorefrontService) Products(ctx context.Context, opts model.ProductListOptions) (model.Paged[model.Product], error) {
	p, err := s.catalog.ListProducts(ctx, opts)
	if err != nil {
		return p, err
	}
	p.Items = publishedOnly(p.Items)
	return p, nil
}

// Product returns a published product by id.
func (s *StorefrontService) Product(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsPublished {
		return nil, apperrors.NotFound("Product not found")
	}
	return p, nil
}
