// Package ports defines the interfaces between services and the adapters
// that talk to the backend API and Redis.
// Implementations live in internal/adapters; orchestration in internal/service.
package ports

import (
	"context"
	"io"

	"github.com/target/ecompanel-ui/internal/domain/model"
)

// AuthAPI exchanges credentials for a session token.
type AuthAPI interface {
	Login(ctx context.Context, req model.LoginRequest) (model.Session, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
}

// CategoryAPI manages categories.
type CategoryAPI interface {
	ListCategories(ctx context.Context, opts model.CategoryListOptions) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// BrandAPI manages brands.
type BrandAPI interface {
	ListBrands(ctx context.Context, includeUnpublished bool) ([]model.Brand, error)
	GetBrand(ctx context.Context, id string) (*model.Brand, error)
	CreateBrand(ctx context.Context, req model.BrandRequest) (*model.Brand, error)
	UpdateBrand(ctx context.Context, id string, req model.BrandRequest) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}

// ManufacturerAPI manages manufacturers.
type ManufacturerAPI interface {
	ListManufacturers(ctx context.Context) ([]model.Manufacturer, error)
	GetManufacturer(ctx context.Context, id string) (*model.Manufacturer, error)
	CreateManufacturer(ctx context.Context, req model.BrandRequest) (*model.Manufacturer, error)
	UpdateManufacturer(ctx context.Context, id string, req model.BrandRequest) (*model.Manufacturer, error)
	DeleteManufacturer(ctx context.Context, id string) error
}

// ProductAPI manages products.
type ProductAPI interface {
	ListProducts(ctx context.Context, opts model.ProductListOptions) (model.Paged[model.Product], error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req model.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req model.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// OrderAPI reads orders and moves them through fulfilment.
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// CustomerAPI manages customers.
type CustomerAPI interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, req model.CustomerRequest) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req model.CustomerRequest) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// BannerAPI lists homepage banners.
type BannerAPI interface {
	ListBanners(ctx context.Context, includeInactive bool) ([]model.Banner, error)
}

// UploadKind selects the backend upload endpoint.
type UploadKind string

const (
	UploadCategoryImage    UploadKind = "category-image"
	UploadBrandLogo        UploadKind = "brand-logo"
	UploadManufacturerLogo UploadKind = "manufacturer-logo"
)

// UploadAPI stores images and returns their public URL.
type UploadAPI interface {
	Upload(ctx context.Context, kind UploadKind, filename string, body io.Reader) (string, error)
}

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}
