package httpx

import "strings"

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	// Storefront pages.
	PageHome     = "home"
	PageProducts = "products"
	PageProduct  = "product"
	PageCategory = "category"
	PageBrand    = "brand"
	PageCart     = "cart"
	PageLogin    = "login"

	// Admin pages share the "admin-" prefix, which selects the back-office layout.
	PageDashboard        = "admin-dashboard"
	PageAdminProducts    = "admin-products"
	PageProductForm      = "admin-product-form"
	PageCategories       = "admin-categories"
	PageCategoryForm     = "admin-category-form"
	PageBrands           = "admin-brands"
	PageBrandForm        = "admin-brand-form"
	PageManufacturers    = "admin-manufacturers"
	PageManufacturerForm = "admin-manufacturer-form"
	PageOrders           = "admin-orders"
	PageOrder            = "admin-order"
	PageCustomers        = "admin-customers"
	PageCustomer         = "admin-customer"
	PageCustomerForm     = "admin-customer-form"
)

const adminPagePrefix = "admin-"

// Cookie names.
const (
	// CartCookieName carries the anonymous cart id.
	CartCookieName = "cartId"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:             "home-content",
	PageProducts:         "products-content",
	PageProduct:          "product-content",
	PageCategory:         "category-content",
	PageBrand:            "brand-content",
	PageCart:             "cart-content",
	PageLogin:            "login-content",
	PageDashboard:        "dashboard-content",
	PageAdminProducts:    "admin-products-content",
	PageProductForm:      "product-form-content",
	PageCategories:       "categories-content",
	PageCategoryForm:     "category-form-content",
	PageBrands:           "brands-content",
	PageBrandForm:        "brand-form-content",
	PageManufacturers:    "manufacturers-content",
	PageManufacturerForm: "manufacturer-form-content",
	PageOrders:           "orders-content",
	PageOrder:            "order-content",
	PageCustomers:        "customers-content",
	PageCustomer:         "customer-content",
	PageCustomerForm:     "customer-form-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Unknown admin pages fall back to the dashboard and unknown storefront pages to home.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	if IsAdminPage(currentPage) {
		return "dashboard-content"
	}
	return "home-content"
}

// IsAdminPage reports whether page renders inside the back-office layout.
func IsAdminPage(page string) bool {
	return strings.HasPrefix(page, adminPagePrefix)
}
