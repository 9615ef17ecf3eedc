package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	lowStockThreshold = 10
	defaultPageSize   = 20
	maxPageSize       = 100
)

// Product publication status values understood by the backend.
const (
	ProductStatusDraft     = 1
	ProductStatusPublished = 2
)

// StockStatus is the inventory label shown next to a product.
type StockStatus string

const (
	InStock    StockStatus = "In Stock"
	LowStock   StockStatus = "Low Stock"
	OutOfStock StockStatus = "Out of Stock"
)

// StockStatusFor classifies a stock quantity.
func StockStatusFor(qty int) StockStatus {
	switch {
	case qty > lowStockThreshold:
		return InStock
	case qty > 0:
		return LowStock
	default:
		return OutOfStock
	}
}

// Product is a catalog item as returned by list and detail endpoints.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	SKU              string    `json:"sku"`
	CategoryID       string    `json:"categoryId,omitempty"`
	CategoryName     string    `json:"categoryName,omitempty"`
	BrandID          string    `json:"brandId,omitempty"`
	ManufacturerID   string    `json:"manufacturerId,omitempty"`
	Price            float64   `json:"price"`
	OldPrice         *float64  `json:"oldPrice,omitempty"`
	StockQuantity    int       `json:"stockQuantity"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Description      string    `json:"description,omitempty"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	IsPublished      bool      `json:"isPublished"`
	ShowOnHomepage   bool      `json:"showOnHomepage"`
	CreatedAt        Timestamp `json:"createdAt"`
	UpdatedAt        Timestamp `json:"updatedAt"`
	UpdatedBy        string    `json:"updatedBy,omitempty"`
}

// StockStatus returns the inventory label for p.
func (p Product) StockStatus() StockStatus {
	return StockStatusFor(p.StockQuantity)
}

// OnSale reports whether the product has a higher previous price.
func (p Product) OnSale() bool {
	return p.OldPrice != nil && *p.OldPrice > p.Price
}

// ProductListOptions maps to the backend paged product query.
type ProductListOptions struct {
	Page          int
	PageSize      int
	SortDirection SortDirection
	CategoryID    string
	BrandID       string
	Search        string
	// IncludeUnpublished requests drafts too. Back-office listings only.
	IncludeUnpublished bool
}

// Normalize clamps paging and defaults the sort direction.
func (o ProductListOptions) Normalize() ProductListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.PageSize > maxPageSize {
		o.PageSize = maxPageSize
	}
	if !o.SortDirection.Valid() {
		o.SortDirection = SortDesc
	}
	o.Search = strings.TrimSpace(o.Search)
	return o
}

// ProductRequest is the product-creation wizard payload.
type ProductRequest struct {
	// Basic info
	Name                   string  `json:"name"`
	Description            string  `json:"description"`
	ShortDescription       string  `json:"shortDescription"`
	SKU                    string  `json:"sku"`
	GTIN                   *string `json:"gtin"`
	ManufacturerPartNumber *string `json:"manufacturerPartNumber"`
	DisplayOrder           int     `json:"displayOrder"`
	AdminComment           *string `json:"adminComment"`

	// Pricing
	Price          float64  `json:"price"`
	OldPrice       *float64 `json:"oldPrice"`
	CompareAtPrice *float64 `json:"compareAtPrice"`
	CostPrice      *float64 `json:"costPrice"`

	// Shipping
	Weight           float64  `json:"weight"`
	Length           *float64 `json:"length"`
	Width            *float64 `json:"width"`
	Height           *float64 `json:"height"`
	RequiresShipping bool     `json:"requiresShipping"`

	// Inventory
	StockQuantity int  `json:"stockQuantity"`
	TrackQuantity bool `json:"trackQuantity"`

	CategoryID *string `json:"categoryId"`

	// Availability window, formatted YYYY-MM-DD.
	AvailableStartDate *string `json:"availableStartDate"`
	AvailableEndDate   *string `json:"availableEndDate"`

	// Status
	IsPublished         bool `json:"isPublished"`
	Status              int  `json:"status"`
	VisibleIndividually bool `json:"visibleIndividually"`
	ShowOnHomepage      bool `json:"showOnHomepage"`

	// SEO
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	MetaKeywords    *string `json:"metaKeywords"`

	BrandID             *string `json:"brandId"`
	ManufacturerID      *string `json:"manufacturerId"`
	Tags                *string `json:"tags"`
	RelatedProductIDs   *string `json:"relatedProductIds"`
	CrossSellProductIDs *string `json:"crossSellProductIds"`
}

// Normalize applies the wizard's defaulting rules. Draft forces IsPublished off.
func (r *ProductRequest) Normalize(draft bool) {
	r.Name = strings.TrimSpace(r.Name)
	r.SKU = strings.TrimSpace(r.SKU)
	r.ShortDescription = strings.TrimSpace(r.ShortDescription)
	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		r.Description = r.ShortDescription
	}
	if r.Description == "" {
		r.Description = r.Name
	}
	if r.DisplayOrder <= 0 {
		r.DisplayOrder = 1
	}
	if r.OldPrice != nil && r.CompareAtPrice == nil {
		v := *r.OldPrice
		r.CompareAtPrice = &v
	}
	r.CategoryID = guidOrNil(r.CategoryID)
	r.BrandID = guidOrNil(r.BrandID)
	r.ManufacturerID = guidOrNil(r.ManufacturerID)
	for _, p := range []**string{
		&r.GTIN, &r.ManufacturerPartNumber, &r.AdminComment,
		&r.AvailableStartDate, &r.AvailableEndDate,
		&r.MetaTitle, &r.MetaDescription, &r.MetaKeywords, &r.Tags,
		&r.RelatedProductIDs, &r.CrossSellProductIDs,
	} {
		*p = blankToNil(*p)
	}
	if draft {
		r.IsPublished = false
		r.Status = ProductStatusDraft
	} else {
		r.Status = ProductStatusPublished
	}
}

// Validate checks the wizard payload. Call Normalize first.
func (r *ProductRequest) Validate() error {
	if r.Name == "" || r.SKU == "" {
		return errors.New("please fill in required fields: Product Name and SKU")
	}
	if utf8.RuneCountInString(r.Name) > maxNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if r.Price < 0 {
		return errors.New("price must be >= 0")
	}
	for label, v := range map[string]*float64{
		"old price": r.OldPrice, "compare at price": r.CompareAtPrice, "cost price": r.CostPrice,
		"length": r.Length, "width": r.Width, "height": r.Height,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must be >= 0", label)
		}
	}
	if r.Weight < 0 {
		return errors.New("weight must be >= 0")
	}
	if r.StockQuantity < 0 {
		return errors.New("stock quantity must be >= 0")
	}
	if r.AvailableStartDate != nil && r.AvailableEndDate != nil && *r.AvailableStartDate > *r.AvailableEndDate {
		return errors.New("available start date must not be after end date")
	}
	return nil
}

// JoinIDs comma-joins non-empty IDs, returning nil when none remain.
func JoinIDs(ids []string) *string {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			kept = append(kept, id)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	s := strings.Join(kept, ",")
	return &s
}

// IsGUID reports whether s parses as a UUID in canonical 8-4-4-4-12 form.
func IsGUID(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func guidOrNil(s *string) *string {
	if s == nil || !IsGUID(*s) {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
