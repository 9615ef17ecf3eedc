package model

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// Brand is a product brand shown in listings and on the storefront.
type Brand struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Slug            string    `json:"slug"`
	LogoURL         string    `json:"logoUrl,omitempty"`
	IsPublished     bool      `json:"isPublished"`
	ShowOnHomepage  bool      `json:"showOnHomepage"`
	DisplayOrder    int       `json:"displayOrder"`
	ProductCount    int       `json:"productCount"`
	MetaTitle       string    `json:"metaTitle,omitempty"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	MetaKeywords    string    `json:"metaKeywords,omitempty"`
	CreatedAt       Timestamp `json:"createdAt"`
	UpdatedAt       Timestamp `json:"updatedAt"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	UpdatedBy       string    `json:"updatedBy,omitempty"`
}

// Manufacturer has the same wire shape as Brand.
type Manufacturer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Slug            string    `json:"slug"`
	LogoURL         string    `json:"logoUrl,omitempty"`
	IsPublished     bool      `json:"isPublished"`
	ShowOnHomepage  bool      `json:"showOnHomepage"`
	DisplayOrder    int       `json:"displayOrder"`
	ProductCount    int       `json:"productCount"`
	MetaTitle       string    `json:"metaTitle,omitempty"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	MetaKeywords    string    `json:"metaKeywords,omitempty"`
	CreatedAt       Timestamp `json:"createdAt"`
	UpdatedAt       Timestamp `json:"updatedAt"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	UpdatedBy       string    `json:"updatedBy,omitempty"`
}

// HomepageBrands returns published brands flagged for the homepage ordered by DisplayOrder.
func HomepageBrands(brands []Brand) []Brand {
	out := make([]Brand, 0, len(brands))
	for _, b := range brands {
		if b.ShowOnHomepage && b.IsPublished {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

// BrandRequest is the create/update payload for brands and manufacturers.
type BrandRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Slug            string `json:"slug,omitempty"`
	LogoURL         string `json:"logoUrl,omitempty"`
	IsPublished     bool   `json:"isPublished"`
	ShowOnHomepage  bool   `json:"showOnHomepage"`
	DisplayOrder    int    `json:"displayOrder"`
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	MetaKeywords    string `json:"metaKeywords,omitempty"`
}

// Validate validates and normalises BrandRequest.
func (r *BrandRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(r.Name) > maxNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if r.Slug = strings.TrimSpace(r.Slug); r.Slug == "" {
		r.Slug = Slugify(r.Name)
	}
	if r.DisplayOrder < 0 {
		return errors.New("display order must be >= 0")
	}
	if utf8.RuneCountInString(r.MetaDescription) > maxMetaLen {
		return errors.New("meta description cannot exceed 500 characters")
	}
	return nil
}
