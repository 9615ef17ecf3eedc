package model

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLen = 255
	maxMetaLen = 500
)

// Category is a node of the catalog hierarchy. SubCategories is populated
// only when requested with includeSubCategories.
type Category struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	Slug             string     `json:"slug"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	IsActive         bool       `json:"isActive"`
	SortOrder        int        `json:"sortOrder"`
	ProductCount     int        `json:"productCount"`
	MetaTitle        string     `json:"metaTitle,omitempty"`
	MetaDescription  string     `json:"metaDescription,omitempty"`
	MetaKeywords     string     `json:"metaKeywords,omitempty"`
	ParentCategoryID *string    `json:"parentCategoryId,omitempty"`
	SubCategories    []Category `json:"subCategories,omitempty"`
	CreatedAt        Timestamp  `json:"createdAt"`
	UpdatedAt        Timestamp  `json:"updatedAt"`
	CreatedBy        string     `json:"createdBy,omitempty"`
	UpdatedBy        string     `json:"updatedBy,omitempty"`
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.ParentCategoryID == nil || *c.ParentCategoryID == ""
}

// CategoryListOptions maps to the backend category list query.
type CategoryListOptions struct {
	IncludeInactive      bool
	IncludeSubCategories bool
}

// SortCategories orders categories by SortOrder then Name, recursively.
func SortCategories(cats []Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].SortOrder != cats[j].SortOrder {
			return cats[i].SortOrder < cats[j].SortOrder
		}
		return cats[i].Name < cats[j].Name
	})
	for i := range cats {
		SortCategories(cats[i].SubCategories)
	}
}

// ActiveCategories returns a copy of cats without inactive nodes at any depth.
func ActiveCategories(cats []Category) []Category {
	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		if !c.IsActive {
			continue
		}
		c.SubCategories = ActiveCategories(c.SubCategories)
		out = append(out, c)
	}
	return out
}

// CategoryRequest is the create/update payload for a category.
type CategoryRequest struct {
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	Slug             string  `json:"slug,omitempty"`
	ImageURL         string  `json:"imageUrl,omitempty"`
	IsActive         bool    `json:"isActive"`
	SortOrder        int     `json:"sortOrder"`
	MetaTitle        string  `json:"metaTitle,omitempty"`
	MetaDescription  string  `json:"metaDescription,omitempty"`
	MetaKeywords     string  `json:"metaKeywords,omitempty"`
	ParentCategoryID *string `json:"parentCategoryId"`
}

// Validate validates and normalises CategoryRequest.
func (r *CategoryRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(r.Name) > maxNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	r.Slug = strings.TrimSpace(r.Slug)
	if r.Slug == "" {
		r.Slug = Slugify(r.Name)
	}
	if r.SortOrder < 0 {
		return errors.New("sort order must be >= 0")
	}
	if utf8.RuneCountInString(r.MetaDescription) > maxMetaLen {
		return errors.New("meta description cannot exceed 500 characters")
	}
	if r.ParentCategoryID != nil && strings.TrimSpace(*r.ParentCategoryID) == "" {
		r.ParentCategoryID = nil
	}
	return nil
}

// Slugify lower-cases s and replaces runs of non-alphanumerics with a single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
