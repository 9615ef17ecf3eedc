package model

import "sort"

// Banner is a homepage hero slide.
type Banner struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	ImageURL     string `json:"imageUrl"`
	LinkURL      string `json:"linkUrl,omitempty"`
	ButtonText   string `json:"buttonText,omitempty"`
	IsActive     bool   `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}

// ActiveBanners returns active banners ordered by DisplayOrder.
func ActiveBanners(banners []Banner) []Banner {
	out := make([]Banner, 0, len(banners))
	for _, b := range banners {
		if b.IsActive {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}
