// Package viewmodel holds the structs templates render from.
package viewmodel

// User is the signed-in admin shown in the header.
type User struct {
	Name    string
	Email   string
	Initial string
}

// NavItem is one admin sidebar link.
type NavItem struct {
	Name   string
	Href   string
	Active bool
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title       string
	PageTitle   string
	CurrentPage string
	CSRFToken   string
	// IsAdmin selects the back-office chrome instead of the storefront one.
	IsAdmin         bool
	IsAuthenticated bool
	User            *User
	Nav             []NavItem
	CartCount       int
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
