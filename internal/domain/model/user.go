package model

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultDisplayName is shown when no name can be derived for the signed-in user.
const DefaultDisplayName = "Admin User"

// User is the profile the backend returns alongside a session token.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName joins first and last name, or returns "" when both are empty.
func (u User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// Initial returns the upper-cased first rune of name, or "A" when name is empty.
func Initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "A"
	}
	return string(unicode.ToUpper(r))
}

// LoginRequest carries credentials to the backend auth endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the credentials are present and the email is well-formed.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email is invalid")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// RegisterRequest creates a new backend account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate checks the registration payload.
func (r *RegisterRequest) Validate() error {
	login := LoginRequest{Email: r.Email, Password: r.Password}
	if err := login.Validate(); err != nil {
		return err
	}
	r.Email = login.Email
	if utf8.RuneCountInString(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	return nil
}

// Session is the outcome of a successful login.
type Session struct {
	Token string
	User  User
}
