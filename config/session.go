package config

import (
	"strings"
	"time"
)

// DefaultSessionCookieName is the cookie carrying the backend-issued token.
const DefaultSessionCookieName = "authToken"

// SessionConfig controls the session cookie written at login.
type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"authToken"`
	TTL        time.Duration `env:"SESSION_TTL"         envDefault:"24h"`

	// ProfileTTL bounds the Redis mirror of the signed-in user's profile.
	// It never outlives the cookie.
	ProfileTTL time.Duration `env:"SESSION_PROFILE_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to session configuration values.
func (c *SessionConfig) Sanitize() {
	if c.CookieName = strings.TrimSpace(c.CookieName); c.CookieName == "" {
		c.CookieName = DefaultSessionCookieName
	}
	if c.TTL <= 0 {
		c.TTL = 24 * time.Hour
	}
	if c.ProfileTTL <= 0 || c.ProfileTTL > c.TTL {
		c.ProfileTTL = c.TTL
	}
}

// MaxAge returns the cookie Max-Age in seconds.
func (c *SessionConfig) MaxAge() int {
	return int(c.TTL / time.Second)
}
