package config

import (
	"strings"
	"time"
)

const (
	defaultBackendURL      = "http://localhost:5285"
	defaultTokenExpression = "accessToken || token || data.accessToken || data.token"
	defaultUserExpression  = "user || data.user"
	maxBackendRetries      = 5
)

// BackendConfig configures the client for the e-commerce REST API.
type BackendConfig struct {
	// BaseURL of the backend API. The variable name matches the one used by
	// the storefront build tooling so a single .env serves both.
	BaseURL string `env:"NEXT_PUBLIC_API_URL" envDefault:"http://localhost:5285"`

	// Timeout bounds each outbound request, including retries of idempotent reads.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	// RetryAttempts applies to GET requests only.
	RetryAttempts int           `env:"BACKEND_RETRY_ATTEMPTS" envDefault:"2"`
	RetryBackoff  time.Duration `env:"BACKEND_RETRY_BACKOFF"  envDefault:"200ms"`

	// TokenExpression is a JMESPath expression evaluated against the login
	// response data to locate the session token.
	TokenExpression string `env:"BACKEND_TOKEN_EXPRESSION" envDefault:"accessToken || token || data.accessToken || data.token"`

	// UserExpression locates the user profile in the login response data.
	UserExpression string `env:"BACKEND_USER_EXPRESSION" envDefault:"user || data.user"`
}

// Sanitize normalises backend client settings.
func (c *BackendConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBackendURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.RetryAttempts < 0 {
		c.RetryAttempts = 0
	}
	if c.RetryAttempts > maxBackendRetries {
		c.RetryAttempts = maxBackendRetries
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 200 * time.Millisecond
	}
	if c.TokenExpression = strings.TrimSpace(c.TokenExpression); c.TokenExpression == "" {
		c.TokenExpression = defaultTokenExpression
	}
	if c.UserExpression = strings.TrimSpace(c.UserExpression); c.UserExpression == "" {
		c.UserExpression = defaultUserExpression
	}
}
