package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Backend.BaseURL != "http://localhost:5285" {
		t.Errorf("backend base url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.TokenExpression != defaultTokenExpression {
		t.Errorf("token expression = %q", cfg.Backend.TokenExpression)
	}
	if cfg.Session.CookieName != "authToken" {
		t.Errorf("cookie name = %q", cfg.Session.CookieName)
	}
	if cfg.Session.MaxAge() != 86400 {
		t.Errorf("cookie max age = %d, want 86400", cfg.Session.MaxAge())
	}
	if cfg.Redis.URI != "localhost:6379" {
		t.Errorf("redis uri = %q", cfg.Redis.URI)
	}
	if !cfg.Cache.Enabled {
		t.Errorf("expected cache to be enabled by default")
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_API_URL", "https://api.shop.example.com/")
	t.Setenv("BACKEND_RETRY_ATTEMPTS", "3")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REDIS_URI", "redis://cache:6379/1")
	t.Setenv("REDIS_USE_CLUSTER", "true")
	t.Setenv("REDIS_CLUSTER_NODES", "a:7000,b:7001")
	t.Setenv("CACHE_CATALOG_TTL", "30s")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Backend.BaseURL != "https://api.shop.example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.RetryAttempts != 3 {
		t.Errorf("retry attempts = %d", cfg.Backend.RetryAttempts)
	}
	if cfg.Session.TTL != 2*time.Hour || cfg.Session.ProfileTTL != 2*time.Hour {
		t.Errorf("session ttl = %v profile ttl = %v", cfg.Session.TTL, cfg.Session.ProfileTTL)
	}
	if !cfg.Redis.UseCluster || len(cfg.Redis.ClusterNodes) != 2 {
		t.Errorf("unexpected redis cluster config: %#v", cfg.Redis)
	}
	if cfg.Cache.CatalogTTL != 30*time.Second {
		t.Errorf("catalog ttl = %v", cfg.Cache.CatalogTTL)
	}
}

func TestAppConfig_DetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "Development")
	cfg := AppConfig{}
	cfg.Sanitize()
	if !cfg.IsDev {
		t.Fatalf("expected NODE_ENV=development to enable dev mode")
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name         string
		in           HTTPConfig
		wantLevel    int
		wantDomain   string
		wantBaseURL  string
		wantShutdown time.Duration
	}{
		{
			name:         "clamps low level",
			in:           HTTPConfig{CompressionLevel: 0, BaseURL: "http://localhost:3000/"},
			wantLevel:    1,
			wantBaseURL:  "http://localhost:3000",
			wantShutdown: 10 * time.Second,
		},
		{
			name:         "clamps high level",
			in:           HTTPConfig{CompressionLevel: 12, ShutdownTimeout: 3 * time.Second},
			wantLevel:    9,
			wantShutdown: 3 * time.Second,
		},
		{
			name:         "normalises registrable domain",
			in:           HTTPConfig{CompressionLevel: 6, CookieDomain: " .Shop.Example.COM "},
			wantLevel:    6,
			wantDomain:   "shop.example.com",
			wantShutdown: 10 * time.Second,
		},
		{
			name:         "rejects public suffix",
			in:           HTTPConfig{CompressionLevel: 6, CookieDomain: "co.uk"},
			wantLevel:    6,
			wantDomain:   "",
			wantShutdown: 10 * time.Second,
		},
		{
			name:         "keeps single label host",
			in:           HTTPConfig{CompressionLevel: 6, CookieDomain: "localhost"},
			wantLevel:    6,
			wantDomain:   "localhost",
			wantShutdown: 10 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Sanitize()
			if cfg.CompressionLevel != tt.wantLevel {
				t.Errorf("level = %d, want %d", cfg.CompressionLevel, tt.wantLevel)
			}
			if cfg.CookieDomain != tt.wantDomain {
				t.Errorf("domain = %q, want %q", cfg.CookieDomain, tt.wantDomain)
			}
			if cfg.BaseURL != tt.wantBaseURL {
				t.Errorf("base url = %q, want %q", cfg.BaseURL, tt.wantBaseURL)
			}
			if cfg.ShutdownTimeout != tt.wantShutdown {
				t.Errorf("shutdown = %v, want %v", cfg.ShutdownTimeout, tt.wantShutdown)
			}
		})
	}
}

func TestBackendConfig_Sanitize(t *testing.T) {
	cfg := BackendConfig{BaseURL: "  ", RetryAttempts: 42, TokenExpression: " "}
	cfg.Sanitize()

	if cfg.BaseURL != defaultBackendURL {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.RetryAttempts != maxBackendRetries {
		t.Errorf("retry attempts = %d, want %d", cfg.RetryAttempts, maxBackendRetries)
	}
	if cfg.TokenExpression != defaultTokenExpression {
		t.Errorf("token expression = %q", cfg.TokenExpression)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestSessionConfig_Sanitize(t *testing.T) {
	cfg := SessionConfig{CookieName: "", TTL: 0, ProfileTTL: 72 * time.Hour}
	cfg.Sanitize()

	if cfg.CookieName != DefaultSessionCookieName {
		t.Errorf("cookie name = %q", cfg.CookieName)
	}
	if cfg.TTL != 24*time.Hour {
		t.Errorf("ttl = %v", cfg.TTL)
	}
	if cfg.ProfileTTL != cfg.TTL {
		t.Errorf("profile ttl %v should be capped at session ttl %v", cfg.ProfileTTL, cfg.TTL)
	}
}

func TestObservabilityConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityConfig{
		Metrics:  ObservabilityMetricsConfig{Enabled: true, StatsdAddress: " ", Prefix: ".shop."},
		LogLevel: "LOUD",
	}
	cfg.Sanitize()

	if cfg.Metrics.IsEnabled() {
		t.Fatalf("expected metrics disabled when address is empty")
	}
	if cfg.Metrics.Prefix != "shop" {
		t.Errorf("prefix = %q", cfg.Metrics.Prefix)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}
