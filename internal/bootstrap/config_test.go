package bootstrap

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_API_URL", "https://api.shop.example.com/")
	t.Setenv("SESSION_COOKIE_NAME", " ")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://api.shop.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, "authToken", cfg.Session.CookieName)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "soon")
	_, err := LoadConfig()
	require.ErrorContains(t, err, "parse config")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
