package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/target/ecompanel-ui/config"
	httpx "github.com/target/ecompanel-ui/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

func (c *HTTPServerConfig) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// BuildHandler assembles the router and middleware chain from the service container.
func BuildHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config is required")
	}
	appCfg := cfg.Config
	logger := cfg.logger()
	s := cfg.Services

	services := httpx.RouterServices{
		HealthChecks: s.HealthChecks,
		Cookies: httpx.CookieConfig{
			SessionName:   appCfg.Session.CookieName,
			SessionMaxAge: appCfg.Session.MaxAge(),
			CartMaxAge:    int(appCfg.Cache.CartTTL.Seconds()),
			Domain:        appCfg.HTTP.CookieDomain,
		},
		Metrics: s.Observability.MetricsSink,
		IsDev:   appCfg.IsDev,
		Logger:  logger,
	}
	// Typed nils would defeat the handlers' nil checks.
	if s.Auth != nil {
		services.Auth = s.Auth
	}
	if s.Catalog != nil {
		services.Catalog = s.Catalog
	}
	if s.Storefront != nil {
		services.Storefront = s.Storefront
	}
	if s.Cart != nil {
		services.Cart = s.Cart
	}
	if s.Orders != nil {
		services.Orders = s.Orders
	}
	if s.Customers != nil {
		services.Customers = s.Customers
	}
	if s.Dashboard != nil {
		services.Dashboard = s.Dashboard
	}
	if appCfg.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", appCfg.HTTP.CompressionLevel)
		services.Compression = &httpx.CompressionConfig{Level: appCfg.HTTP.CompressionLevel, MinSize: 512}
	}

	handler, err := httpx.NewRouter(services)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	return handler, nil
}

// StartHTTPServer binds the listener and serves in the background.
// Serve errors other than a clean shutdown are sent on errCh.
func StartHTTPServer(cfg *HTTPServerConfig, errCh chan<- error) (*http.Server, net.Addr, error) {
	handler, err := BuildHandler(cfg)
	if err != nil {
		return nil, nil, err
	}
	httpCfg := cfg.Config.HTTP
	addr := httpCfg.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":3000"
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  httpCfg.ReadTimeout,
		WriteTimeout: httpCfg.WriteTimeout,
		IdleTimeout:  httpCfg.IdleTimeout,
	}

	logger := cfg.logger()
	go func() {
		logger.Info("starting HTTP server", "addr", ln.Addr().String())
		if serveErr := server.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", serveErr)
		}
	}()
	return server, ln.Addr(), nil
}

// ShutdownHTTPServer gracefully shuts down the HTTP server within the configured timeout.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, cfg config.HTTPConfig, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("HTTP server stopped")
	return nil
}

// RunWithShutdown serves HTTP until ctx is cancelled, SIGINT or SIGTERM arrives,
// or the server fails. Metrics are flushed on the way out.
func RunWithShutdown(ctx context.Context, cfg *HTTPServerConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("http server config is required")
	}
	logger := cfg.logger()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	server, _, err := StartHTTPServer(cfg, errCh)
	if err != nil {
		return err
	}

	var runErr error
	select {
	case <-sigCtx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-errCh:
		logger.Error("service error", "error", runErr)
	}

	if err := ShutdownHTTPServer(ctx, server, cfg.Config.HTTP, logger); err != nil {
		runErr = errors.Join(runErr, err)
	}
	if err := cfg.Services.Observability.Close(); err != nil {
		logger.Warn("close metrics client failed", "error", err)
	}
	return runErr
}
