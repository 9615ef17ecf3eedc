package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/target/ecompanel-ui/config"
	"github.com/target/ecompanel-ui/internal/adapters/backendapi"
	redisadapter "github.com/target/ecompanel-ui/internal/adapters/redis"
	"github.com/target/ecompanel-ui/internal/observability/statsd"
	"github.com/target/ecompanel-ui/internal/ports"
	"github.com/target/ecompanel-ui/internal/service"
)

// ServiceContainer holds every service the HTTP layer and the admin CLI use.
type ServiceContainer struct {
	Auth       *service.AuthService
	Catalog    *service.CatalogService
	Storefront *service.StorefrontService
	Cart       *service.CartService
	Orders     *service.OrderService
	Customers  *service.CustomerService
	Dashboard  *service.DashboardService

	Backend *backendapi.Client
	// Cache is nil when the catalog cache is disabled.
	Cache ports.CacheRepository

	HealthChecks  map[string]ports.HealthChecker
	Observability ObservabilityContainer
}

// ObservabilityContainer groups the metrics sink and its configuration.
type ObservabilityContainer struct {
	MetricsSink   statsd.Sink
	MetricsConfig config.ObservabilityMetricsConfig
	closer        func() error
}

// Close releases the metrics connection, if any.
func (o ObservabilityContainer) Close() error {
	if o.closer == nil {
		return nil
	}
	return o.closer()
}

// ServiceDeps contains dependencies for building services.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	obs := ObservabilityContainer{MetricsConfig: cfg.Metrics}
	if !cfg.Metrics.IsEnabled() {
		return obs
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  cfg.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return obs
	}
	obs.MetricsSink = client
	obs.closer = client.Close
	return obs
}

func newBackendClient(cfg config.BackendConfig, metrics statsd.Sink, logger *slog.Logger) (*backendapi.Client, error) {
	client, err := backendapi.NewClient(backendapi.Config{
		BaseURL:         cfg.BaseURL,
		Timeout:         cfg.Timeout,
		RetryAttempts:   cfg.RetryAttempts,
		RetryBackoff:    cfg.RetryBackoff,
		TokenExpression: cfg.TokenExpression,
		UserExpression:  cfg.UserExpression,
		Metrics:         metrics,
		Logger:          logger.With("component", "backend"),
	})
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}
	return client, nil
}

// NewServices wires the backend client, Redis stores and domain services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps with config are required")
	}
	if deps.RedisClient == nil {
		return ServiceContainer{}, errors.New("redis client is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	obs := buildObservability(logger, cfg.Observability)
	backend, err := newBackendClient(cfg.Backend, obs.MetricsSink, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	cacheRepo := redisadapter.NewCacheRepo(deps.RedisClient)
	var catalogCache ports.CacheRepository
	if cfg.Cache.Enabled {
		catalogCache = cacheRepo
	}

	catalog := service.NewCatalogService(service.CatalogServiceOptions{
		APIs: service.CatalogAPIs{
			Categories:    backend,
			Brands:        backend,
			Manufacturers: backend,
			Products:      backend,
			Banners:       backend,
			Uploads:       backend,
		},
		Cache: service.CatalogCacheConfig{
			Repo:    catalogCache,
			TTL:     cfg.Cache.CatalogTTL,
			Metrics: obs.MetricsSink,
		},
		Logger: logger,
	})

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			API:      backend,
			Profiles: redisadapter.NewProfileStore(deps.RedisClient),
			Config:   service.AuthConfig{ProfileTTL: cfg.Session.ProfileTTL, Logger: logger},
		}),
		Catalog:    catalog,
		Storefront: service.NewStorefrontService(service.StorefrontServiceOptions{Catalog: catalog, Logger: logger}),
		Cart: service.NewCartService(service.CartServiceOptions{
			Carts:    redisadapter.NewCartStore(deps.RedisClient),
			Products: backend,
			TTL:      cfg.Cache.CartTTL,
		}),
		Orders:    service.NewOrderService(service.OrderServiceOptions{Orders: backend, Logger: logger}),
		Customers: service.NewCustomerService(service.CustomerServiceOptions{Customers: backend, Orders: backend}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Sources: service.DashboardSources{Products: backend, Orders: backend, Customers: backend},
			Logger:  logger,
		}),
		Backend:       backend,
		Cache:         catalogCache,
		HealthChecks:  map[string]ports.HealthChecker{"backend": backend, "redis": cacheRepo},
		Observability: obs,
	}, nil
}
