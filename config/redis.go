package config

import "time"

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// CacheConfig controls the Redis read-through cache for catalog data and the cart store.
type CacheConfig struct {
	Enabled bool `env:"CACHE_ENABLED" envDefault:"true"`

	// CatalogTTL applies to cached category, brand, manufacturer and product reads.
	CatalogTTL time.Duration `env:"CACHE_CATALOG_TTL" envDefault:"60s"`

	// CartTTL is the sliding expiry of an anonymous cart.
	CartTTL time.Duration `env:"CART_TTL" envDefault:"168h"`
}

// Sanitize applies safe lower bounds to cache durations.
func (c *CacheConfig) Sanitize() {
	if c.CatalogTTL <= 0 {
		c.CatalogTTL = 60 * time.Second
	}
	if c.CartTTL < time.Hour {
		c.CartTTL = time.Hour
	}
}
