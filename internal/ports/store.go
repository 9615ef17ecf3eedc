package ports

import (
	"context"
	"time"

	"github.com/target/ecompanel-ui/internal/domain/model"
)

// CacheRepository is a byte-oriented cache.
type CacheRepository interface {
	// Get returns nil, nil when the key is missing or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key and reports whether it existed.
	Delete(ctx context.Context, key string) (bool, error)

	// DeletePrefix removes every key starting with prefix and returns the count removed.
	DeletePrefix(ctx context.Context, prefix string) (int, error)

	Health(ctx context.Context) error
}

// CartStore persists anonymous carts.
type CartStore interface {
	// Get returns nil, nil when the cart does not exist.
	Get(ctx context.Context, id string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// ProfileStore mirrors the signed-in user's profile keyed by session token.
// It is a display cache only and is never consulted for access decisions.
type ProfileStore interface {
	SaveProfile(ctx context.Context, token string, user model.User, ttl time.Duration) error
	// GetProfile returns nil, nil when no profile is stored for token.
	GetProfile(ctx context.Context, token string) (*model.User, error)
	DeleteProfile(ctx context.Context, token string) error
}
