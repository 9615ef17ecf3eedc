package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/ports"
)

// DefaultCartPrefix namespaces cart keys.
const DefaultCartPrefix = "cart:"

var _ ports.CartStore = (*CartStore)(nil)

// CartStore keeps anonymous carts as JSON documents with a sliding TTL.
type CartStore struct {
	client redis.UniversalClient
	prefix string
}

// NewCartStore creates a CartStore using DefaultCartPrefix.
func NewCartStore(client redis.UniversalClient) *CartStore {
	return &CartStore{client: client, prefix: DefaultCartPrefix}
}

// Get returns nil, nil when the cart does not exist.
func (s *CartStore) Get(ctx context.Context, id string) (*model.Cart, error) {
	if id == "" {
		return nil, nil
	}

	b, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(b, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	cart.ID = id
	return &cart, nil
}

// Save writes cart and resets its expiry to ttl.
func (s *CartStore) Save(ctx context.Context, cart *model.Cart, ttl time.Duration) error {
	if cart == nil || cart.ID == "" {
		return errors.New("cart ID cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("cart ttl must be positive")
	}

	b, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+cart.ID, b, ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

// Delete removes the cart. Deleting a missing cart is not an error.
func (s *CartStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+id).Err()
}
