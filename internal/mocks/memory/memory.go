// Package memory contains hand-written in-memory stores for unit tests.
// They are lightweight and need no codegen or Redis.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CacheRepository = (*Cache)(nil)
	_ ports.CartStore       = (*CartStore)(nil)
	_ ports.ProfileStore    = (*ProfileStore)(nil)
)

// Cache is an in-memory ports.CacheRepository. TTLs are recorded but never expire entries.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]byte
	TTLs    map[string]time.Duration

	// Err, when set, is returned by every call.
	Err error
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: map[string][]byte{}, TTLs: map[string]time.Duration{}}
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	v, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	if key == "" {
		return errors.New("key cannot be empty")
	}
	c.entries[key] = append([]byte(nil), value...)
	c.TTLs[key] = ttl
	return nil
}

func (c *Cache) Delete(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return false, c.Err
	}
	_, ok := c.entries[key]
	delete(c.entries, key)
	delete(c.TTLs, key)
	return ok, nil
}

func (c *Cache) DeletePrefix(_ context.Context, prefix string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return 0, c.Err
	}
	n := 0
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			delete(c.TTLs, k)
			n++
		}
	}
	return n, nil
}

func (c *Cache) Health(context.Context) error { return c.Err }

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// CartStore is an in-memory ports.CartStore.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]model.Cart
}

// NewCartStore creates an empty CartStore.
func NewCartStore() *CartStore {
	return &CartStore{carts: map[string]model.Cart{}}
}

func (s *CartStore) Get(_ context.Context, id string) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, nil
	}
	c.Lines = append([]model.CartLine(nil), c.Lines...)
	return &c, nil
}

func (s *CartStore) Save(_ context.Context, cart *model.Cart, _ time.Duration) error {
	if cart == nil || cart.ID == "" {
		return errors.New("cart ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *cart
	c.Lines = append([]model.CartLine(nil), cart.Lines...)
	s.carts[cart.ID] = c
	return nil
}

func (s *CartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

// ProfileStore is an in-memory ports.ProfileStore keyed by raw token.
type ProfileStore struct {
	mu       sync.Mutex
	profiles map[string]model.User
}

// NewProfileStore creates an empty ProfileStore.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: map[string]model.User{}}
}

func (s *ProfileStore) SaveProfile(_ context.Context, token string, user model.User, _ time.Duration) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[token] = user
	return nil
}

func (s *ProfileStore) GetProfile(_ context.Context, token string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.profiles[token]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *ProfileStore) DeleteProfile(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, token)
	return nil
}
