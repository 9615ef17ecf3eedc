package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/ports"
)

// DefaultProfilePrefix namespaces profile keys.
const DefaultProfilePrefix = "profile:"

var _ ports.ProfileStore = (*ProfileStore)(nil)

// ProfileStore mirrors the signed-in user's profile. Keys are derived from a
// SHA-256 of the session token so raw tokens never reach Redis.
type ProfileStore struct {
	client redis.UniversalClient
	prefix string
}

// NewProfileStore creates a ProfileStore using DefaultProfilePrefix.
func NewProfileStore(client redis.UniversalClient) *ProfileStore {
	return &ProfileStore{client: client, prefix: DefaultProfilePrefix}
}

func (s *ProfileStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.prefix + hex.EncodeToString(sum[:])
}

func (s *ProfileStore) SaveProfile(ctx context.Context, token string, user model.User, ttl time.Duration) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("profile ttl must be positive")
	}

	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.client.Set(ctx, s.key(token), b, ttl).Err()
}

func (s *ProfileStore) GetProfile(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}

	b, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get profile: %w", err)
	}

	var u model.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &u, nil
}

func (s *ProfileStore) DeleteProfile(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, s.key(token)).Err()
}
