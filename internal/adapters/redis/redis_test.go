package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/ecompanel-ui/internal/domain/model"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCacheRepo_SetGetDelete(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewCacheRepo(client)
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "catalog:brands", []byte(`[]`), time.Minute))

		got, err := repo.Get(ctx, "catalog:brands")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)
		assert.Equal(t, time.Minute, mr.TTL("catalog:brands"))
	})

	t.Run("missing key", func(t *testing.T) {
		got, err := repo.Get(ctx, "catalog:nothing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired key", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "catalog:short", []byte("x"), time.Second))
		mr.FastForward(2 * time.Second)

		got, err := repo.Get(ctx, "catalog:short")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "catalog:gone", []byte("x"), 0))

		deleted, err := repo.Delete(ctx, "catalog:gone")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "catalog:gone")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := repo.Get(ctx, "")
		assert.Error(t, err)
		assert.Error(t, repo.Set(ctx, "", nil, 0))
		_, err = repo.Delete(ctx, "")
		assert.Error(t, err)
	})

	require.NoError(t, repo.Health(ctx))
}

func TestCacheRepo_DeletePrefix(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewCacheRepo(client)
	ctx := context.Background()

	for _, k := range []string{"catalog:brands", "catalog:categories", "catalog:products:1", "cart:abc"} {
		require.NoError(t, mr.Set(k, "v"))
	}

	n, err := repo.DeletePrefix(ctx, "catalog:")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.False(t, mr.Exists("catalog:brands"))
	assert.True(t, mr.Exists("cart:abc"))

	_, err = repo.DeletePrefix(ctx, "")
	assert.Error(t, err)
}

func TestCacheRepo_DeletePrefixEscapesGlob(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewCacheRepo(client)

	require.NoError(t, mr.Set("a*b:1", "v"))
	require.NoError(t, mr.Set("axb:1", "v"))

	n, err := repo.DeletePrefix(context.Background(), "a*b:")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, mr.Exists("axb:1"))
}

func TestCartStore(t *testing.T) {
	mr, client := setupMiniredis(t)
	store := NewCartStore(client)
	ctx := context.Background()

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	cart := &model.Cart{ID: "c-1"}
	require.NoError(t, cart.Add(model.CartLine{ProductID: "p1", Name: "Kettle", UnitPrice: 20, Quantity: 2}))
	require.NoError(t, store.Save(ctx, cart, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL(DefaultCartPrefix+"c-1"))

	got, err = store.Get(ctx, "c-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ItemCount())
	assert.InDelta(t, 40.0, got.Subtotal(), 0.001)

	assert.Error(t, store.Save(ctx, &model.Cart{}, time.Hour))
	assert.Error(t, store.Save(ctx, cart, 0))

	require.NoError(t, store.Delete(ctx, "c-1"))
	got, err = store.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileStore(t *testing.T) {
	mr, client := setupMiniredis(t)
	store := NewProfileStore(client)
	ctx := context.Background()

	user := model.User{ID: "u1", Email: "ada@shop.test", FirstName: "Ada"}
	require.NoError(t, store.SaveProfile(ctx, "raw-token", user, time.Hour))

	for _, k := range mr.Keys() {
		assert.NotContains(t, k, "raw-token")
	}

	got, err := store.GetProfile(ctx, "raw-token")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)

	got, err = store.GetProfile(ctx, "other-token")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.DeleteProfile(ctx, "raw-token"))
	got, err = store.GetProfile(ctx, "raw-token")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Error(t, store.SaveProfile(ctx, "", user, time.Hour))
}
