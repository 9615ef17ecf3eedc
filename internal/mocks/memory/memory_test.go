package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/ecompanel-ui/internal/domain/model"
)

func TestCache(t *testing.T) {
	ctx := context.Background()
	c := NewCache()

	require.NoError(t, c.Set(ctx, "catalog:a", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "catalog:b", []byte("2"), time.Minute))
	require.NoError(t, c.Set(ctx, "other", []byte("3"), 0))

	v, err := c.Get(ctx, "catalog:a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	assert.Equal(t, time.Minute, c.TTLs["catalog:a"])

	n, err := c.DeletePrefix(ctx, "catalog:")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, c.Len())

	c.Err = errors.New("down")
	_, err = c.Get(ctx, "other")
	assert.Error(t, err)
	assert.Error(t, c.Health(ctx))
}

func TestCartStore_CopiesLines(t *testing.T) {
	ctx := context.Background()
	s := NewCartStore()
	cart := &model.Cart{ID: "c1", Lines: []model.CartLine{{ProductID: "p1", Quantity: 1}}}
	require.NoError(t, s.Save(ctx, cart, time.Hour))

	cart.Lines[0].Quantity = 5
	got, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Lines[0].Quantity)
}

func TestProfileStore(t *testing.T) {
	ctx := context.Background()
	s := NewProfileStore()
	require.NoError(t, s.SaveProfile(ctx, "tok", model.User{Email: "a@b.co"}, time.Hour))

	u, err := s.GetProfile(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", u.Email)

	require.NoError(t, s.DeleteProfile(ctx, "tok"))
	u, err = s.GetProfile(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, u)
}
