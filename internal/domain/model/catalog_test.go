package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "running-shoes", Slugify("  Running Shoes "))
	assert.Equal(t, "tv-audio", Slugify("TV & Audio"))
	assert.Equal(t, "a1", Slugify("--A1--"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestCategoryRequest_Validate(t *testing.T) {
	parent := "  "
	req := CategoryRequest{Name: " Home & Garden ", ParentCategoryID: &parent}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Home & Garden", req.Name)
	assert.Equal(t, "home-garden", req.Slug)
	assert.Nil(t, req.ParentCategoryID)

	bad := CategoryRequest{Name: "x", SortOrder: -1}
	assert.Error(t, bad.Validate())
	assert.Error(t, (&CategoryRequest{}).Validate())
}

func TestSortAndFilterCategories(t *testing.T) {
	cats := []Category{
		{Name: "B", SortOrder: 2, IsActive: true},
		{Name: "A", SortOrder: 1, IsActive: true, SubCategories: []Category{
			{Name: "A2", SortOrder: 2, IsActive: true},
			{Name: "A1", SortOrder: 1, IsActive: false},
			{Name: "A0", SortOrder: 3, IsActive: true},
		}},
		{Name: "Hidden", SortOrder: 0, IsActive: false},
	}
	active := ActiveCategories(cats)
	SortCategories(active)

	require.Len(t, active, 2)
	assert.Equal(t, "A", active[0].Name)
	require.Len(t, active[0].SubCategories, 2)
	assert.Equal(t, "A2", active[0].SubCategories[0].Name)
	assert.Equal(t, "A0", active[0].SubCategories[1].Name)
	assert.Len(t, cats[1].SubCategories, 3, "input must not be modified")
}

func TestHomepageBrands(t *testing.T) {
	brands := []Brand{
		{Name: "Late", ShowOnHomepage: true, IsPublished: true, DisplayOrder: 5},
		{Name: "Off", ShowOnHomepage: false, IsPublished: true, DisplayOrder: 0},
		{Name: "Draft", ShowOnHomepage: true, IsPublished: false, DisplayOrder: 1},
		{Name: "Early", ShowOnHomepage: true, IsPublished: true, DisplayOrder: 1},
	}
	got := HomepageBrands(brands)
	require.Len(t, got, 2)
	assert.Equal(t, "Early", got[0].Name)
	assert.Equal(t, "Late", got[1].Name)
}

func TestActiveBanners(t *testing.T) {
	got := ActiveBanners([]Banner{
		{ID: "2", IsActive: true, DisplayOrder: 2},
		{ID: "x", IsActive: false},
		{ID: "1", IsActive: true, DisplayOrder: 1},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
}

func TestParseOrderStatus(t *testing.T) {
	st, err := ParseOrderStatus(" shipped ")
	require.NoError(t, err)
	assert.Equal(t, OrderShipped, st)
	assert.True(t, st.Valid())

	_, err = ParseOrderStatus("lost")
	assert.Error(t, err)
	assert.False(t, OrderStatus("lost").Valid())
}

func TestCart(t *testing.T) {
	c := &Cart{ID: "c1"}
	assert.True(t, c.IsEmpty())

	require.NoError(t, c.Add(CartLine{ProductID: "p1", UnitPrice: 2.5, Quantity: 2}))
	require.NoError(t, c.Add(CartLine{ProductID: "p1", UnitPrice: 2.5, Quantity: 98}))
	require.NoError(t, c.Add(CartLine{ProductID: "p2", UnitPrice: 10}))
	assert.Error(t, c.Add(CartLine{ProductID: " "}))

	assert.Equal(t, MaxCartQuantity, c.Lines[0].Quantity)
	assert.Equal(t, 1, c.Lines[1].Quantity)
	assert.Equal(t, 100, c.ItemCount())
	assert.InDelta(t, 99*2.5+10, c.Subtotal(), 0.0001)

	require.NoError(t, c.SetQuantity("p2", 0))
	assert.Len(t, c.Lines, 1)
	assert.ErrorIs(t, c.SetQuantity("nope", 1), ErrCartLineNotFound)

	c.Remove("p1")
	assert.True(t, c.IsEmpty())
}

func TestCart_LineCap(t *testing.T) {
	c := &Cart{ID: "c1"}
	for i := 0; i < MaxCartLines; i++ {
		require.NoError(t, c.Add(CartLine{ProductID: fmt.Sprintf("p%d", i), Quantity: 1}))
	}

	assert.ErrorIs(t, c.Add(CartLine{ProductID: "one-too-many", Quantity: 1}), ErrCartFull)
	assert.Len(t, c.Lines, MaxCartLines)

	// Existing lines still merge.
	require.NoError(t, c.Add(CartLine{ProductID: "p0", Quantity: 2}))
	assert.Equal(t, 3, c.Lines[0].Quantity)
}

func TestUserHelpers(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", User{FirstName: " Ada", LastName: "Lovelace "}.FullName())
	assert.Equal(t, "", User{}.FullName())
	assert.Equal(t, "É", Initial("élise"))
	assert.Equal(t, "A", Initial(""))

	req := LoginRequest{Email: " admin@shop.test ", Password: "pw"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "admin@shop.test", req.Email)
	assert.Error(t, (&LoginRequest{Email: "nope", Password: "x"}).Validate())
	assert.Error(t, (&RegisterRequest{Email: "a@b.co", Password: "short"}).Validate())
}
