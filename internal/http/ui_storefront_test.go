package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorefrontPages(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		path     string
		contains []string
	}{
		{path: "/", contains: []string{"Summer sale", "Featured products", "Runner", "/category/men/shoes", "/brand/acme"}},
		{path: "/products?q=run", contains: []string{`Results for "run"`, "Runner"}},
		{path: "/product/p1", contains: []string{"RUN-1", "$25.00", "$30.00", "Add to cart", `max="99"`}},
		{path: "/product/p2", contains: []string{"Out of Stock"}},
		{path: "/category/men/shoes", contains: []string{"Shoes", `href="/category/men"`, "Runner"}},
		{path: "/brand/acme", contains: []string{"Acme", "Sold Out Tee"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(getReq(tt.path))
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "<!DOCTYPE html>")
			assert.Contains(t, body, `class="mega-menu"`)
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
		})
	}
}

func TestStorefront_SoldOutHasNoCartForm(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(getReq("/product/p2"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Add to cart")
}

func TestStorefront_NotFound(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/product/nope", "/category/women", "/brand/none"} {
		rec := env.do(getReq(path))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Back to the store", path)
	}
}

func TestStorefront_HTMXPartial(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(getReq("/products", withHTMX()))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "<title>Products - eCom Store</title>")
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "nav:activate")
}

func TestStorefront_SignedInLinksToAdmin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(getReq("/", withSession("tok")))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/admin"`)

	rec = env.do(getReq("/"))
	assert.Contains(t, rec.Body.String(), `href="/login"`)
}
