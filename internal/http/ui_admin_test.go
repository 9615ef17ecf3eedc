package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/ecompanel-ui/internal/errors"
)

const adminToken = "tok-admin"

func adminGet(path string, opts ...reqOpt) *http.Request {
	return getReq(path, append([]reqOpt{withSession(adminToken)}, opts...)...)
}

func adminPost(path string, form url.Values, opts ...reqOpt) *http.Request {
	return formReq(path, form, append([]reqOpt{withSession(adminToken)}, opts...)...)
}

func TestAdminPages_Render(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		path     string
		contains []string
	}{
		{path: "/admin", contains: []string{"Products", "Recent orders", "Some figures could not be loaded"}},
		{path: "/admin/products", contains: []string{"RUN-1", "Add product", "Published"}},
		{path: "/admin/products/add", contains: []string{"Save as draft", `name="requiresShipping" value="true" checked`, "- Shoes"}},
		{path: "/admin/products/p1/edit", contains: []string{`value="Runner"`, `value="30"`, "Save changes"}},
		{path: "/admin/categories", contains: []string{"2 categories", "Men", "Shoes"}},
		{path: "/admin/categories/new", contains: []string{"Create category", "None (top level)"}},
		{path: "/admin/categories/c2/edit", contains: []string{`value="Shoes"`}},
		{path: "/admin/brands", contains: []string{"Acme", "New Brand"}},
		{path: "/admin/brands/b1/edit", contains: []string{`value="Acme"`, "/admin/brands/upload-logo"}},
		{path: "/admin/manufacturers", contains: []string{"Globex", "New Manufacturer"}},
		{path: "/admin/manufacturers/new", contains: []string{"Create Manufacturer", "/admin/manufacturers/upload-logo"}},
		{path: "/admin/orders", contains: []string{"o1", "All statuses", "$50.00"}},
		{path: "/admin/orders/o1", contains: []string{"Runner", "Update status", `id="order-status-o1"`}},
		{path: "/admin/customers", contains: []string{"Grace Hopper", "grace@example.com"}},
		{path: "/admin/customers/cu1", contains: []string{"Grace Hopper", "$50.00"}},
		{path: "/admin/customers/new", contains: []string{"Create customer"}},
		{path: "/admin/customers/cu1/edit", contains: []string{`value="grace@example.com"`}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(adminGet(tt.path))
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, `class="admin-sidebar"`)
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
		})
	}
}

func TestAdminProductsPage_ListsDrafts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(adminGet("/admin/products?q=run"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.catalog.listOpts, 1)
	assert.True(t, env.catalog.listOpts[0].IncludeUnpublished)
	assert.Equal(t, "run", env.catalog.listOpts[0].Search)
}

func TestAdminPages_ActiveNav(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(adminGet("/admin/orders/o1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/admin/orders" hx-get="/admin/orders" hx-target="#content" hx-push-url="true" class="active"`)
}

func TestAdminPages_HTMXPartialUpdatesHeader(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(adminGet("/admin/customers", withHTMX()))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">Customers</h1>`)
	assert.NotContains(t, body, `class="admin-sidebar"`)
}

func TestAdminPages_UnknownEntity(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(adminGet("/admin/products/zzz/edit"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")

	rec = env.do(adminGet("/admin/orders/zzz", withHTMX()))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-status="404"`)
}

func TestDashboard_SessionRejected(t *testing.T) {
	env := newTestEnv(t)
	env.dashboard.err = apperrors.Unauthorized()

	rec := env.do(adminGet("/admin"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	c := responseCookie(rec, testSessionCookie)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
}

func TestSaveProduct(t *testing.T) {
	t.Run("draft", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(adminPost("/admin/products", url.Values{
			"name": {"Trail Runner"}, "sku": {"TR-1"}, "price": {"49.5"}, "oldPrice": {""},
			"stockQuantity": {"5"}, "categoryId": {"c2"}, "relatedProductIds": {"a, b", "c"},
			"action": {"draft"},
		}))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/products", rec.Header().Get("Location"))
		require.NotNil(t, env.catalog.lastProduct)
		assert.True(t, env.catalog.lastDraft)
		assert.InDelta(t, 49.5, env.catalog.lastProduct.Price, 0.001)
		assert.Nil(t, env.catalog.lastProduct.OldPrice)
		require.NotNil(t, env.catalog.lastProduct.CategoryID)
		assert.Equal(t, "c2", *env.catalog.lastProduct.CategoryID)
		require.NotNil(t, env.catalog.lastProduct.RelatedProductIDs)
		assert.Equal(t, "a,b,c", *env.catalog.lastProduct.RelatedProductIDs)
	})

	t.Run("publish htmx", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(adminPost("/admin/products", url.Values{"name": {"Tee"}, "sku": {"T-2"}, "price": {"10"}}, withHTMX()))
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "/admin/products", rec.Header().Get("Hx-Redirect"))
		assert.False(t, env.catalog.lastDraft)
		assert.Contains(t, rec.Header().Get("Hx-Trigger"), "Product saved")
	})

	t.Run("field errors", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(adminPost("/admin/products", url.Values{
			"name": {""}, "sku": {"X"}, "price": {"-1"},
			"availableStartDate": {"2025-05-01"}, "availableEndDate": {"2025-04-01"},
		}))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Product name is required.")
		assert.Contains(t, body, "Price must be 0 or more.")
		assert.Contains(t, body, "Available start date must not be after the end date.")
		assert.Contains(t, body, `value="X"`)
		assert.Nil(t, env.catalog.lastProduct)
	})

	t.Run("backend field error", func(t *testing.T) {
		env := newTestEnv(t)
		env.catalog.createErr = apperrors.ValidationField("sku", "SKU already exists")
		rec := env.do(adminPost("/admin/products", url.Values{"name": {"Tee"}, "sku": {"T-2"}}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "SKU already exists")
		assert.Contains(t, rec.Body.String(), errMsgFixBelow)
	})

	t.Run("expired session", func(t *testing.T) {
		env := newTestEnv(t)
		env.catalog.createErr = apperrors.Unauthorized()
		rec := env.do(adminPost("/admin/products", url.Values{"name": {"Tee"}, "sku": {"T-2"}}))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("update", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(adminPost("/admin/products/p1", url.Values{"name": {"Runner 2"}, "sku": {"RUN-1"}, "isPublished": {"true"}}))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.NotNil(t, env.catalog.lastProduct)
		assert.Equal(t, "Runner 2", env.catalog.lastProduct.Name)
		assert.True(t, env.catalog.lastProduct.IsPublished)
	})
}

func TestSaveCategory(t *testing.T) {
	const id = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	t.Run("self parent", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(adminPost("/admin/categories/"+id, url.Values{"name": {"Loop"}, "parentCategoryId": {id}}))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "A category cannot be its own parent.")
		assert.Nil(t, env.catalog.lastCat)
	})

	t.Run("bad parent id", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(adminPost("/admin/categories", url.Values{"name": {"Kids"}, "parentCategoryId": {"not-a-uuid"}}))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Parent category is not a valid selection.")
	})

	t.Run("create", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(adminPost("/admin/categories", url.Values{"name": {"Kids"}, "isActive": {"on"}, "sortOrder": {"3"}}))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/categories", rec.Header().Get("Location"))
		require.NotNil(t, env.catalog.lastCat)
		assert.True(t, env.catalog.lastCat.IsActive)
		assert.Equal(t, 3, env.catalog.lastCat.SortOrder)
		assert.Nil(t, env.catalog.lastCat.ParentCategoryID)
	})
}

func TestSaveBrandAndManufacturer(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(adminPost("/admin/brands", url.Values{"name": {"Initech"}, "isPublished": {"true"}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/brands", rec.Header().Get("Location"))
	require.NotNil(t, env.catalog.lastBrand)
	assert.Equal(t, "Initech", env.catalog.lastBrand.Name)

	rec = env.do(adminPost("/admin/manufacturers/m1", url.Values{"name": {"Globex Corp"}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/manufacturers", rec.Header().Get("Location"))
	assert.Equal(t, "Globex Corp", env.catalog.lastBrand.Name)

	rec = env.do(adminPost("/admin/brands", url.Values{"name": {""}, "displayOrder": {"-4"}}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name is required.")
	assert.Contains(t, rec.Body.String(), "Display order must be between 0 and 100000.")
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(adminPost("/admin/products/p2/delete", url.Values{}, withHTMX()))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/admin/products", rec.Header().Get("Hx-Redirect"))

	req := httptest.NewRequest(http.MethodDelete, "/admin/brands/b1", nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: adminToken})
	rec = env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"redirect":"/admin/brands"}`, rec.Body.String())

	rec = env.do(adminPost("/admin/categories/missing/delete", url.Values{}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, []string{"p2", "b1"}, env.catalog.deleted)
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(adminPost("/admin/orders/o1/status", url.Values{"status": {"Shipped"}}, withHTMX()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<span id="order-status-o1" class="badge badge-primary">Shipped</span>`, rec.Body.String())

	rec = env.do(adminPost("/admin/orders/o1/status", url.Values{"status": {"Lost"}}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown order status")

	rec = env.do(adminPost("/admin/orders/o1/status", url.Values{"status": {"delivered"}}, withHeader("Accept", "application/json")))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"status":"Delivered"}`, rec.Body.String())
}

func TestOrdersFilter(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(adminGet("/admin/orders?status=Cancelled"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/admin/orders/o2"`)
	assert.NotContains(t, rec.Body.String(), `href="/admin/orders/o1"`)

	rec = env.do(adminGet("/admin/orders?status=bogus"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrders_BackendDown(t *testing.T) {
	env := newTestEnv(t)
	env.orders.err = apperrors.Unavailable(errors.New("dial tcp: refused"), "The store backend is unavailable.")

	rec := env.do(adminGet("/admin/orders"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "The store backend is unavailable.")
	assert.NotContains(t, rec.Body.String(), "refused")
}

func TestSaveCustomer(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(adminPost("/admin/customers", url.Values{"name": {"Linus"}, "email": {"not-an-email"}}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enter a valid email.")

	rec = env.do(adminPost("/admin/customers", url.Values{"name": {"Linus"}, "email": {"linus@example.com"}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, env.customers.created, 1)
	assert.Equal(t, "linus@example.com", env.customers.created[0].Email)
}

func multipartUpload(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: adminToken})
	return req
}

func TestUploadImage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(multipartUpload(t, "/admin/brands/upload-logo", "logo.png", []byte("png-bytes")))
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://cdn.example.com/logo.png", body["url"])
	assert.Equal(t, []string{"brand-logo:logo.png"}, env.catalog.uploads)

	rec = env.do(multipartUpload(t, "/admin/categories/upload-image", "script.exe", []byte("MZ")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"file"`)

	rec = env.do(multipartUpload(t, "/admin/manufacturers/upload-logo", "big.jpg", make([]byte, maxUploadSize+1)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
