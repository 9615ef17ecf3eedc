package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfHandler() http.Handler {
	return CSRFProtection(CSRFConfig{AllowJSON: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetCSRFToken(r)))
	}))
}

func TestCSRF_IssuesTokenOnFirstVisit(t *testing.T) {
	rec := httptest.NewRecorder()
	csrfHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	c := responseCookie(rec, DefaultCSRFCookieName)
	require.NotNil(t, c)
	assert.NotEmpty(t, c.Value)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, c.Value, rec.Body.String())
}

func TestCSRF_KeepsExistingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	rec := httptest.NewRecorder()
	csrfHandler().ServeHTTP(rec, req)

	assert.Nil(t, responseCookie(rec, DefaultCSRFCookieName))
	assert.Equal(t, testCSRFToken, rec.Body.String())
}

func TestCSRF_Validation(t *testing.T) {
	tests := []struct {
		name  string
		build func() *http.Request
		want  int
	}{
		{
			name: "header matches",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/cart/clear", nil)
				r.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
				return r
			},
			want: http.StatusOK,
		},
		{
			name: "header mismatch",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/cart/clear", nil)
				r.Header.Set(DefaultCSRFHeaderName, "forged")
				return r
			},
			want: http.StatusForbidden,
		},
		{
			name: "form field matches",
			build: func() *http.Request {
				body := url.Values{"csrf_token": {testCSRFToken}}.Encode()
				r := httptest.NewRequest(http.MethodPost, "/logout", strings.NewReader(body))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return r
			},
			want: http.StatusOK,
		},
		{
			name: "form field missing",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/logout", strings.NewReader("a=b"))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return r
			},
			want: http.StatusForbidden,
		},
		{
			name: "json exempt",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
				r.Header.Set("Content-Type", "application/json")
				return r
			},
			want: http.StatusOK,
		},
		{
			name: "delete without token",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodDelete, "/admin/brands/b1", nil)
			},
			want: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.build()
			req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
			rec := httptest.NewRecorder()
			csrfHandler().ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCSRF_NewVisitorCannotPost(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/clear", nil)
	req.Header.Set(DefaultCSRFHeaderName, "guess")
	csrfHandler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
