package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/ecompanel-ui/internal/ports"
)

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, healthResponse, rec.Body.String())

	rec = env.do(httptest.NewRequest(http.MethodHead, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestReadyHandler(t *testing.T) {
	t.Run("all ok", func(t *testing.T) {
		h := readyHandler(map[string]ports.HealthChecker{"redis": fakeChecker{}, "backend": fakeChecker{}})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{"backend":"ok","redis":"ok"}}`, rec.Body.String())
	})

	t.Run("one failing", func(t *testing.T) {
		h := readyHandler(map[string]ports.HealthChecker{
			"redis":   fakeChecker{err: errors.New("connection refused")},
			"backend": fakeChecker{},
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"degraded","checks":{"backend":"ok","redis":"connection refused"}}`, rec.Body.String())
	})

	t.Run("no checks", func(t *testing.T) {
		rec := httptest.NewRecorder()
		readyHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{}}`, rec.Body.String())
	})
}
