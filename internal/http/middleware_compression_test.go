package httpx

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, contentType, body string, status int) http.Handler {
	t.Helper()
	return Compression(CompressionConfig{MinSize: 16})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		if status != 0 {
			w.WriteHeader(status)
		}
		_, _ = io.WriteString(w, body)
	}))
}

func TestCompression_GzipsLargeHTML(t *testing.T) {
	body := strings.Repeat("<p>product</p>", 50)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	gzipped(t, "text/html; charset=utf-8", body, 0).ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestCompression_PassThrough(t *testing.T) {
	tests := []struct {
		name        string
		accept      string
		contentType string
		body        string
		status      int
	}{
		{name: "client refuses", accept: "gzip;q=0", contentType: "text/html", body: strings.Repeat("x", 100)},
		{name: "no accept header", contentType: "text/html", body: strings.Repeat("x", 100)},
		{name: "small body", accept: "gzip", contentType: "text/html", body: "tiny"},
		{name: "binary", accept: "gzip", contentType: "image/png", body: strings.Repeat("x", 100)},
		{name: "no content", accept: "gzip", contentType: "text/html", status: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Encoding", tt.accept)
			}
			rec := httptest.NewRecorder()
			gzipped(t, tt.contentType, tt.body, tt.status).ServeHTTP(rec, req)

			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rec.Body.String())
			if tt.status != 0 {
				assert.Equal(t, tt.status, rec.Code)
			}
		})
	}
}
