package api_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soiemaison/storefront-backend/api"
)

func newGarmentHandler(t *testing.T) *api.GarmentHandler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return api.NewGarmentHandler(&http.Client{Timeout: 5 * time.Second}, log)
}

func TestGarmentResolveFromOGImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head>
			<meta property="og:image" content="/images/silk-dress.jpg">
		</head><body><img src="/images/thumb.jpg"></body></html>`)
	}))
	defer srv.Close()

	h := newGarmentHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/garment-image?url="+srv.URL+"/product/1", nil)
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, srv.URL+"/images/silk-dress.jpg", resp["image_url"])
}

func TestGarmentResolveFromJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><img src="https://cdn.example.com/garment.jpg"></body></html>`)
	}))
	defer srv.Close()

	h := newGarmentHandler(t)
	body := strings.NewReader(fmt.Sprintf(`{"url": %q}`, srv.URL))
	req := httptest.NewRequest(http.MethodPost, "/api/garment-image", body)
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://cdn.example.com/garment.jpg", resp["image_url"])
}

func TestGarmentResolveNoImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>nothing to see</p></body></html>`)
	}))
	defer srv.Close()

	h := newGarmentHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/garment-image?url="+srv.URL, nil)
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGarmentResolveMissingURL(t *testing.T) {
	h := newGarmentHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/garment-image", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGarmentResolveRejectsNonPost(t *testing.T) {
	h := newGarmentHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/garment-image?url=http://example.com", nil)
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGarmentResolveRejectsBadScheme(t *testing.T) {
	h := newGarmentHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/garment-image?url=ftp://example.com", nil)
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
