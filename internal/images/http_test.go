package images_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcebotari/vatra/internal/images"
	"github.com/dcebotari/vatra/internal/platform/objstore"
)

func newImageServer(t *testing.T, publicDir string, upstream http.HandlerFunc) *chi.Mux {
	t.Helper()

	var store *objstore.Client
	if upstream != nil {
		remote := httptest.NewServer(upstream)
		t.Cleanup(remote.Close)
		store = objstore.New(remote.URL, "", remote.Client())
	} else {
		store = objstore.New("http://store.invalid", "", nil)
	}

	router := chi.NewRouter()
	handler := images.NewHandler(publicDir, store)
	router.Route("/images", handler.RegisterRoutes)
	return router
}

func TestServeImage_LocalHit(t *testing.T) {
	publicDir := t.TempDir()
	localPath := filepath.Join(publicDir, "menu", "taverna", "ciorbe")
	require.NoError(t, os.MkdirAll(localPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(localPath, "1.webp"), []byte("webp-bytes"), 0o644))

	upstreamHit := false
	router := newImageServer(t, publicDir, func(writer http.ResponseWriter, request *http.Request) {
		upstreamHit = true
		writer.WriteHeader(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/images/menu/taverna/ciorbe/1.webp", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "webp-bytes", recorder.Body.String())
	assert.Equal(t, "image/webp", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", recorder.Header().Get("Cache-Control"))
	assert.False(t, upstreamHit, "local hit must not reach the store")
}

func TestServeImage_ProxyFallback(t *testing.T) {
	router := newImageServer(t, t.TempDir(), func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, objstore.PublicPrefix+"gallery/interior.webp", request.URL.Path)
		writer.Header().Set("Content-Type", "image/webp")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte("remote-bytes"))
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/images/gallery/interior.webp", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "remote-bytes", recorder.Body.String())
	assert.Equal(t, "image/webp", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", recorder.Header().Get("Cache-Control"))
}

func TestServeImage_UpstreamStatusPropagated(t *testing.T) {
	router := newImageServer(t, t.TempDir(), func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "not found", http.StatusNotFound)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/images/menu/taverna/missing/x.webp", nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Upstream 404")
}

func TestServeImage_RejectsTraversal(t *testing.T) {
	publicDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "secret.txt"), []byte("secret"), 0o644))

	router := newImageServer(t, publicDir, func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "not found", http.StatusNotFound)
	})

	request := httptest.NewRequest(http.MethodGet, "/images/menu/a.webp", nil)
	// Force a traversing wildcard past the server-side path cleaning.
	request.URL.Path = "/images/menu/../secret.txt"
	request.URL.RawPath = ""

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.NotEqual(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "secret")
}

func TestServeImage_ContentTypeFallback(t *testing.T) {
	router := newImageServer(t, t.TempDir(), func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte{0x00, 0x01})
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/images/menu/taverna/file.bin", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/octet-stream", recorder.Header().Get("Content-Type"))
}
