package images

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dcebotari/vatra/internal/platform/apperr"
	"github.com/dcebotari/vatra/internal/platform/constants"
	"github.com/dcebotari/vatra/internal/platform/ctxutil"
	"github.com/dcebotari/vatra/internal/platform/objstore"
	"github.com/dcebotari/vatra/internal/platform/respond"
)

// contentTypes maps the image extensions the site serves. Anything else
// falls back to an opaque byte stream.
var contentTypes = map[string]string{
	".webp": "image/webp",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// Handler serves /images/{bucket}/{key} local-first: a file mirrored under
// the public directory wins, and only misses are proxied from the store.
type Handler struct {
	publicDir string
	store     *objstore.Client
}

func NewHandler(publicDir string, store *objstore.Client) *Handler {
	return &Handler{publicDir: publicDir, store: store}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{bucket}/*", handler.serveImage)
}

func (handler *Handler) serveImage(writer http.ResponseWriter, request *http.Request) {
	bucket := chi.URLParam(request, "bucket")
	key := chi.URLParam(request, "*")

	if !validKey(bucket) || !validKey(key) {
		respond.Error(writer, request, apperr.NotFound("image"))
		return
	}

	localPath := filepath.Join(handler.publicDir, bucket, filepath.FromSlash(key))
	if info, err := os.Stat(localPath); err == nil && info.Mode().IsRegular() {
		writer.Header().Set(constants.HeaderContentType, contentTypeFor(key))
		writer.Header().Set(constants.HeaderCacheControl, constants.CacheControlImmutable)
		http.ServeFile(writer, request, localPath)
		return
	}

	handler.proxy(writer, request, bucket, key)
}

// proxy streams the object from the store. Upstream failures keep their
// status so a missing object stays a 404 and a store outage stays a 5xx.
func (handler *Handler) proxy(writer http.ResponseWriter, request *http.Request, bucket, key string) {
	response, err := handler.store.GetPublic(request.Context(), bucket, key)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		respond.Error(writer, request, apperr.Upstream(response.StatusCode, nil))
		return
	}

	contentType := response.Header.Get(constants.HeaderContentType)
	if contentType == "" {
		contentType = contentTypeFor(key)
	}

	writer.Header().Set(constants.HeaderContentType, contentType)
	writer.Header().Set(constants.HeaderCacheControl, constants.CacheControlProxied)
	writer.WriteHeader(http.StatusOK)

	if _, err := io.Copy(writer, response.Body); err != nil {
		// Headers are already out; the copy failure only ends the stream.
		ctxutil.GetLogger(request.Context()).Warn("image proxy stream aborted",
			"bucket", bucket,
			"key", key,
			"error", err,
		)
	}
}

// validKey rejects empty and traversing path segments before they reach the
// filesystem or the store.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}
	return true
}

func contentTypeFor(key string) string {
	if contentType, ok := contentTypes[strings.ToLower(path.Ext(key))]; ok {
		return contentType
	}
	return "application/octet-stream"
}
