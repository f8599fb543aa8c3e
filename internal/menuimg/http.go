package menuimg

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dcebotari/vatra/internal/images"
	"github.com/dcebotari/vatra/internal/platform/apperr"
	requestutil "github.com/dcebotari/vatra/internal/platform/request"
	"github.com/dcebotari/vatra/internal/platform/respond"
	"github.com/dcebotari/vatra/pkg/convert"
	"github.com/dcebotari/vatra/pkg/pagination"
	"github.com/dcebotari/vatra/pkg/slice"
)

// maxUploadBytes bounds a single multipart upload.
const maxUploadBytes = 16 << 20

type Handler struct {
	service  *Service
	resolver *images.Resolver
}

// NewHandler creates the menu-image handler. resolver rewrites stored
// object URLs into local /images paths on the way out.
func NewHandler(service *Service, resolver *images.Resolver) *Handler {
	return &Handler{service: service, resolver: resolver}
}

func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listImages)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listImages)
	router.Post("/", handler.uploadImage)
	router.Delete("/{id}", handler.deleteImage)
	router.Post("/sync", handler.syncImages)
}

func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	// Malformed values become 0 and fail the service's positivity check.
	categoryID := convert.ToInt(request.URL.Query().Get("category_id"))

	params := pagination.FromRequest(request)
	listed, meta, err := handler.service.ListByCategory(request.Context(), categoryID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, slice.Map(listed, handler.localize), meta)
}

// localize swaps the stored object URL for the local delivery path.
func (handler *Handler) localize(image Image) Image {
	image.ImageURL = handler.resolver.Rewrite(image.ImageURL)
	return image
}

func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadBytes)
	if err := request.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Error(writer, request, apperr.ValidationError("invalid multipart form"))
		return
	}

	categoryID, err := strconv.Atoi(request.FormValue("category_id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("category_id must be an integer"))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("file field is required"))
		return
	}
	defer file.Close()

	image, err := handler.service.Upload(request.Context(), UploadInput{
		CategoryID:  categoryID,
		AltText:     request.FormValue("alt_text"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, handler.localize(*image))
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("id must be an integer"))
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) syncImages(writer http.ResponseWriter, request *http.Request) {
	menu := request.URL.Query().Get("menu")

	result, err := handler.service.Sync(request.Context(), menu)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
