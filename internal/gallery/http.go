package gallery

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dcebotari/vatra/internal/images"
	"github.com/dcebotari/vatra/internal/platform/apperr"
	requestutil "github.com/dcebotari/vatra/internal/platform/request"
	"github.com/dcebotari/vatra/internal/platform/respond"
	"github.com/dcebotari/vatra/pkg/pagination"
	"github.com/dcebotari/vatra/pkg/slice"
)

const maxUploadBytes = 16 << 20

type Handler struct {
	service  *Service
	resolver *images.Resolver
}

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
}

func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	listed, meta, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, slice.Map(listed, handler.localize), meta)
}

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

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("file field is required"))
		return
	}
	defer file.Close()

	image, err := handler.service.Upload(request.Context(), UploadInput{
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
