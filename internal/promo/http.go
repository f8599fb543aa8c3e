package promo

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dcebotari/vatra/internal/images"
	"github.com/dcebotari/vatra/internal/platform/apperr"
	requestutil "github.com/dcebotari/vatra/internal/platform/request"
	"github.com/dcebotari/vatra/internal/platform/respond"
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
	router.Get("/", handler.listItems)
}

// RegisterUploadRoutes exposes the token-authorized upload endpoint. It is
// public: the signed token carries the authorization.
func (handler *Handler) RegisterUploadRoutes(router chi.Router) {
	router.Put("/{token}", handler.receiveUpload)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listItems)
	router.Post("/", handler.createItem)
	router.Post("/sign", handler.signUpload)
	router.Post("/complete", handler.completeUpload)
	router.Delete("/{id}", handler.deleteItem)
}

func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slice.Map(items, handler.localize))
}

func (handler *Handler) localize(item Item) Item {
	item.ImageURL = handler.resolver.Rewrite(item.ImageURL)
	return item
}

func (handler *Handler) createItem(writer http.ResponseWriter, request *http.Request) {
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

	item, err := handler.service.Upload(request.Context(), UploadInput{
		Title:       request.FormValue("title"),
		Price:       request.FormValue("price"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, handler.localize(*item))
}

func (handler *Handler) signUpload(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Filename string `json:"filename"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	signed, err := handler.service.SignUpload(input.Filename)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, signed)
}

func (handler *Handler) receiveUpload(writer http.ResponseWriter, request *http.Request) {
	token := requestutil.Param(request, "token")
	body := http.MaxBytesReader(writer, request.Body, maxUploadBytes)

	err := handler.service.ReceiveUpload(request.Context(), token, request.Header.Get("Content-Type"), body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) completeUpload(writer http.ResponseWriter, request *http.Request) {
	var input CompleteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Complete(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, handler.localize(*item))
}

func (handler *Handler) deleteItem(writer http.ResponseWriter, request *http.Request) {
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
